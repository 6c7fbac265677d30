package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("garbage"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-3"))
	assert.Equal(t, 7, ParsePage("7"))
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name       string
		requested  int
		total      int64
		wantPage   int
		wantOffset int
		wantPages  int
		wantPrev   bool
		wantNext   bool
	}{
		{"first of two", 1, 13, 1, 0, 2, false, true},
		{"second of two", 2, 13, 2, 10, 2, true, false},
		{"out of range clamps to last", 3, 13, 2, 10, 2, true, false},
		{"way out of range", 99, 13, 2, 10, 2, true, false},
		{"below range clamps to first", 0, 13, 1, 0, 2, false, true},
		{"empty set", 1, 0, 1, 0, 1, false, false},
		{"exact multiple", 2, 20, 2, 10, 2, true, false},
		{"single item", 1, 1, 1, 0, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, limit, offset := PageWindow(tt.requested, tt.total)
			assert.Equal(t, PostsPerPage, limit)
			assert.Equal(t, tt.wantPage, info.Number)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantPages, info.TotalPages)
			assert.Equal(t, tt.wantPrev, info.HasPrev)
			assert.Equal(t, tt.wantNext, info.HasNext)
			assert.Equal(t, tt.total, info.TotalItems)
		})
	}
}
