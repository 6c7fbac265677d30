package models

// Follow is a directed edge: UserID wants AuthorID's posts in their feed.
// The composite unique index keeps concurrent follow requests from creating
// a duplicate pair.
type Follow struct {
	Model
	UserID   uint `json:"user_id" gorm:"not null;uniqueIndex:idx_follow_pair"`
	User     User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	AuthorID uint `json:"author_id" gorm:"not null;uniqueIndex:idx_follow_pair"`
	Author   User `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
