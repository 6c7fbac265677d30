package models

import "time"

// Model holds the columns shared by every persisted entity. CreatedAt is
// stamped once on insert and never updated afterwards.
type Model struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;<-:create"`
	UpdatedAt time.Time `json:"updated_at"`
}
