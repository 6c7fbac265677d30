package models

// Group is an optional home for posts, addressed by its unique slug.
type Group struct {
	Model
	Slug        string `json:"slug" gorm:"unique;not null" binding:"required"`
	Title       string `json:"title" gorm:"not null" binding:"required"`
	Description string `json:"description"`
	Posts       []Post `json:"-" gorm:"foreignKey:GroupID"`
}
