package models

// Post is a single publication. AuthorID is required and cascade-deletes with
// its user; GroupID is optional and survives group deletion as NULL.
type Post struct {
	Model
	Text     string `json:"text" gorm:"type:text;not null"`
	Image    string `json:"image,omitempty"`
	AuthorID uint   `json:"author_id" gorm:"not null;index"`
	Author   User   `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	GroupID  *uint  `json:"group_id,omitempty" gorm:"index"`
	Group    *Group `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
}

type CreatePostRequest struct {
	Text      string `form:"text" binding:"required"`
	GroupSlug string `form:"group"`
}

type UpdatePostRequest struct {
	Text      string `json:"text" binding:"required"`
	GroupSlug string `json:"group"`
}

type PostResponse struct {
	ID        uint         `json:"id"`
	Text      string       `json:"text"`
	Image     string       `json:"image,omitempty"`
	CreatedAt string       `json:"created_at"`
	Author    UserResponse `json:"author"`
	Group     *Group       `json:"group,omitempty"`
}
