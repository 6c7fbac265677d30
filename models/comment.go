package models

// Comment represents a user's comment on a post. Both references are
// required; deleting the post or the author deletes the comment.
type Comment struct {
	Model
	Text     string `json:"text" gorm:"type:text;not null" binding:"required"`
	PostID   uint   `json:"post_id" gorm:"not null;index"`
	Post     Post   `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	AuthorID uint   `json:"author_id" gorm:"not null"`
	Author   User   `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}
