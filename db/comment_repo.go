package db

import (
	"github.com/pressfeedhq/pressfeed/models"
	"gorm.io/gorm"
)

type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentsByPostID(postID uint) ([]models.Comment, error)
}

type commentRepo struct {
	DB *gorm.DB
}

func NewCommentRepo(db *GormDB) CommentRepository {
	return &commentRepo{db.DB}
}

func (r *commentRepo) CreateComment(comment *models.Comment) error {
	return r.DB.Create(comment).Error
}

func (r *commentRepo) GetCommentsByPostID(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.DB.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("comments.created_at ASC").
		Find(&comments).Error
	return comments, err
}
