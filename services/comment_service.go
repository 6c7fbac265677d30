package services

import (
	"log"

	"github.com/pressfeedhq/pressfeed/config"
	"github.com/pressfeedhq/pressfeed/db"
	apiError "github.com/pressfeedhq/pressfeed/errors"
	"github.com/pressfeedhq/pressfeed/models"
	"gorm.io/gorm"
)

// CommentService interface
type CommentService interface {
	AddComment(postID, authorID uint, text string) (*models.Comment, error)
	ListComments(postID uint) ([]models.Comment, error)
}

// commentService struct
type commentService struct {
	Config      *config.Config
	commentRepo db.CommentRepository
	postRepo    db.PostRepository
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(commentRepo db.CommentRepository, postRepo db.PostRepository, conf *config.Config) CommentService {
	return &commentService{
		Config:      conf,
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment stamps the comment with the author and creation time and
// attaches it to the post. Unknown posts are a NotFound, not a write.
func (s *commentService) AddComment(postID, authorID uint, text string) (*models.Comment, error) {
	if _, err := s.postRepo.GetPostByID(postID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apiError.ErrNotFound
		}
		log.Printf("AddComment post lookup error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	comment := &models.Comment{
		Text:     text,
		PostID:   postID,
		AuthorID: authorID,
	}
	if err := s.commentRepo.CreateComment(comment); err != nil {
		log.Printf("AddComment create error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return comment, nil
}

func (s *commentService) ListComments(postID uint) ([]models.Comment, error) {
	comments, err := s.commentRepo.GetCommentsByPostID(postID)
	if err != nil {
		return nil, apiError.ErrInternalServerError
	}
	return comments, nil
}
