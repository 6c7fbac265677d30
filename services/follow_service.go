package services

import (
	"log"
	"net/http"

	"github.com/pressfeedhq/pressfeed/config"
	"github.com/pressfeedhq/pressfeed/db"
	apiError "github.com/pressfeedhq/pressfeed/errors"
	"github.com/pressfeedhq/pressfeed/models"
	"gorm.io/gorm"
)

var (
	ErrSelfFollow       = apiError.New("you cannot follow yourself", http.StatusBadRequest)
	ErrAlreadyFollowing = apiError.New("already following this author", http.StatusBadRequest)
)

// FollowService interface
type FollowService interface {
	Follow(actorID uint, targetUsername string) error
	Unfollow(actorID uint, targetUsername string) error
	IsFollowing(actorID uint, targetUsername string) (bool, error)
}

// followService struct
type followService struct {
	Config     *config.Config
	followRepo db.FollowRepository
	authRepo   db.AuthRepository
}

// NewFollowService creates a new instance of FollowService
func NewFollowService(followRepo db.FollowRepository, authRepo db.AuthRepository, conf *config.Config) FollowService {
	return &followService{
		Config:     conf,
		followRepo: followRepo,
		authRepo:   authRepo,
	}
}

// Follow creates the edge actor -> target. Self-follows and duplicates are
// rejected with typed errors; the unique index on (user_id, author_id)
// backstops the existence check against concurrent requests.
func (s *followService) Follow(actorID uint, targetUsername string) error {
	author, err := s.findAuthor(targetUsername)
	if err != nil {
		return err
	}

	if author.ID == actorID {
		return ErrSelfFollow
	}

	following, err := s.followRepo.IsFollowing(actorID, author.ID)
	if err != nil {
		return apiError.ErrInternalServerError
	}
	if following {
		return ErrAlreadyFollowing
	}

	follow := &models.Follow{UserID: actorID, AuthorID: author.ID}
	if err := s.followRepo.CreateFollow(follow); err != nil {
		// A concurrent request may have won the race; the index makes the
		// second insert fail instead of duplicating the edge.
		log.Printf("Follow create error: %v", err)
		return ErrAlreadyFollowing
	}
	return nil
}

// Unfollow deletes the edge if present; absent edges are a no-op.
func (s *followService) Unfollow(actorID uint, targetUsername string) error {
	author, err := s.findAuthor(targetUsername)
	if err != nil {
		return err
	}

	if err := s.followRepo.DeleteFollow(actorID, author.ID); err != nil {
		log.Printf("Unfollow delete error: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}

func (s *followService) IsFollowing(actorID uint, targetUsername string) (bool, error) {
	author, err := s.findAuthor(targetUsername)
	if err != nil {
		return false, err
	}
	following, err := s.followRepo.IsFollowing(actorID, author.ID)
	if err != nil {
		return false, apiError.ErrInternalServerError
	}
	return following, nil
}

func (s *followService) findAuthor(username string) (*models.User, error) {
	author, err := s.authRepo.FindUserByUsername(username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apiError.NotFound("user", username)
		}
		return nil, apiError.ErrInternalServerError
	}
	return author, nil
}
