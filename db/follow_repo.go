package db

import (
	"github.com/pressfeedhq/pressfeed/models"
	"gorm.io/gorm"
)

type FollowRepository interface {
	CreateFollow(follow *models.Follow) error
	DeleteFollow(userID, authorID uint) error
	IsFollowing(userID, authorID uint) (bool, error)
}

type followRepo struct {
	DB *gorm.DB
}

func NewFollowRepo(db *GormDB) FollowRepository {
	return &followRepo{db.DB}
}

func (r *followRepo) CreateFollow(follow *models.Follow) error {
	return r.DB.Create(follow).Error
}

func (r *followRepo) DeleteFollow(userID, authorID uint) error {
	return r.DB.
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{}).Error
}

func (r *followRepo) IsFollowing(userID, authorID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	return count > 0, err
}
