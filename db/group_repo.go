package db

import (
	"github.com/pressfeedhq/pressfeed/models"
	"gorm.io/gorm"
)

type GroupRepository interface {
	CreateGroup(group *models.Group) error
	FindGroupBySlug(slug string) (*models.Group, error)
	GetAllGroups() ([]models.Group, error)
}

type groupRepo struct {
	DB *gorm.DB
}

func NewGroupRepo(db *GormDB) GroupRepository {
	return &groupRepo{db.DB}
}

func (r *groupRepo) CreateGroup(group *models.Group) error {
	return r.DB.Create(group).Error
}

func (r *groupRepo) FindGroupBySlug(slug string) (*models.Group, error) {
	var group models.Group
	err := r.DB.Where("slug = ?", slug).First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepo) GetAllGroups() ([]models.Group, error) {
	var groups []models.Group
	err := r.DB.Order("title ASC").Find(&groups).Error
	return groups, err
}
