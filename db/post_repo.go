package db

import (
	"github.com/pressfeedhq/pressfeed/models"
	"gorm.io/gorm"
)

type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	UpdatePost(post *models.Post) error
	GetAllPosts(limit, offset int) ([]models.Post, error)
	CountAllPosts() (int64, error)
	GetPostsByGroupID(groupID uint, limit, offset int) ([]models.Post, error)
	CountPostsByGroupID(groupID uint) (int64, error)
	GetPostsByAuthorID(authorID uint, limit, offset int) ([]models.Post, error)
	CountPostsByAuthorID(authorID uint) (int64, error)
	GetPostsByFollowedAuthors(userID uint, limit, offset int) ([]models.Post, error)
	CountPostsByFollowedAuthors(userID uint) (int64, error)
}

type postRepo struct {
	DB *gorm.DB
}

func NewPostRepo(db *GormDB) PostRepository {
	return &postRepo{db.DB}
}

func (r *postRepo) CreatePost(post *models.Post) error {
	return r.DB.Create(post).Error
}

func (r *postRepo) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.DB.Preload("Author").Preload("Group").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepo) UpdatePost(post *models.Post) error {
	return r.DB.Model(post).Updates(map[string]interface{}{
		"text":     post.Text,
		"image":    post.Image,
		"group_id": post.GroupID,
	}).Error
}

// Every feed query orders by created_at DESC; newest-first is an invariant
// on post enumeration.
func (r *postRepo) GetAllPosts(limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.DB.
		Preload("Author").
		Preload("Group").
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepo) CountAllPosts() (int64, error) {
	var count int64
	err := r.DB.Model(&models.Post{}).Count(&count).Error
	return count, err
}

func (r *postRepo) GetPostsByGroupID(groupID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.DB.
		Preload("Author").
		Preload("Group").
		Where("group_id = ?", groupID).
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepo) CountPostsByGroupID(groupID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Post{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

func (r *postRepo) GetPostsByAuthorID(authorID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.DB.
		Preload("Author").
		Preload("Group").
		Where("author_id = ?", authorID).
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepo) CountPostsByAuthorID(authorID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// GetPostsByFollowedAuthors returns posts whose author is followed by the
// given user, via a subquery over the follow edges.
func (r *postRepo) GetPostsByFollowedAuthors(userID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	followed := r.DB.Model(&models.Follow{}).Select("author_id").Where("user_id = ?", userID)
	err := r.DB.
		Preload("Author").
		Preload("Group").
		Where("author_id IN (?)", followed).
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepo) CountPostsByFollowedAuthors(userID uint) (int64, error) {
	var count int64
	followed := r.DB.Model(&models.Follow{}).Select("author_id").Where("user_id = ?", userID)
	err := r.DB.Model(&models.Post{}).Where("author_id IN (?)", followed).Count(&count).Error
	return count, err
}
