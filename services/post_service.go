package services

import (
	"log"

	"github.com/pressfeedhq/pressfeed/config"
	"github.com/pressfeedhq/pressfeed/db"
	apiError "github.com/pressfeedhq/pressfeed/errors"
	"github.com/pressfeedhq/pressfeed/models"
	"gorm.io/gorm"
)

// ErrNotPostAuthor marks an edit attempt by someone other than the post's
// author. Handlers turn it into a redirect to the post detail view, not an
// error payload.
var ErrNotPostAuthor = apiError.New("only the author may edit this post", 303)

// PostDetail is a single post plus its comments and the author's post count.
type PostDetail struct {
	Post            models.PostResponse `json:"post"`
	Comments        []models.Comment    `json:"comments"`
	AuthorPostCount int64               `json:"author_post_count"`
}

// PostService interface
type PostService interface {
	CreatePost(authorID uint, req *models.CreatePostRequest, imageURL string) (*models.Post, error)
	GetPostDetail(postID uint) (*PostDetail, error)
	UpdatePost(actorID, postID uint, req *models.UpdatePostRequest) (*models.Post, error)
}

// postService struct
type postService struct {
	Config      *config.Config
	postRepo    db.PostRepository
	groupRepo   db.GroupRepository
	commentRepo db.CommentRepository
}

// NewPostService creates a new instance of PostService
func NewPostService(postRepo db.PostRepository, groupRepo db.GroupRepository, commentRepo db.CommentRepository, conf *config.Config) PostService {
	return &postService{
		Config:      conf,
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		commentRepo: commentRepo,
	}
}

func (s *postService) CreatePost(authorID uint, req *models.CreatePostRequest, imageURL string) (*models.Post, error) {
	groupID, err := s.resolveGroup(req.GroupSlug)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:     req.Text,
		Image:    imageURL,
		AuthorID: authorID,
		GroupID:  groupID,
	}
	if err := s.postRepo.CreatePost(post); err != nil {
		log.Printf("CreatePost error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	created, err := s.postRepo.GetPostByID(post.ID)
	if err != nil {
		return nil, apiError.ErrInternalServerError
	}
	return created, nil
}

func (s *postService) GetPostDetail(postID uint) (*PostDetail, error) {
	post, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apiError.ErrNotFound
		}
		log.Printf("GetPostDetail error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	comments, err := s.commentRepo.GetCommentsByPostID(post.ID)
	if err != nil {
		return nil, apiError.ErrInternalServerError
	}

	count, err := s.postRepo.CountPostsByAuthorID(post.AuthorID)
	if err != nil {
		return nil, apiError.ErrInternalServerError
	}

	return &PostDetail{
		Post:            toPostResponse(post),
		Comments:        comments,
		AuthorPostCount: count,
	}, nil
}

// UpdatePost applies the edit only when the actor is the post's author.
// Anyone else gets ErrNotPostAuthor and the stored text stays untouched.
func (s *postService) UpdatePost(actorID, postID uint, req *models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apiError.ErrNotFound
		}
		return nil, apiError.ErrInternalServerError
	}

	if post.AuthorID != actorID {
		return nil, ErrNotPostAuthor
	}

	groupID, err := s.resolveGroup(req.GroupSlug)
	if err != nil {
		return nil, err
	}

	post.Text = req.Text
	post.GroupID = groupID
	if err := s.postRepo.UpdatePost(post); err != nil {
		log.Printf("UpdatePost error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	updated, err := s.postRepo.GetPostByID(post.ID)
	if err != nil {
		return nil, apiError.ErrInternalServerError
	}
	return updated, nil
}

func (s *postService) resolveGroup(slug string) (*uint, error) {
	if slug == "" {
		return nil, nil
	}
	group, err := s.groupRepo.FindGroupBySlug(slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apiError.NotFound("group", slug)
		}
		return nil, apiError.ErrInternalServerError
	}
	return &group.ID, nil
}
