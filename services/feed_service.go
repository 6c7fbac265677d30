package services

import (
	"log"
	"time"

	"github.com/pressfeedhq/pressfeed/cache"
	"github.com/pressfeedhq/pressfeed/config"
	"github.com/pressfeedhq/pressfeed/db"
	apiError "github.com/pressfeedhq/pressfeed/errors"
	"github.com/pressfeedhq/pressfeed/models"
	"gorm.io/gorm"
)

const globalFeedCacheKey = "feed:global"

// FeedPage is one window of a post feed.
type FeedPage struct {
	Posts []models.PostResponse `json:"posts"`
	Page  PageInfo              `json:"page"`
}

// GroupFeedPage is a group's feed plus the group itself.
type GroupFeedPage struct {
	Group models.Group          `json:"group"`
	Posts []models.PostResponse `json:"posts"`
	Page  PageInfo              `json:"page"`
}

// ProfileFeedPage is an author's feed plus their profile and whether the
// viewer already follows them.
type ProfileFeedPage struct {
	Author    models.UserResponse   `json:"author"`
	Following bool                  `json:"following"`
	PostCount int64                 `json:"post_count"`
	Posts     []models.PostResponse `json:"posts"`
	Page      PageInfo              `json:"page"`
}

// FeedService interface
type FeedService interface {
	Global(page int) (*FeedPage, error)
	ByGroup(slug string, page int) (*GroupFeedPage, error)
	ByAuthor(username string, viewerID uint, page int) (*ProfileFeedPage, error)
	Followed(userID uint, page int) (*FeedPage, error)
	InvalidateGlobal()
}

// feedService struct
type feedService struct {
	Config     *config.Config
	postRepo   db.PostRepository
	groupRepo  db.GroupRepository
	authRepo   db.AuthRepository
	followRepo db.FollowRepository
	feedCache  *cache.FeedCache
}

// NewFeedService creates a new instance of FeedService
func NewFeedService(postRepo db.PostRepository, groupRepo db.GroupRepository, authRepo db.AuthRepository, followRepo db.FollowRepository, conf *config.Config) FeedService {
	ttl := time.Duration(conf.FeedCacheTTLSecs) * time.Second
	return &feedService{
		Config:     conf,
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		authRepo:   authRepo,
		followRepo: followRepo,
		feedCache:  cache.NewFeedCache(ttl),
	}
}

// Global returns the site-wide feed, newest first. The first page carries
// almost all the read traffic, so it is served through the TTL cache; readers
// tolerate staleness within the window.
func (s *feedService) Global(page int) (*FeedPage, error) {
	if page == 1 {
		if cached, ok := s.feedCache.Get(globalFeedCacheKey); ok {
			return cached.(*FeedPage), nil
		}
	}

	total, err := s.postRepo.CountAllPosts()
	if err != nil {
		log.Printf("Global feed count error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	info, limit, offset := PageWindow(page, total)

	posts, err := s.postRepo.GetAllPosts(limit, offset)
	if err != nil {
		log.Printf("Global feed fetch error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	feed := &FeedPage{Posts: toPostResponses(posts), Page: info}
	if info.Number == 1 {
		s.feedCache.Set(globalFeedCacheKey, feed)
	}
	return feed, nil
}

func (s *feedService) ByGroup(slug string, page int) (*GroupFeedPage, error) {
	group, err := s.groupRepo.FindGroupBySlug(slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apiError.NotFound("group", slug)
		}
		log.Printf("ByGroup lookup error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	total, err := s.postRepo.CountPostsByGroupID(group.ID)
	if err != nil {
		return nil, apiError.ErrInternalServerError
	}
	info, limit, offset := PageWindow(page, total)

	posts, err := s.postRepo.GetPostsByGroupID(group.ID, limit, offset)
	if err != nil {
		return nil, apiError.ErrInternalServerError
	}

	return &GroupFeedPage{
		Group: *group,
		Posts: toPostResponses(posts),
		Page:  info,
	}, nil
}

// ByAuthor returns one page of the author's posts together with the follow
// flag for the viewer. viewerID 0 means an anonymous viewer.
func (s *feedService) ByAuthor(username string, viewerID uint, page int) (*ProfileFeedPage, error) {
	author, err := s.authRepo.FindUserByUsername(username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apiError.NotFound("user", username)
		}
		log.Printf("ByAuthor lookup error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	total, err := s.postRepo.CountPostsByAuthorID(author.ID)
	if err != nil {
		return nil, apiError.ErrInternalServerError
	}
	info, limit, offset := PageWindow(page, total)

	posts, err := s.postRepo.GetPostsByAuthorID(author.ID, limit, offset)
	if err != nil {
		return nil, apiError.ErrInternalServerError
	}

	following := false
	if viewerID != 0 {
		following, err = s.followRepo.IsFollowing(viewerID, author.ID)
		if err != nil {
			return nil, apiError.ErrInternalServerError
		}
	}

	return &ProfileFeedPage{
		Author:    author.Response(),
		Following: following,
		PostCount: total,
		Posts:     toPostResponses(posts),
		Page:      info,
	}, nil
}

// Followed returns posts authored by anyone the user follows. An empty
// follow set is just an empty feed, not an error.
func (s *feedService) Followed(userID uint, page int) (*FeedPage, error) {
	total, err := s.postRepo.CountPostsByFollowedAuthors(userID)
	if err != nil {
		log.Printf("Followed feed count error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	info, limit, offset := PageWindow(page, total)

	posts, err := s.postRepo.GetPostsByFollowedAuthors(userID, limit, offset)
	if err != nil {
		log.Printf("Followed feed fetch error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	return &FeedPage{Posts: toPostResponses(posts), Page: info}, nil
}

func (s *feedService) InvalidateGlobal() {
	s.feedCache.Invalidate(globalFeedCacheKey)
}

func toPostResponses(posts []models.Post) []models.PostResponse {
	out := make([]models.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toPostResponse(&posts[i]))
	}
	return out
}

func toPostResponse(post *models.Post) models.PostResponse {
	return models.PostResponse{
		ID:        post.ID,
		Text:      post.Text,
		Image:     post.Image,
		CreatedAt: post.CreatedAt.Format(time.RFC3339),
		Author:    post.Author.Response(),
		Group:     post.Group,
	}
}
