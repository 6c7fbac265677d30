package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pressfeedhq/pressfeed/config"
	"github.com/pressfeedhq/pressfeed/db"
	"github.com/pressfeedhq/pressfeed/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	gormDB  *db.GormDB
	conf    *config.Config
	auth    db.AuthRepository
	posts   db.PostRepository
	groups  db.GroupRepository
	follows db.FollowRepository
	comment db.CommentRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(dir, "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	gormDB := &db.GormDB{DB: gdb}
	return &testEnv{
		gormDB:  gormDB,
		conf:    &config.Config{JWTSecret: "test-secret", FeedCacheTTLSecs: 1},
		auth:    db.NewAuthRepo(gormDB),
		posts:   db.NewPostRepo(gormDB),
		groups:  db.NewGroupRepo(gormDB),
		follows: db.NewFollowRepo(gormDB),
		comment: db.NewCommentRepo(gormDB),
	}
}

func (e *testEnv) feedService() FeedService {
	return NewFeedService(e.posts, e.groups, e.auth, e.follows, e.conf)
}

func (e *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{
		Fullname:       username + " test",
		Username:       username,
		Email:          username + "@example.com",
		HashedPassword: "x",
	}
	require.NoError(t, e.gormDB.DB.Create(user).Error)
	return user
}

func (e *testEnv) createGroup(t *testing.T, slug string) *models.Group {
	t.Helper()
	group := &models.Group{Slug: slug, Title: slug, Description: "about " + slug}
	require.NoError(t, e.gormDB.DB.Create(group).Error)
	return group
}

// createPost writes a post with an explicit creation time so ordering
// assertions don't depend on clock resolution.
func (e *testEnv) createPost(t *testing.T, author *models.User, text string, createdAt time.Time, groupID *uint) *models.Post {
	t.Helper()
	post := &models.Post{
		Text:     text,
		AuthorID: author.ID,
		GroupID:  groupID,
	}
	post.CreatedAt = createdAt
	require.NoError(t, e.gormDB.DB.Create(post).Error)
	return post
}
