package services

import (
	"testing"
	"time"

	apiError "github.com/pressfeedhq/pressfeed/errors"
	"github.com/pressfeedhq/pressfeed/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostService(env *testEnv) PostService {
	return NewPostService(env.posts, env.groups, env.comment, env.conf)
}

func TestCreatePost(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	env.createGroup(t, "tech")
	svc := newPostService(env)

	post, err := svc.CreatePost(alice.ID, &models.CreatePostRequest{Text: "hello world", GroupSlug: "tech"}, "")
	require.NoError(t, err)
	assert.Equal(t, "hello world", post.Text)
	assert.Equal(t, alice.ID, post.AuthorID)
	require.NotNil(t, post.Group)
	assert.Equal(t, "tech", post.Group.Slug)
	assert.False(t, post.CreatedAt.IsZero())
}

func TestCreatePostUnknownGroup(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	svc := newPostService(env)

	_, err := svc.CreatePost(alice.ID, &models.CreatePostRequest{Text: "hello", GroupSlug: "nope"}, "")
	require.Error(t, err)
	apiErr, ok := err.(*apiError.Error)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)
}

func TestUpdatePostByAuthor(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	post := env.createPost(t, alice, "original", time.Now(), nil)
	svc := newPostService(env)

	updated, err := svc.UpdatePost(alice.ID, post.ID, &models.UpdatePostRequest{Text: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)
}

func TestUpdatePostByNonAuthorDenied(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	mallory := env.createUser(t, "mallory")
	post := env.createPost(t, alice, "original", time.Now(), nil)
	svc := newPostService(env)

	_, err := svc.UpdatePost(mallory.ID, post.ID, &models.UpdatePostRequest{Text: "hijacked"})
	assert.Equal(t, ErrNotPostAuthor, err)

	// The stored text must be untouched.
	stored, err := env.posts.GetPostByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", stored.Text)
}

func TestGetPostDetail(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	base := time.Now().Add(-time.Hour)
	post := env.createPost(t, alice, "a post", base, nil)
	env.createPost(t, alice, "another", base.Add(time.Minute), nil)
	require.NoError(t, env.comment.CreateComment(&models.Comment{Text: "nice", PostID: post.ID, AuthorID: bob.ID}))

	svc := newPostService(env)
	detail, err := svc.GetPostDetail(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "a post", detail.Post.Text)
	assert.Equal(t, int64(2), detail.AuthorPostCount)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "nice", detail.Comments[0].Text)
}

func TestGetPostDetailUnknownID(t *testing.T) {
	env := newTestEnv(t)
	svc := newPostService(env)

	_, err := svc.GetPostDetail(999)
	require.Error(t, err)
	apiErr, ok := err.(*apiError.Error)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)
}
