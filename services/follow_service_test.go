package services

import (
	"testing"

	apiError "github.com/pressfeedhq/pressfeed/errors"
	"github.com/pressfeedhq/pressfeed/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFollowService(env *testEnv) FollowService {
	return NewFollowService(env.follows, env.auth, env.conf)
}

func TestFollowThenUnfollow(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	env.createUser(t, "bob")
	svc := newFollowService(env)

	require.NoError(t, svc.Follow(alice.ID, "bob"))

	following, err := svc.IsFollowing(alice.ID, "bob")
	require.NoError(t, err)
	assert.True(t, following)

	require.NoError(t, svc.Unfollow(alice.ID, "bob"))

	following, err = svc.IsFollowing(alice.ID, "bob")
	require.NoError(t, err)
	assert.False(t, following)
}

func TestSelfFollowRejected(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	svc := newFollowService(env)

	err := svc.Follow(alice.ID, "alice")
	assert.Equal(t, ErrSelfFollow, err)

	var count int64
	env.gormDB.DB.Model(&models.Follow{}).Count(&count)
	assert.Zero(t, count)
}

func TestDuplicateFollowRejected(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	env.createUser(t, "bob")
	svc := newFollowService(env)

	require.NoError(t, svc.Follow(alice.ID, "bob"))
	err := svc.Follow(alice.ID, "bob")
	assert.Equal(t, ErrAlreadyFollowing, err)

	var count int64
	env.gormDB.DB.Model(&models.Follow{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUnfollowAbsentEdgeIsNoop(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	env.createUser(t, "bob")
	svc := newFollowService(env)

	assert.NoError(t, svc.Unfollow(alice.ID, "bob"))
}

func TestFollowUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	svc := newFollowService(env)

	err := svc.Follow(alice.ID, "ghost")
	require.Error(t, err)
	apiErr, ok := err.(*apiError.Error)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)
}
