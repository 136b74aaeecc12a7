package repositories

import (
	"testing"

	"socialapp/models"
	"socialapp/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFollowRepository_UniquePairEnforcedByStore(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewFollowRepository(db)
	alice := testutil.SeedUser(t, db, "alice")
	bob := testutil.SeedUser(t, db, "bob")

	require.NoError(t, repo.Create(&models.Follow{FollowerID: alice.ID, FollowedID: bob.ID}))

	// Writing the same pair again must trip the unique index even though no
	// service-level pre-check ran. This is the last line of defense the
	// services rely on under races.
	err := repo.Create(&models.Follow{FollowerID: alice.ID, FollowedID: bob.ID})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// The reverse direction is a different edge and stays allowed.
	require.NoError(t, repo.Create(&models.Follow{FollowerID: bob.ID, FollowedID: alice.ID}))
}

func TestFollowRepository_FindAndDelete(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewFollowRepository(db)
	alice := testutil.SeedUser(t, db, "alice")
	bob := testutil.SeedUser(t, db, "bob")

	missing, err := repo.Find(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Create(&models.Follow{FollowerID: alice.ID, FollowedID: bob.ID}))

	exists, err := repo.Exists(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	found, err := repo.Find(alice.ID, bob.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	require.NoError(t, repo.Delete(found))

	exists, err = repo.Exists(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLikeRepository_UniquePairEnforcedByStore(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewLikeRepository(db)
	alice := testutil.SeedUser(t, db, "alice")
	post := testutil.SeedPost(t, db, alice.ID, "p")

	require.NoError(t, repo.Create(&models.PostLike{UserID: alice.ID, PostID: post.ID}))

	err := repo.Create(&models.PostLike{UserID: alice.ID, PostID: post.ID})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	count, err := repo.Count(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// Deleting a missing edge is not an error.
	require.NoError(t, repo.Delete(alice.ID, post.ID))
	require.NoError(t, repo.Delete(alice.ID, post.ID))
}
