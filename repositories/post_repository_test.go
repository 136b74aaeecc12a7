package repositories

import (
	"testing"
	"time"

	"socialapp/pagination"
	"socialapp/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_PageOrderingAndTiebreak(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPostRepository(db)
	bob := testutil.SeedUser(t, db, "bob")

	at := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	first := testutil.SeedPost(t, db, bob.ID, "first")
	second := testutil.SeedPost(t, db, bob.ID, "second")
	// Same timestamp on purpose: the id tiebreak must order second before
	// first so pagination stays deterministic.
	testutil.SetPostCreatedAt(t, db, first.ID, at)
	testutil.SetPostCreatedAt(t, db, second.ID, at)

	posts, total, err := repo.FindPageByAuthor(bob.ID, pagination.NewRequest(0, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, posts, 2)
	assert.Equal(t, "second", posts[0].Title)
	assert.Equal(t, "first", posts[1].Title)
}

func TestPostRepository_FindPageByAuthorIn(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPostRepository(db)
	bob := testutil.SeedUser(t, db, "bob")
	carol := testutil.SeedUser(t, db, "carol")
	dave := testutil.SeedUser(t, db, "dave")

	testutil.SeedPost(t, db, bob.ID, "bob 1")
	testutil.SeedPost(t, db, carol.ID, "carol 1")
	testutil.SeedPost(t, db, dave.ID, "dave 1")

	posts, total, err := repo.FindPageByAuthorIn([]uint{bob.ID, carol.ID}, pagination.NewRequest(0, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, p := range posts {
		assert.NotEqual(t, dave.ID, p.AuthorID)
	}
}

func TestPostRepository_WindowBeyondEnd(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPostRepository(db)
	bob := testutil.SeedUser(t, db, "bob")
	testutil.SeedPost(t, db, bob.ID, "only")

	posts, total, err := repo.FindPageByAuthor(bob.ID, pagination.NewRequest(3, 5))
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Empty(t, posts)
}
