package services

import (
	"fmt"
	"testing"
	"time"

	"socialapp/apperrors"
	"socialapp/models"
	"socialapp/pagination"
	"socialapp/repositories"
	"socialapp/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// recordingPostRepo counts page queries so tests can prove the feed
// short-circuit never reaches the post store.
type recordingPostRepo struct {
	repositories.PostRepository
	pageQueries int
}

func (r *recordingPostRepo) FindPageByAuthorIn(authorIDs []uint, req pagination.Request) ([]models.Post, int64, error) {
	r.pageQueries++
	return r.PostRepository.FindPageByAuthorIn(authorIDs, req)
}

func newPostService(t *testing.T) (*PostService, *recordingPostRepo, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	recorder := &recordingPostRepo{PostRepository: repositories.NewPostRepository(db)}
	svc := NewPostService(recorder, repositories.NewUserRepository(db), repositories.NewFollowRepository(db))
	return svc, recorder, db
}

func TestCreatePost_RoundTrip(t *testing.T) {
	svc, _, db := newPostService(t)
	alice := testutil.SeedUser(t, db, "alice")

	created, err := svc.CreatePost(alice.ID, "a title", "a body")
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a title", got.Title)
	assert.Equal(t, "a body", got.Body)
	assert.Equal(t, alice.ID, got.AuthorID)
	assert.True(t, got.CreatedAt.Equal(created.CreatedAt))

	// Repeated reads see the same timestamp.
	again, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.True(t, again.CreatedAt.Equal(got.CreatedAt))
}

func TestCreatePost_UnknownAuthor(t *testing.T) {
	svc, _, _ := newPostService(t)

	_, err := svc.CreatePost(9, "t", "b")
	require.Error(t, err)
	var nf *apperrors.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "author", nf.Entity)
}

func TestGetByID_Unknown(t *testing.T) {
	svc, _, _ := newPostService(t)

	_, err := svc.GetByID(123)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestFeedFor_EmptyFollowSetSkipsPostStore(t *testing.T) {
	svc, recorder, db := newPostService(t)
	alice := testutil.SeedUser(t, db, "alice")
	bob := testutil.SeedUser(t, db, "bob")
	testutil.SeedPost(t, db, bob.ID, "unseen")

	page, err := svc.FeedFor(alice.ID, pagination.NewRequest(0, 10))
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Zero(t, page.TotalElements)
	assert.Zero(t, page.TotalPages)
	assert.Zero(t, recorder.pageQueries, "post store must not be queried for an empty follow set")
}

func TestFeedFor_FollowedAuthorsNewestFirst(t *testing.T) {
	svc, _, db := newPostService(t)
	alice := testutil.SeedUser(t, db, "alice")
	bob := testutil.SeedUser(t, db, "bob")
	carol := testutil.SeedUser(t, db, "carol")

	follows := NewFollowService(repositories.NewFollowRepository(db), repositories.NewUserRepository(db))
	_, err := follows.Follow(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = follows.Follow(alice.ID, carol.ID)
	require.NoError(t, err)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	bobPost := testutil.SeedPost(t, db, bob.ID, "from bob")
	testutil.SetPostCreatedAt(t, db, bobPost.ID, base)
	carolPost := testutil.SeedPost(t, db, carol.ID, "from carol")
	testutil.SetPostCreatedAt(t, db, carolPost.ID, base.Add(time.Hour))

	page, err := svc.FeedFor(alice.ID, pagination.NewRequest(0, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "from carol", page.Content[0].Title)
	assert.Equal(t, "from bob", page.Content[1].Title)
}

func TestFeedFor_ExcludesNonFollowedAuthors(t *testing.T) {
	svc, _, db := newPostService(t)
	alice := testutil.SeedUser(t, db, "alice")
	bob := testutil.SeedUser(t, db, "bob")
	mallory := testutil.SeedUser(t, db, "mallory")

	follows := NewFollowService(repositories.NewFollowRepository(db), repositories.NewUserRepository(db))
	_, err := follows.Follow(alice.ID, bob.ID)
	require.NoError(t, err)

	testutil.SeedPost(t, db, bob.ID, "followed")
	testutil.SeedPost(t, db, mallory.ID, "not followed")

	page, err := svc.FeedFor(alice.ID, pagination.NewRequest(0, 10))
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "followed", page.Content[0].Title)
}

func TestFeedFor_PaginationWindows(t *testing.T) {
	svc, _, db := newPostService(t)
	alice := testutil.SeedUser(t, db, "alice")
	bob := testutil.SeedUser(t, db, "bob")

	follows := NewFollowService(repositories.NewFollowRepository(db), repositories.NewUserRepository(db))
	_, err := follows.Follow(alice.ID, bob.ID)
	require.NoError(t, err)

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		post := testutil.SeedPost(t, db, bob.ID, fmt.Sprintf("post %d", i))
		testutil.SetPostCreatedAt(t, db, post.ID, base.Add(time.Duration(i)*time.Minute))
	}

	first, err := svc.FeedFor(alice.ID, pagination.NewRequest(0, 2))
	require.NoError(t, err)
	assert.EqualValues(t, 5, first.TotalElements)
	assert.Equal(t, 3, first.TotalPages)
	require.Len(t, first.Content, 2)
	assert.Equal(t, "post 4", first.Content[0].Title)
	assert.Equal(t, "post 3", first.Content[1].Title)

	last, err := svc.FeedFor(alice.ID, pagination.NewRequest(2, 2))
	require.NoError(t, err)
	require.Len(t, last.Content, 1)
	assert.Equal(t, "post 0", last.Content[0].Title)
}

func TestFeedFor_UnknownUser(t *testing.T) {
	svc, _, _ := newPostService(t)

	_, err := svc.FeedFor(404, pagination.NewRequest(0, 10))
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListByAuthor_NewestFirst(t *testing.T) {
	svc, _, db := newPostService(t)
	bob := testutil.SeedUser(t, db, "bob")

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	old := testutil.SeedPost(t, db, bob.ID, "old")
	testutil.SetPostCreatedAt(t, db, old.ID, base)
	recent := testutil.SeedPost(t, db, bob.ID, "recent")
	testutil.SetPostCreatedAt(t, db, recent.ID, base.Add(time.Hour))

	page, err := svc.ListByAuthor(bob.ID, pagination.NewRequest(0, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.TotalElements)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "recent", page.Content[0].Title)
	assert.Equal(t, "old", page.Content[1].Title)
}

func TestListByAuthor_UnknownAuthor(t *testing.T) {
	svc, _, _ := newPostService(t)

	_, err := svc.ListByAuthor(404, pagination.NewRequest(0, 10))
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
