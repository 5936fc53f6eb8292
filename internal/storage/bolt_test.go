package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachdesk/coachdesk/internal/domain"
)

func openTestBolt(t *testing.T) *BoltStore {
	t.Helper()
	s, err := OpenBoltStore(filepath.Join(t.TempDir(), "coachdesk.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBoltStoreBookingRoundTrip(t *testing.T) {
	s := openTestBolt(t)

	created, err := s.CreateBooking(domain.InsertBooking{
		Name:        "Asha",
		Email:       "a@x.com",
		PackageType: "exec",
		PackageName: "Executive Coaching",
		Price:       "₹50,000",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Nil(t, created.Phone)

	all, err := s.GetAllBookings()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Equal(t, "exec", all[0].PackageType)
	assert.Nil(t, all[0].Phone)
	assert.True(t, created.CreatedAt.Equal(all[0].CreatedAt))
}

func TestBoltStoreRecentLimit(t *testing.T) {
	s := openTestBolt(t)
	for i := 0; i < 8; i++ {
		_, err := s.CreateDownload(domain.InsertDownload{
			ResourceName: "career-playbook.pdf",
			UserEmail:    "a@x.com",
		})
		require.NoError(t, err)
	}

	recent, err := s.GetRecentDownloads(5)
	require.NoError(t, err)
	assert.Len(t, recent, 5)

	all, err := s.GetAllDownloads()
	require.NoError(t, err)
	assert.Equal(t, all[:5], recent)
}

func TestBoltStoreBlogPostLifecycle(t *testing.T) {
	s := openTestBolt(t)

	post, err := s.CreateBlogPost(domain.InsertBlogPost{
		Title:    "Draft",
		Category: "mindset",
		Content:  "body",
	})
	require.NoError(t, err)
	assert.False(t, post.Published)

	title := "Final"
	published := true
	updated, err := s.UpdateBlogPost(post.ID, domain.BlogPostPatch{
		Title:     &title,
		Published: &published,
	})
	require.NoError(t, err)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, "body", updated.Content)
	assert.True(t, updated.Published)
	assert.True(t, updated.CreatedAt.Equal(post.CreatedAt))

	got, err := s.GetBlogPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)

	removed, err := s.DeleteBlogPost(post.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.DeleteBlogPost(post.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = s.GetBlogPost(post.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBoltStoreUpdateUnknownID(t *testing.T) {
	s := openTestBolt(t)
	_, err := s.UpdateBlogPost("missing", domain.BlogPostPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
}
