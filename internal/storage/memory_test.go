package storage

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachdesk/coachdesk/internal/domain"
)

func strptr(s string) *string { return &s }

func TestMemoryStoreBookingRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	created, err := s.CreateBooking(domain.InsertBooking{
		Name:        "Asha",
		Email:       "a@x.com",
		Phone:       strptr("+91 98765 43210"),
		PackageType: "exec",
		PackageName: "Executive Coaching",
		Price:       "₹50,000",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.After(time.Now()))

	all, err := s.GetAllBookings()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created, all[0])
	assert.Equal(t, "Executive Coaching", all[0].PackageName)
}

func TestMemoryStoreOptionalPhoneStaysNil(t *testing.T) {
	s := NewMemoryStore()

	contact, err := s.CreateContact(domain.InsertContact{
		Name:    "Ravi",
		Email:   "r@x.com",
		Message: "please call me back",
	})
	require.NoError(t, err)
	assert.Nil(t, contact.Phone)

	all, err := s.GetAllContacts()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Nil(t, all[0].Phone)
}

func TestMemoryStoreGetAllNewestFirst(t *testing.T) {
	s := NewMemoryStore()

	var ids []string
	for i := 0; i < 10; i++ {
		b, err := s.CreateBooking(domain.InsertBooking{
			Name:        fmt.Sprintf("customer-%d", i),
			Email:       fmt.Sprintf("c%d@x.com", i),
			PackageType: "starter",
			PackageName: "Starter",
			Price:       "₹5,000",
		})
		require.NoError(t, err)
		ids = append(ids, b.ID)
	}

	all, err := s.GetAllBookings()
	require.NoError(t, err)
	require.Len(t, all, 10)
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if prev.CreatedAt.Equal(cur.CreatedAt) {
			// snowflake ids grow with insertion order, so descending id
			// keeps equal-timestamp records deterministic
			assert.Greater(t, prev.ID, cur.ID)
		} else {
			assert.True(t, prev.CreatedAt.After(cur.CreatedAt))
		}
	}
	// newest insert comes out first
	assert.Equal(t, ids[len(ids)-1], all[0].ID)
}

func TestMemoryStoreRecentIsPrefixOfAll(t *testing.T) {
	s := NewMemoryStore()
	for i := 0; i < 7; i++ {
		_, err := s.CreateContact(domain.InsertContact{
			Name:    fmt.Sprintf("lead-%d", i),
			Email:   fmt.Sprintf("l%d@x.com", i),
			Message: "hi",
		})
		require.NoError(t, err)
	}

	all, err := s.GetAllContacts()
	require.NoError(t, err)

	for _, limit := range []int{0, 1, 5, 7, 100} {
		recent, err := s.GetRecentContacts(limit)
		require.NoError(t, err)
		want := limit
		if want > len(all) {
			want = len(all)
		}
		require.Len(t, recent, want, "limit %d", limit)
		assert.Equal(t, all[:want], recent)
	}

	recent, err := s.GetRecentContacts(-1)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestMemoryStoreSnapshotIsIndependent(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.CreatePayment(domain.InsertPayment{
		CustomerName: "Asha",
		OrderID:      "order_123",
		Amount:       "50000",
		Status:       "completed",
	})
	require.NoError(t, err)

	snap, err := s.GetAllPayments()
	require.NoError(t, err)
	snap[0].Status = "tampered"
	snap[0].CustomerName = "nobody"

	again, err := s.GetAllPayments()
	require.NoError(t, err)
	assert.Equal(t, "completed", again[0].Status)
	assert.Equal(t, "Asha", again[0].CustomerName)
}

func TestMemoryStoreBlogPostDefaults(t *testing.T) {
	s := NewMemoryStore()

	post, err := s.CreateBlogPost(domain.InsertBlogPost{
		Title:    "Five habits",
		Category: "leadership",
		Content:  "...",
	})
	require.NoError(t, err)
	assert.False(t, post.Published)
	assert.Nil(t, post.ImageURL)
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
}

func TestMemoryStoreBlogPostPartialUpdate(t *testing.T) {
	s := NewMemoryStore()

	post, err := s.CreateBlogPost(domain.InsertBlogPost{
		Title:    "Draft",
		Category: "mindset",
		Content:  "original body",
		ImageURL: strptr("https://cdn.example.com/a.jpg"),
	})
	require.NoError(t, err)

	published := true
	updated, err := s.UpdateBlogPost(post.ID, domain.BlogPostPatch{
		Published: &published,
	})
	require.NoError(t, err)

	assert.True(t, updated.Published)
	assert.Equal(t, "Draft", updated.Title)
	assert.Equal(t, "original body", updated.Content)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, "https://cdn.example.com/a.jpg", *updated.ImageURL)
	assert.Equal(t, post.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(post.UpdatedAt))

	// explicit null clears the image, absent leaves it alone
	cleared, err := s.UpdateBlogPost(post.ID, domain.BlogPostPatch{
		ImageURL: domain.OptionalString{Set: true, Valid: false},
	})
	require.NoError(t, err)
	assert.Nil(t, cleared.ImageURL)
	assert.True(t, cleared.Published)
}

func TestMemoryStoreBlogPostUpdateUnknownID(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.UpdateBlogPost("missing", domain.BlogPostPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreBlogPostDelete(t *testing.T) {
	s := NewMemoryStore()
	post, err := s.CreateBlogPost(domain.InsertBlogPost{Title: "t", Category: "c", Content: "x"})
	require.NoError(t, err)

	removed, err := s.DeleteBlogPost(post.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = s.GetBlogPost(post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	removed, err = s.DeleteBlogPost(post.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestMemoryStoreUserByUsername(t *testing.T) {
	s := NewMemoryStore()
	created, err := s.CreateUser(domain.InsertUser{Username: "admin", Password: "secret"})
	require.NoError(t, err)

	byID, err := s.GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)

	byName, err := s.GetUserByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, created, byName)

	_, err = s.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
