package storage

import (
	"github.com/pkg/errors"

	"github.com/coachdesk/coachdesk/internal/domain"
)

// ErrNotFound is returned by lookups and updates addressing an id that
// does not exist in the collection.
var ErrNotFound = errors.New("record not found")

// Storage owns all entity collections. Callers receive independent
// snapshots; mutating a returned slice never affects stored state.
//
// All "get all" and "get recent" views are ordered by createdAt
// descending, ties broken by id descending.
type Storage interface {
	CreateUser(in domain.InsertUser) (domain.User, error)
	GetUser(id string) (domain.User, error)
	GetUserByUsername(username string) (domain.User, error)

	CreateBooking(in domain.InsertBooking) (domain.Booking, error)
	GetAllBookings() ([]domain.Booking, error)
	GetRecentBookings(limit int) ([]domain.Booking, error)

	CreateContact(in domain.InsertContact) (domain.Contact, error)
	GetAllContacts() ([]domain.Contact, error)
	GetRecentContacts(limit int) ([]domain.Contact, error)

	CreatePayment(in domain.InsertPayment) (domain.Payment, error)
	GetAllPayments() ([]domain.Payment, error)
	GetRecentPayments(limit int) ([]domain.Payment, error)

	CreateDownload(in domain.InsertDownload) (domain.Download, error)
	GetAllDownloads() ([]domain.Download, error)
	GetRecentDownloads(limit int) ([]domain.Download, error)

	CreateBlogPost(in domain.InsertBlogPost) (domain.BlogPost, error)
	GetAllBlogPosts() ([]domain.BlogPost, error)
	GetBlogPost(id string) (domain.BlogPost, error)
	UpdateBlogPost(id string, patch domain.BlogPostPatch) (domain.BlogPost, error)
	DeleteBlogPost(id string) (bool, error)

	Close() error
}
