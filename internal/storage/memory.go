package storage

import (
	"sync"
	"time"

	"github.com/coachdesk/coachdesk/internal/domain"
	"github.com/coachdesk/coachdesk/pkg/common"
)

// MemoryStore keeps every collection in a process-local map. One RWMutex
// per collection serializes mutation; records are stored and returned by
// value so no caller holds a mutable reference into the store.
type MemoryStore struct {
	usersMu sync.RWMutex
	users   map[string]domain.User

	bookingsMu sync.RWMutex
	bookings   map[string]domain.Booking

	contactsMu sync.RWMutex
	contacts   map[string]domain.Contact

	paymentsMu sync.RWMutex
	payments   map[string]domain.Payment

	downloadsMu sync.RWMutex
	downloads   map[string]domain.Download

	blogPostsMu sync.RWMutex
	blogPosts   map[string]domain.BlogPost
}

var _ Storage = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:     make(map[string]domain.User),
		bookings:  make(map[string]domain.Booking),
		contacts:  make(map[string]domain.Contact),
		payments:  make(map[string]domain.Payment),
		downloads: make(map[string]domain.Download),
		blogPosts: make(map[string]domain.BlogPost),
	}
}

func (s *MemoryStore) CreateUser(in domain.InsertUser) (domain.User, error) {
	user := domain.User{
		ID:       common.UUIDStr(),
		Username: in.Username,
		Password: in.Password,
	}
	s.usersMu.Lock()
	s.users[user.ID] = user
	s.usersMu.Unlock()
	return user, nil
}

func (s *MemoryStore) GetUser(id string) (domain.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	return user, nil
}

func (s *MemoryStore) GetUserByUsername(username string) (domain.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return domain.User{}, ErrNotFound
}

func (s *MemoryStore) CreateBooking(in domain.InsertBooking) (domain.Booking, error) {
	booking := domain.Booking{
		ID:          common.UUIDStr(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		PackageType: in.PackageType,
		PackageName: in.PackageName,
		Price:       in.Price,
		CreatedAt:   time.Now(),
	}
	s.bookingsMu.Lock()
	s.bookings[booking.ID] = booking
	s.bookingsMu.Unlock()
	return booking, nil
}

func (s *MemoryStore) GetAllBookings() ([]domain.Booking, error) {
	s.bookingsMu.RLock()
	out := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	s.bookingsMu.RUnlock()

	sortNewestFirst(out, func(b domain.Booking) (time.Time, string) { return b.CreatedAt, b.ID })
	return out, nil
}

func (s *MemoryStore) GetRecentBookings(limit int) ([]domain.Booking, error) {
	all, err := s.GetAllBookings()
	if err != nil {
		return nil, err
	}
	return head(all, limit), nil
}

func (s *MemoryStore) CreateContact(in domain.InsertContact) (domain.Contact, error) {
	contact := domain.Contact{
		ID:        common.UUIDStr(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	s.contactsMu.Lock()
	s.contacts[contact.ID] = contact
	s.contactsMu.Unlock()
	return contact, nil
}

func (s *MemoryStore) GetAllContacts() ([]domain.Contact, error) {
	s.contactsMu.RLock()
	out := make([]domain.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		out = append(out, c)
	}
	s.contactsMu.RUnlock()

	sortNewestFirst(out, func(c domain.Contact) (time.Time, string) { return c.CreatedAt, c.ID })
	return out, nil
}

func (s *MemoryStore) GetRecentContacts(limit int) ([]domain.Contact, error) {
	all, err := s.GetAllContacts()
	if err != nil {
		return nil, err
	}
	return head(all, limit), nil
}

func (s *MemoryStore) CreatePayment(in domain.InsertPayment) (domain.Payment, error) {
	payment := domain.Payment{
		ID:           common.UUIDStr(),
		CustomerName: in.CustomerName,
		OrderID:      in.OrderID,
		Amount:       in.Amount,
		Status:       in.Status,
		CreatedAt:    time.Now(),
	}
	s.paymentsMu.Lock()
	s.payments[payment.ID] = payment
	s.paymentsMu.Unlock()
	return payment, nil
}

func (s *MemoryStore) GetAllPayments() ([]domain.Payment, error) {
	s.paymentsMu.RLock()
	out := make([]domain.Payment, 0, len(s.payments))
	for _, p := range s.payments {
		out = append(out, p)
	}
	s.paymentsMu.RUnlock()

	sortNewestFirst(out, func(p domain.Payment) (time.Time, string) { return p.CreatedAt, p.ID })
	return out, nil
}

func (s *MemoryStore) GetRecentPayments(limit int) ([]domain.Payment, error) {
	all, err := s.GetAllPayments()
	if err != nil {
		return nil, err
	}
	return head(all, limit), nil
}

func (s *MemoryStore) CreateDownload(in domain.InsertDownload) (domain.Download, error) {
	download := domain.Download{
		ID:           common.UUIDStr(),
		ResourceName: in.ResourceName,
		UserEmail:    in.UserEmail,
		CreatedAt:    time.Now(),
	}
	s.downloadsMu.Lock()
	s.downloads[download.ID] = download
	s.downloadsMu.Unlock()
	return download, nil
}

func (s *MemoryStore) GetAllDownloads() ([]domain.Download, error) {
	s.downloadsMu.RLock()
	out := make([]domain.Download, 0, len(s.downloads))
	for _, d := range s.downloads {
		out = append(out, d)
	}
	s.downloadsMu.RUnlock()

	sortNewestFirst(out, func(d domain.Download) (time.Time, string) { return d.CreatedAt, d.ID })
	return out, nil
}

func (s *MemoryStore) GetRecentDownloads(limit int) ([]domain.Download, error) {
	all, err := s.GetAllDownloads()
	if err != nil {
		return nil, err
	}
	return head(all, limit), nil
}

func (s *MemoryStore) CreateBlogPost(in domain.InsertBlogPost) (domain.BlogPost, error) {
	now := time.Now()
	post := domain.BlogPost{
		ID:        common.UUIDStr(),
		Title:     in.Title,
		Category:  in.Category,
		Content:   in.Content,
		ImageURL:  in.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Published != nil {
		post.Published = *in.Published
	}
	s.blogPostsMu.Lock()
	s.blogPosts[post.ID] = post
	s.blogPostsMu.Unlock()
	return post, nil
}

func (s *MemoryStore) GetAllBlogPosts() ([]domain.BlogPost, error) {
	s.blogPostsMu.RLock()
	out := make([]domain.BlogPost, 0, len(s.blogPosts))
	for _, p := range s.blogPosts {
		out = append(out, p)
	}
	s.blogPostsMu.RUnlock()

	sortNewestFirst(out, func(p domain.BlogPost) (time.Time, string) { return p.CreatedAt, p.ID })
	return out, nil
}

func (s *MemoryStore) GetBlogPost(id string) (domain.BlogPost, error) {
	s.blogPostsMu.RLock()
	defer s.blogPostsMu.RUnlock()
	post, ok := s.blogPosts[id]
	if !ok {
		return domain.BlogPost{}, ErrNotFound
	}
	return post, nil
}

func (s *MemoryStore) UpdateBlogPost(id string, patch domain.BlogPostPatch) (domain.BlogPost, error) {
	s.blogPostsMu.Lock()
	defer s.blogPostsMu.Unlock()

	post, ok := s.blogPosts[id]
	if !ok {
		return domain.BlogPost{}, ErrNotFound
	}
	applyBlogPostPatch(&post, patch)
	post.UpdatedAt = time.Now()
	s.blogPosts[id] = post
	return post, nil
}

func (s *MemoryStore) DeleteBlogPost(id string) (bool, error) {
	s.blogPostsMu.Lock()
	defer s.blogPostsMu.Unlock()
	if _, ok := s.blogPosts[id]; !ok {
		return false, nil
	}
	delete(s.blogPosts, id)
	return true, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// applyBlogPostPatch overwrites only the fields the patch actually
// carries, so an absent field is never mistaken for an explicit null.
func applyBlogPostPatch(post *domain.BlogPost, patch domain.BlogPostPatch) {
	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Category != nil {
		post.Category = *patch.Category
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if patch.ImageURL.Set {
		if patch.ImageURL.Valid {
			v := patch.ImageURL.Value
			post.ImageURL = &v
		} else {
			post.ImageURL = nil
		}
	}
	if patch.Published != nil {
		post.Published = *patch.Published
	}
}
