package storage

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/coachdesk/coachdesk/internal/domain"
	"github.com/coachdesk/coachdesk/pkg/common"
)

var (
	bucketUsers     = []byte("users")
	bucketBookings  = []byte("bookings")
	bucketContacts  = []byte("contacts")
	bucketPayments  = []byte("payments")
	bucketDownloads = []byte("downloads")
	bucketBlogPosts = []byte("blog_posts")
)

var boltJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// BoltStore implements Storage on a single bbolt file, one bucket per
// collection, records stored as JSON. It exists as the durable swap-in
// for MemoryStore behind the same interface.
type BoltStore struct {
	db *bolt.DB
}

var _ Storage = (*BoltStore)(nil)

func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open bolt store")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{
			bucketUsers, bucketBookings, bucketContacts,
			bucketPayments, bucketDownloads, bucketBlogPosts,
		} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "init bolt buckets")
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) put(bucket []byte, id string, record interface{}) error {
	data, err := boltJSON.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "encode record")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(id), data)
	})
}

func (s *BoltStore) get(bucket []byte, id string, record interface{}) error {
	return s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucket).Get([]byte(id))
		if data == nil {
			return ErrNotFound
		}
		return boltJSON.Unmarshal(data, record)
	})
}

func (s *BoltStore) scan(bucket []byte, visit func(data []byte) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).ForEach(func(_, data []byte) error {
			return visit(data)
		})
	})
}

func (s *BoltStore) CreateUser(in domain.InsertUser) (domain.User, error) {
	user := domain.User{
		ID:       common.UUIDStr(),
		Username: in.Username,
		Password: in.Password,
	}
	return user, s.put(bucketUsers, user.ID, user)
}

func (s *BoltStore) GetUser(id string) (domain.User, error) {
	var user domain.User
	if err := s.get(bucketUsers, id, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *BoltStore) GetUserByUsername(username string) (domain.User, error) {
	var found *domain.User
	err := s.scan(bucketUsers, func(data []byte) error {
		var user domain.User
		if err := boltJSON.Unmarshal(data, &user); err != nil {
			return err
		}
		if user.Username == username {
			found = &user
		}
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}
	if found == nil {
		return domain.User{}, ErrNotFound
	}
	return *found, nil
}

func (s *BoltStore) CreateBooking(in domain.InsertBooking) (domain.Booking, error) {
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
	return booking, s.put(bucketBookings, booking.ID, booking)
}

func (s *BoltStore) GetAllBookings() ([]domain.Booking, error) {
	out := make([]domain.Booking, 0)
	err := s.scan(bucketBookings, func(data []byte) error {
		var b domain.Booking
		if err := boltJSON.Unmarshal(data, &b); err != nil {
			return err
		}
		out = append(out, b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortNewestFirst(out, func(b domain.Booking) (time.Time, string) { return b.CreatedAt, b.ID })
	return out, nil
}

func (s *BoltStore) GetRecentBookings(limit int) ([]domain.Booking, error) {
	all, err := s.GetAllBookings()
	if err != nil {
		return nil, err
	}
	return head(all, limit), nil
}

func (s *BoltStore) CreateContact(in domain.InsertContact) (domain.Contact, error) {
	contact := domain.Contact{
		ID:        common.UUIDStr(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	return contact, s.put(bucketContacts, contact.ID, contact)
}

func (s *BoltStore) GetAllContacts() ([]domain.Contact, error) {
	out := make([]domain.Contact, 0)
	err := s.scan(bucketContacts, func(data []byte) error {
		var c domain.Contact
		if err := boltJSON.Unmarshal(data, &c); err != nil {
			return err
		}
		out = append(out, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortNewestFirst(out, func(c domain.Contact) (time.Time, string) { return c.CreatedAt, c.ID })
	return out, nil
}

func (s *BoltStore) GetRecentContacts(limit int) ([]domain.Contact, error) {
	all, err := s.GetAllContacts()
	if err != nil {
		return nil, err
	}
	return head(all, limit), nil
}

func (s *BoltStore) CreatePayment(in domain.InsertPayment) (domain.Payment, error) {
	payment := domain.Payment{
		ID:           common.UUIDStr(),
		CustomerName: in.CustomerName,
		OrderID:      in.OrderID,
		Amount:       in.Amount,
		Status:       in.Status,
		CreatedAt:    time.Now(),
	}
	return payment, s.put(bucketPayments, payment.ID, payment)
}

func (s *BoltStore) GetAllPayments() ([]domain.Payment, error) {
	out := make([]domain.Payment, 0)
	err := s.scan(bucketPayments, func(data []byte) error {
		var p domain.Payment
		if err := boltJSON.Unmarshal(data, &p); err != nil {
			return err
		}
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortNewestFirst(out, func(p domain.Payment) (time.Time, string) { return p.CreatedAt, p.ID })
	return out, nil
}

func (s *BoltStore) GetRecentPayments(limit int) ([]domain.Payment, error) {
	all, err := s.GetAllPayments()
	if err != nil {
		return nil, err
	}
	return head(all, limit), nil
}

func (s *BoltStore) CreateDownload(in domain.InsertDownload) (domain.Download, error) {
	download := domain.Download{
		ID:           common.UUIDStr(),
		ResourceName: in.ResourceName,
		UserEmail:    in.UserEmail,
		CreatedAt:    time.Now(),
	}
	return download, s.put(bucketDownloads, download.ID, download)
}

func (s *BoltStore) GetAllDownloads() ([]domain.Download, error) {
	out := make([]domain.Download, 0)
	err := s.scan(bucketDownloads, func(data []byte) error {
		var d domain.Download
		if err := boltJSON.Unmarshal(data, &d); err != nil {
			return err
		}
		out = append(out, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortNewestFirst(out, func(d domain.Download) (time.Time, string) { return d.CreatedAt, d.ID })
	return out, nil
}

func (s *BoltStore) GetRecentDownloads(limit int) ([]domain.Download, error) {
	all, err := s.GetAllDownloads()
	if err != nil {
		return nil, err
	}
	return head(all, limit), nil
}

func (s *BoltStore) CreateBlogPost(in domain.InsertBlogPost) (domain.BlogPost, error) {
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
	return post, s.put(bucketBlogPosts, post.ID, post)
}

func (s *BoltStore) GetAllBlogPosts() ([]domain.BlogPost, error) {
	out := make([]domain.BlogPost, 0)
	err := s.scan(bucketBlogPosts, func(data []byte) error {
		var p domain.BlogPost
		if err := boltJSON.Unmarshal(data, &p); err != nil {
			return err
		}
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortNewestFirst(out, func(p domain.BlogPost) (time.Time, string) { return p.CreatedAt, p.ID })
	return out, nil
}

func (s *BoltStore) GetBlogPost(id string) (domain.BlogPost, error) {
	var post domain.BlogPost
	if err := s.get(bucketBlogPosts, id, &post); err != nil {
		return domain.BlogPost{}, err
	}
	return post, nil
}

func (s *BoltStore) UpdateBlogPost(id string, patch domain.BlogPostPatch) (domain.BlogPost, error) {
	var post domain.BlogPost
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketBlogPosts)
		data := bucket.Get([]byte(id))
		if data == nil {
			return ErrNotFound
		}
		if err := boltJSON.Unmarshal(data, &post); err != nil {
			return err
		}
		applyBlogPostPatch(&post, patch)
		post.UpdatedAt = time.Now()
		updated, err := boltJSON.Marshal(post)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(id), updated)
	})
	if err != nil {
		return domain.BlogPost{}, err
	}
	return post, nil
}

func (s *BoltStore) DeleteBlogPost(id string) (bool, error) {
	found := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketBlogPosts)
		if bucket.Get([]byte(id)) == nil {
			return nil
		}
		found = true
		return bucket.Delete([]byte(id))
	})
	return found, err
}
