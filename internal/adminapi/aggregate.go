package adminapi

import (
	"sort"

	"github.com/coachdesk/coachdesk/internal/domain"
	"github.com/coachdesk/coachdesk/internal/storage"
)

// PaymentCompleted is the only payment status the dashboard counts.
const PaymentCompleted = "completed"

// ComputeStats builds the dashboard summary. Contacted equals the contact
// count (every submission counts as contacted) and pending stays zero:
// nothing in the system tracks a pending state.
func ComputeStats(store storage.Storage) (domain.AdminStats, error) {
	var stats domain.AdminStats

	bookings, err := store.GetAllBookings()
	if err != nil {
		return stats, err
	}
	contacts, err := store.GetAllContacts()
	if err != nil {
		return stats, err
	}
	payments, err := store.GetAllPayments()
	if err != nil {
		return stats, err
	}
	downloads, err := store.GetAllDownloads()
	if err != nil {
		return stats, err
	}
	posts, err := store.GetAllBlogPosts()
	if err != nil {
		return stats, err
	}

	stats.Bookings = len(bookings)
	stats.Contacts = len(contacts)
	stats.Payments = len(payments)
	stats.Downloads = len(downloads)
	for _, p := range posts {
		if p.Published {
			stats.BlogPosts++
		}
	}
	stats.Contacted = len(contacts)
	for _, p := range payments {
		if p.Status == PaymentCompleted {
			stats.Completed++
		}
	}
	stats.TotalRecords = stats.Bookings + stats.Contacts + stats.Payments + stats.Downloads
	return stats, nil
}

// MergeLeads concatenates bookings and contacts into one feed, each entry
// tagged with its kind, ordered newest first with a stable tie-break.
func MergeLeads(store storage.Storage) ([]domain.Lead, error) {
	bookings, err := store.GetAllBookings()
	if err != nil {
		return nil, err
	}
	contacts, err := store.GetAllContacts()
	if err != nil {
		return nil, err
	}

	leads := make([]domain.Lead, 0, len(bookings)+len(contacts))
	for _, b := range bookings {
		leads = append(leads, domain.Lead{
			Type:        domain.LeadKindBooking,
			ID:          b.ID,
			Name:        b.Name,
			Email:       b.Email,
			Phone:       b.Phone,
			CreatedAt:   b.CreatedAt,
			PackageType: b.PackageType,
			PackageName: b.PackageName,
			Price:       b.Price,
		})
	}
	for _, c := range contacts {
		leads = append(leads, domain.Lead{
			Type:      domain.LeadKindContact,
			ID:        c.ID,
			Name:      c.Name,
			Email:     c.Email,
			Phone:     c.Phone,
			CreatedAt: c.CreatedAt,
			Message:   c.Message,
		})
	}

	sort.SliceStable(leads, func(i, j int) bool {
		if !leads[i].CreatedAt.Equal(leads[j].CreatedAt) {
			return leads[i].CreatedAt.After(leads[j].CreatedAt)
		}
		return leads[i].ID > leads[j].ID
	})
	return leads, nil
}
