package domain

import "time"

// Lead kinds used in the merged admin feed.
const (
	LeadKindBooking = "booking"
	LeadKindContact = "contact"
)

// Lead is a Booking or Contact flattened into the unified admin feed,
// discriminated by Type.
type Lead struct {
	Type      string    `json:"type"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`

	// Booking fields, empty for contacts.
	PackageType string `json:"packageType,omitempty"`
	PackageName string `json:"packageName,omitempty"`
	Price       string `json:"price,omitempty"`

	// Contact fields, empty for bookings.
	Message string `json:"message,omitempty"`
}

// AdminStats is the dashboard summary. Pending has no backing state
// anywhere in the system and stays zero.
type AdminStats struct {
	Bookings     int `json:"bookings"`
	Contacts     int `json:"contacts"`
	Payments     int `json:"payments"`
	Downloads    int `json:"downloads"`
	BlogPosts    int `json:"blogPosts"`
	Pending      int `json:"pending"`
	Contacted    int `json:"contacted"`
	Completed    int `json:"completed"`
	TotalRecords int `json:"totalRecords"`
}
