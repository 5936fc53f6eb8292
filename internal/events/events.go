// Package events defines the in-process event topics published when the
// public API captures a lead or verifies a payment. Subscribers are wired
// in internal/app.
package events

// Topic names. Handlers receive the payload types below.
const (
	TopicLeadCreated     = "leads:created"
	TopicPaymentVerified = "payments:verified"
)

// LeadCreated is published for every new booking or contact. Kind is one
// of domain.LeadKindBooking / domain.LeadKindContact.
type LeadCreated struct {
	Kind  string
	ID    string
	Name  string
	Email string
}

// PaymentVerified is published after a gateway signature check succeeds
// and the payment record is stored.
type PaymentVerified struct {
	PaymentID string
	OrderID   string
}
