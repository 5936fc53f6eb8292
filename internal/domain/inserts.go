package domain

// Insert types carry caller-supplied fields only. Identifiers and
// timestamps are assigned by the storage layer.

type InsertUser struct {
	Username string
	Password string
}

type InsertBooking struct {
	Name        string
	Email       string
	Phone       *string
	PackageType string
	PackageName string
	Price       string
}

type InsertContact struct {
	Name    string
	Email   string
	Phone   *string
	Message string
}

type InsertPayment struct {
	CustomerName string
	OrderID      string
	Amount       string
	Status       string
}

type InsertDownload struct {
	ResourceName string
	UserEmail    string
}

type InsertBlogPost struct {
	Title     string
	Category  string
	Content   string
	ImageURL  *string
	Published *bool
}

// OptionalString distinguishes "field not provided" from "field set to
// null" in partial updates.
type OptionalString struct {
	Set   bool
	Valid bool
	Value string
}

// BlogPostPatch applies only the fields a PATCH request actually carried.
// ID and CreatedAt are never patchable.
type BlogPostPatch struct {
	Title     *string
	Category  *string
	Content   *string
	ImageURL  OptionalString
	Published *bool
}
