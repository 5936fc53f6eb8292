package domain

import "time"

// User is an operator account record. It is stored and queryable but no
// public route exposes it yet.
type User struct {
	ID       string `json:"id" csv:"id"`
	Username string `json:"username" csv:"username"`
	Password string `json:"password" csv:"password"`
}

// Booking represents a customer's package/service selection submitted from
// the packages section of the site.
type Booking struct {
	ID          string    `json:"id" csv:"id"`
	Name        string    `json:"name" csv:"name"`
	Email       string    `json:"email" csv:"email"`
	Phone       *string   `json:"phone" csv:"phone"`
	PackageType string    `json:"packageType" csv:"packageType"`
	PackageName string    `json:"packageName" csv:"packageName"`
	Price       string    `json:"price" csv:"price"`
	CreatedAt   time.Time `json:"createdAt" csv:"createdAt"`
}

// Contact represents a free-text inquiry from the contact form.
type Contact struct {
	ID        string    `json:"id" csv:"id"`
	Name      string    `json:"name" csv:"name"`
	Email     string    `json:"email" csv:"email"`
	Phone     *string   `json:"phone" csv:"phone"`
	Message   string    `json:"message" csv:"message"`
	CreatedAt time.Time `json:"createdAt" csv:"createdAt"`
}

// Payment is a gateway transaction record. Status is a free-form string;
// only "completed" carries meaning in the dashboard counts.
type Payment struct {
	ID           string    `json:"id" csv:"id"`
	CustomerName string    `json:"customerName" csv:"customerName"`
	OrderID      string    `json:"orderId" csv:"orderId"`
	Amount       string    `json:"amount" csv:"amount"`
	Status       string    `json:"status" csv:"status"`
	CreatedAt    time.Time `json:"createdAt" csv:"createdAt"`
}

// Download records a gated-resource download event.
type Download struct {
	ID           string    `json:"id" csv:"id"`
	ResourceName string    `json:"resourceName" csv:"resourceName"`
	UserEmail    string    `json:"userEmail" csv:"userEmail"`
	CreatedAt    time.Time `json:"createdAt" csv:"createdAt"`
}

// BlogPost is the only entity supporting update and delete.
type BlogPost struct {
	ID        string    `json:"id" csv:"id"`
	Title     string    `json:"title" csv:"title"`
	Category  string    `json:"category" csv:"category"`
	Content   string    `json:"content" csv:"content"`
	ImageURL  *string   `json:"imageUrl" csv:"imageUrl"`
	Published bool      `json:"published" csv:"published"`
	CreatedAt time.Time `json:"createdAt" csv:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" csv:"updatedAt"`
}
