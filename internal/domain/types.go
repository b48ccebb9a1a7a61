package domain

import "time"

type (
	ID    = string
	Email = string
)

type AdminUser struct {
	Id    ID     `json:"_id"`
	Email Email  `json:"email"`
	Role  string `json:"role"`
}

type DashboardStats struct {
	TotalOrders    int
	TotalSales     float64
	TotalUsers     int
	TotalDesigners int
	TotalProducts  int
	RecentOrders   []Order
}

// Approval states shared by designer requests, subcategories and videos.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Designer struct {
	Id               ID        `json:"_id"`
	Name             string    `json:"name"`
	Email            Email     `json:"email"`
	Phone            string    `json:"phone"`
	ShortDescription string    `json:"shortDescription"`
	LogoURL          string    `json:"logoUrl"`
	IsApproved       bool      `json:"is_approved"`
	CreatedAt        time.Time `json:"createdAt"`
}

type DesignerRequest struct {
	Id           ID             `json:"_id"`
	DesignerId   ID             `json:"designerId"`
	DesignerName string         `json:"designerName"`
	Changes      map[string]any `json:"requestedUpdates"`
	Status       string         `json:"status"`
	Reason       string         `json:"reason,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

type Product struct {
	Id           ID        `json:"_id"`
	Name         string    `json:"productName"`
	DesignerName string    `json:"designerName"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"createdAt"`
}

type OrderItem struct {
	ProductId   ID      `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type Order struct {
	Id            ID          `json:"_id"`
	OrderId       string      `json:"orderId"`
	CustomerName  string      `json:"customerName"`
	Email         Email       `json:"email"`
	Amount        float64     `json:"amount"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"paymentStatus"`
	Items         []OrderItem `json:"products"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// Order statuses accepted by the backend's status update endpoint.
var OrderStatuses = []string{"Order Placed", "Processing", "Shipped", "Delivered", "Cancelled", "Returned"}

type User struct {
	Id          ID        `json:"_id"`
	DisplayName string    `json:"displayName"`
	Email       Email     `json:"email"`
	Phone       string    `json:"phoneNumber"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Payment struct {
	Id            ID        `json:"_id"`
	OrderId       string    `json:"orderId"`
	CustomerName  string    `json:"customerName"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"paymentMethod"`
	Status        string    `json:"paymentStatus"`
	TransactionId string    `json:"transactionId"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Coupon struct {
	Id         ID        `json:"_id"`
	Code       string    `json:"couponCode"`
	Amount     float64   `json:"couponAmount"`
	ExpiryDate time.Time `json:"expiryDate"`
	UsageCount int       `json:"usageCount"`
	IsActive   bool      `json:"isActive"`
}

type Category struct {
	Id        ID        `json:"_id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

type Subcategory struct {
	Id           ID        `json:"_id"`
	Name         string    `json:"name"`
	CategoryId   ID        `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	Image        string    `json:"image"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Banner struct {
	Id        ID        `json:"_id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Link      string    `json:"link"`
	Platform  string    `json:"platform"`
	CreatedAt time.Time `json:"createdAt"`
}

type Blog struct {
	Id        ID        `json:"_id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
}

type Video struct {
	Id          ID        `json:"_id"`
	Title       string    `json:"title"`
	CreatorName string    `json:"creatorName"`
	URL         string    `json:"videoUrl"`
	Status      string    `json:"status"`
	Reason      string    `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Query struct {
	Id        ID        `json:"_id"`
	Name      string    `json:"name"`
	Email     Email     `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Response  string    `json:"response,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Query statuses.
const (
	QueryOpen     = "open"
	QueryResolved = "resolved"
)

type Notification struct {
	Id        ID        `json:"_id"`
	Title     string    `json:"title"`
	Body      string    `json:"message"`
	Target    string    `json:"target"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notification audiences.
var NotificationTargets = []string{"all", "users", "designers"}
