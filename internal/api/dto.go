package api

import "github.com/indigo-rhapsody/indigo-admin/internal/domain"

// Request DTOs sent to the backend. Validation tags are checked by the form
// handlers before the request leaves the console.

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string           `json:"accessToken"`
	User        domain.AdminUser `json:"user"`
}

type ApprovalRequest struct {
	IsApproved bool `json:"is_approved"`
}

type RejectRequest struct {
	Reason string `json:"reason,omitempty"`
}

type ProductStatusRequest struct {
	Enabled bool `json:"enabled"`
}

type OrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CouponRequest struct {
	Code       string  `json:"couponCode" validate:"required,max=32"`
	Amount     float64 `json:"couponAmount" validate:"gt=0"`
	ExpiryDate string  `json:"expiryDate" validate:"required,datetime=2006-01-02"`
}

type CategoryRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Image string `json:"image" validate:"omitempty,url"`
}

type BannerRequest struct {
	Name     string `json:"name" validate:"required"`
	Image    string `json:"image" validate:"required,url"`
	Link     string `json:"link" validate:"omitempty,url"`
	Platform string `json:"platform" validate:"omitempty,oneof=web mobile"`
}

type BlogRequest struct {
	Title     string `json:"title" validate:"required,max=200"`
	Author    string `json:"author"`
	Content   string `json:"content" validate:"required"`
	Image     string `json:"image" validate:"omitempty,url"`
	Published bool   `json:"published"`
}

type QueryResponseRequest struct {
	Response string `json:"response" validate:"required"`
	Status   string `json:"status"`
}

type NotificationRequest struct {
	Title  string `json:"title" validate:"required,max=120"`
	Body   string `json:"message" validate:"required"`
	Target string `json:"target" validate:"required,oneof=all users designers"`
}
