package apiclient

import (
	"context"
	"net/http"

	"github.com/indigo-rhapsody/indigo-admin/internal/api"
	"github.com/indigo-rhapsody/indigo-admin/internal/domain"
)

func (c *APIClient) ListCoupons(ctx context.Context, sess Session) ([]domain.Coupon, error) {
	return fetchList[domain.Coupon](ctx, c, sess, "/coupon", "Failed to fetch coupons", "coupons")
}

func (c *APIClient) CreateCoupon(ctx context.Context, sess Session, req api.CouponRequest) error {
	return c.exec(ctx, sess, "/coupon", Request{Method: http.MethodPost, Body: req}, "Failed to create coupon")
}

func (c *APIClient) UpdateCoupon(ctx context.Context, sess Session, id string, req api.CouponRequest) error {
	return c.exec(ctx, sess, "/coupon/"+escape(id), Request{Method: http.MethodPut, Body: req}, "Failed to update coupon")
}

func (c *APIClient) DeleteCoupon(ctx context.Context, sess Session, id string) error {
	return c.exec(ctx, sess, "/coupon/"+escape(id), Request{Method: http.MethodDelete}, "Failed to delete coupon")
}
