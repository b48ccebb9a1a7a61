package apiclient

import (
	"context"
	"net/http"

	"github.com/indigo-rhapsody/indigo-admin/internal/api"
	"github.com/indigo-rhapsody/indigo-admin/internal/domain"
)

func (c *APIClient) ListBanners(ctx context.Context, sess Session) ([]domain.Banner, error) {
	return fetchList[domain.Banner](ctx, c, sess, "/banner", "Failed to fetch banners", "banners")
}

func (c *APIClient) CreateBanner(ctx context.Context, sess Session, req api.BannerRequest) error {
	return c.exec(ctx, sess, "/banner", Request{Method: http.MethodPost, Body: req}, "Failed to create banner")
}

func (c *APIClient) UpdateBanner(ctx context.Context, sess Session, id string, req api.BannerRequest) error {
	return c.exec(ctx, sess, "/banner/"+escape(id), Request{Method: http.MethodPut, Body: req}, "Failed to update banner")
}

func (c *APIClient) DeleteBanner(ctx context.Context, sess Session, id string) error {
	return c.exec(ctx, sess, "/banner/"+escape(id), Request{Method: http.MethodDelete}, "Failed to delete banner")
}
