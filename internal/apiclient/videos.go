package apiclient

import (
	"context"
	"net/http"

	"github.com/indigo-rhapsody/indigo-admin/internal/api"
	"github.com/indigo-rhapsody/indigo-admin/internal/domain"
)

func (c *APIClient) ListVideos(ctx context.Context, sess Session) ([]domain.Video, error) {
	return fetchList[domain.Video](ctx, c, sess, "/video", "Failed to fetch videos", "videos")
}

func (c *APIClient) ApproveVideo(ctx context.Context, sess Session, id string) error {
	return c.exec(ctx, sess, "/video/"+escape(id)+"/approve", Request{Method: http.MethodPatch}, "Failed to approve video")
}

func (c *APIClient) RejectVideo(ctx context.Context, sess Session, id, reason string) error {
	return c.exec(ctx, sess, "/video/"+escape(id)+"/reject", Request{
		Method: http.MethodPatch,
		Body:   api.RejectRequest{Reason: reason},
	}, "Failed to reject video")
}
