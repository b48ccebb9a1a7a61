package apiclient

import (
	"context"
	"net/http"

	"github.com/indigo-rhapsody/indigo-admin/internal/api"
	"github.com/indigo-rhapsody/indigo-admin/internal/domain"
)

// === Designer Methods ===

func (c *APIClient) ListDesigners(ctx context.Context, sess Session) ([]domain.Designer, error) {
	return fetchList[domain.Designer](ctx, c, sess, "/designer", "Failed to fetch designers", "designers")
}

func (c *APIClient) GetDesigner(ctx context.Context, sess Session, id string) (domain.Designer, error) {
	return fetchOne[domain.Designer](ctx, c, sess, "/designer/"+escape(id), "Failed to fetch designer", "designer")
}

func (c *APIClient) SetDesignerApproval(ctx context.Context, sess Session, id string, approved bool) error {
	return c.exec(ctx, sess, "/designer/"+escape(id)+"/approval", Request{
		Method: http.MethodPatch,
		Body:   api.ApprovalRequest{IsApproved: approved},
	}, "Failed to update designer approval")
}

func (c *APIClient) DeleteDesigner(ctx context.Context, sess Session, id string) error {
	return c.exec(ctx, sess, "/designer/"+escape(id), Request{Method: http.MethodDelete}, "Failed to delete designer")
}

// === Designer update requests ===

func (c *APIClient) ListDesignerRequests(ctx context.Context, sess Session) ([]domain.DesignerRequest, error) {
	return fetchList[domain.DesignerRequest](ctx, c, sess, "/designer/requests", "Failed to fetch designer requests", "requests")
}

func (c *APIClient) ApproveDesignerRequest(ctx context.Context, sess Session, id string) error {
	return c.exec(ctx, sess, "/designer/requests/"+escape(id)+"/approve", Request{Method: http.MethodPatch}, "Failed to approve designer request")
}

func (c *APIClient) RejectDesignerRequest(ctx context.Context, sess Session, id, reason string) error {
	return c.exec(ctx, sess, "/designer/requests/"+escape(id)+"/reject", Request{
		Method: http.MethodPatch,
		Body:   api.RejectRequest{Reason: reason},
	}, "Failed to reject designer request")
}
