package apiclient

import (
	"context"
	"net/http"

	"github.com/indigo-rhapsody/indigo-admin/internal/api"
	"github.com/indigo-rhapsody/indigo-admin/internal/domain"
)

func (c *APIClient) ListQueries(ctx context.Context, sess Session) ([]domain.Query, error) {
	return fetchList[domain.Query](ctx, c, sess, "/queries", "Failed to fetch queries", "queries")
}

// RespondToQuery stores the admin's answer. An empty status marks the query
// resolved.
func (c *APIClient) RespondToQuery(ctx context.Context, sess Session, id string, req api.QueryResponseRequest) error {
	if req.Status == "" {
		req.Status = domain.QueryResolved
	}
	return c.exec(ctx, sess, "/queries/"+escape(id)+"/respond", Request{Method: http.MethodPut, Body: req}, "Failed to respond to query")
}

func (c *APIClient) DeleteQuery(ctx context.Context, sess Session, id string) error {
	return c.exec(ctx, sess, "/queries/"+escape(id), Request{Method: http.MethodDelete}, "Failed to delete query")
}
