package apiclient

import (
	"context"
	"net/http"

	"github.com/indigo-rhapsody/indigo-admin/internal/domain"
)

func (c *APIClient) ListUsers(ctx context.Context, sess Session) ([]domain.User, error) {
	return fetchList[domain.User](ctx, c, sess, "/user", "Failed to fetch users", "users")
}

func (c *APIClient) GetUser(ctx context.Context, sess Session, id string) (domain.User, error) {
	return fetchOne[domain.User](ctx, c, sess, "/user/"+escape(id), "Failed to fetch user", "user")
}

func (c *APIClient) DeleteUser(ctx context.Context, sess Session, id string) error {
	return c.exec(ctx, sess, "/user/"+escape(id), Request{Method: http.MethodDelete}, "Failed to delete user")
}
