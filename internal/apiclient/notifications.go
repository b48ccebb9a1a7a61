package apiclient

import (
	"context"
	"net/http"

	"github.com/indigo-rhapsody/indigo-admin/internal/api"
	"github.com/indigo-rhapsody/indigo-admin/internal/domain"
)

func (c *APIClient) ListNotifications(ctx context.Context, sess Session) ([]domain.Notification, error) {
	return fetchList[domain.Notification](ctx, c, sess, "/notification", "Failed to fetch notifications", "notifications")
}

func (c *APIClient) SendNotification(ctx context.Context, sess Session, req api.NotificationRequest) error {
	return c.exec(ctx, sess, "/notification/send", Request{Method: http.MethodPost, Body: req}, "Failed to send notification")
}
