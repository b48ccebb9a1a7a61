package apiclient

import (
	"context"
	"net/http"

	"github.com/indigo-rhapsody/indigo-admin/internal/api"
	"github.com/indigo-rhapsody/indigo-admin/internal/domain"
)

func (c *APIClient) ListOrders(ctx context.Context, sess Session) ([]domain.Order, error) {
	return fetchList[domain.Order](ctx, c, sess, "/order", "Failed to fetch orders", "orders")
}

func (c *APIClient) GetOrder(ctx context.Context, sess Session, id string) (domain.Order, error) {
	return fetchOne[domain.Order](ctx, c, sess, "/order/"+escape(id), "Failed to fetch order", "order")
}

func (c *APIClient) UpdateOrderStatus(ctx context.Context, sess Session, id, status string) error {
	return c.exec(ctx, sess, "/order/"+escape(id)+"/status", Request{
		Method: http.MethodPut,
		Body:   api.OrderStatusRequest{Status: status},
	}, "Failed to update order status")
}
