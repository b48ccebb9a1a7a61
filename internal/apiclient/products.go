package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/indigo-rhapsody/indigo-admin/internal/api"
	"github.com/indigo-rhapsody/indigo-admin/internal/domain"
)

// maxProductPages bounds the page walk in case the backend keeps returning
// full pages without pagination metadata.
const maxProductPages = 1000

type productPage struct {
	Products   []domain.Product `json:"products"`
	TotalPages int              `json:"totalPages"`
	Pagination struct {
		TotalPages int `json:"totalPages"`
	} `json:"pagination"`
}

func (p productPage) totalPages() int {
	if p.TotalPages > 0 {
		return p.TotalPages
	}
	return p.Pagination.TotalPages
}

// ListProducts walks every page of the server-paginated products endpoint.
func (c *APIClient) ListProducts(ctx context.Context, sess Session) ([]domain.Product, error) {
	limit := c.ProductsLimit
	if limit <= 0 {
		limit = DefaultProductsLimit
	}

	products := []domain.Product{}
	for page := 1; page <= maxProductPages; page++ {
		resp, err := fetch[productPage](ctx, c, sess, fmt.Sprintf("/products?page=%d&limit=%d", page, limit), Request{}, "Failed to fetch products")
		if err != nil {
			return nil, err
		}
		products = append(products, resp.Products...)

		total := resp.totalPages()
		if len(resp.Products) == 0 || (total > 0 && page >= total) || (total == 0 && len(resp.Products) < limit) {
			break
		}
	}
	return products, nil
}

func (c *APIClient) GetProduct(ctx context.Context, sess Session, id string) (domain.Product, error) {
	return fetchOne[domain.Product](ctx, c, sess, "/products/"+escape(id), "Failed to fetch product", "product")
}

func (c *APIClient) SetProductStatus(ctx context.Context, sess Session, id string, enabled bool) error {
	return c.exec(ctx, sess, "/products/"+escape(id)+"/status", Request{
		Method: http.MethodPatch,
		Body:   api.ProductStatusRequest{Enabled: enabled},
	}, "Failed to update product status")
}

func (c *APIClient) DeleteProduct(ctx context.Context, sess Session, id string) error {
	return c.exec(ctx, sess, "/products/"+escape(id), Request{Method: http.MethodDelete}, "Failed to delete product")
}
