package apiclient

import (
	"context"
	"encoding/json"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/indigo-rhapsody/indigo-admin/internal/domain"
)

// DashboardStats fetches the dashboard counters and recent orders in
// parallel. The first failure cancels the remaining calls.
func (c *APIClient) DashboardStats(ctx context.Context, sess Session) (domain.DashboardStats, error) {
	var stats domain.DashboardStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		raw, err := c.Call(gctx, sess, "/order/total-orders", Request{})
		if err != nil {
			return withFallback(err, "Failed to fetch order totals")
		}
		stats.TotalOrders = int(countFrom(raw, "totalOrders", "count"))
		stats.TotalSales = countFrom(raw, "totalSales", "totalAmount", "revenue")
		return nil
	})
	g.Go(func() error {
		n, err := c.count(gctx, sess, "/user/total-users", "Failed to fetch user count", "totalUsers")
		stats.TotalUsers = n
		return err
	})
	g.Go(func() error {
		n, err := c.count(gctx, sess, "/designer/total-designers", "Failed to fetch designer count", "totalDesigners")
		stats.TotalDesigners = n
		return err
	})
	g.Go(func() error {
		n, err := c.count(gctx, sess, "/products/total-products", "Failed to fetch product count", "totalProducts")
		stats.TotalProducts = n
		return err
	})
	g.Go(func() error {
		orders, err := fetchList[domain.Order](gctx, c, sess, "/order/recent", "Failed to fetch recent orders", "orders", "recentOrders")
		stats.RecentOrders = orders
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.DashboardStats{}, err
	}
	return stats, nil
}

func (c *APIClient) count(ctx context.Context, sess Session, endpoint, fallback, key string) (int, error) {
	raw, err := c.Call(ctx, sess, endpoint, Request{})
	if err != nil {
		return 0, withFallback(err, fallback)
	}
	return int(countFrom(raw, key, "count", "total")), nil
}

// countFrom reads a number that the backend returns either bare or under one
// of keys, possibly nested in "data". Numbers encoded as strings are
// accepted. Anything else counts as zero.
func countFrom(raw json.RawMessage, keys ...string) float64 {
	if n, ok := number(raw); ok {
		return n
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return 0
	}
	for _, key := range keys {
		if v, ok := envelope[key]; ok {
			if n, ok := number(v); ok {
				return n
			}
		}
	}
	if inner, ok := envelope["data"]; ok {
		return countFrom(inner, keys...)
	}
	return 0
}

func number(raw json.RawMessage) (float64, bool) {
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}
