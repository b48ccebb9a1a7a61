package apiclient

import (
	"context"
	"time"

	"github.com/indigo-rhapsody/indigo-admin/internal/domain"
	"github.com/indigo-rhapsody/indigo-admin/internal/logger"
	"github.com/indigo-rhapsody/indigo-admin/internal/retry"
)

// ListPayments is the one fetch that retries: network failures are retried
// with the PaymentsRetry policy, every other error is returned at once.
func (c *APIClient) ListPayments(ctx context.Context, sess Session) ([]domain.Payment, error) {
	policy := c.PaymentsRetry
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	policy.OnRetry = func(attempt int, err error, backoff time.Duration) {
		logger.Log.WarnContext(ctx, "retrying payments fetch", "attempt", attempt, "error", err, "backoff", backoff)
	}

	return retry.Do(ctx, policy, classifyRetry, func(ctx context.Context) ([]domain.Payment, error) {
		return fetchList[domain.Payment](ctx, c, sess, "/payment", "Failed to fetch payments", "payments")
	})
}

func classifyRetry(err error) retry.Action {
	if KindOf(err) == KindNetwork {
		return retry.Retry
	}
	return retry.Stop
}

func (c *APIClient) GetPayment(ctx context.Context, sess Session, id string) (domain.Payment, error) {
	return fetchOne[domain.Payment](ctx, c, sess, "/payment/"+escape(id), "Failed to fetch payment", "payment")
}
