package handler

import (
	"cmp"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/indigo-rhapsody/indigo-admin/internal/errors"
	"github.com/indigo-rhapsody/indigo-admin/internal/resource"
)

const dateLayout = "2006-01-02"

// Badge classes understood by the stylesheet.
const (
	badgeOK    = "ok"
	badgeWarn  = "warn"
	badgeBad   = "bad"
	badgeMuted = "muted"
)

// Date formats a backend timestamp for tables; the zero time is "-".
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}

// Money formats an amount in rupees.
func Money(v float64) string {
	return fmt.Sprintf("₹%.2f", v)
}

func yesNo(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}

// statusBadge colours the free-form status strings the backend uses.
func statusBadge(status string) string {
	switch strings.ToLower(status) {
	case "approved", "delivered", "completed", "success", "paid", "resolved", "active", "enabled", "published":
		return badgeOK
	case "pending", "processing", "order placed", "shipped", "open", "draft":
		return badgeWarn
	case "rejected", "cancelled", "failed", "returned", "disabled", "inactive", "expired":
		return badgeBad
	}
	return badgeMuted
}

func options(values ...string) []resource.Option {
	opts := make([]resource.Option, len(values))
	for i, v := range values {
		opts[i] = resource.Option{Value: v, Label: v}
	}
	return opts
}

func byText[T any](key, label string, get func(T) string) resource.Sort[T] {
	return resource.Sort[T]{Key: key, Label: label, Cmp: func(a, b T) int {
		return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
	}}
}

func byNumber[T any, N cmp.Ordered](key, label string, get func(T) N) resource.Sort[T] {
	return resource.Sort[T]{Key: key, Label: label, Cmp: func(a, b T) int {
		return cmp.Compare(get(a), get(b))
	}}
}

func byTime[T any](key, label string, get func(T) time.Time) resource.Sort[T] {
	return resource.Sort[T]{Key: key, Label: label, Cmp: func(a, b T) int {
		return get(a).Compare(get(b))
	}}
}

// equalFilter matches items whose value equals the selected option,
// ignoring case.
func equalFilter[T any](name, label string, opts []resource.Option, get func(T) string) resource.Filter[T] {
	return resource.Filter[T]{Name: name, Label: label, Options: opts, Match: func(item T, value string) bool {
		return strings.EqualFold(get(item), value)
	}}
}

func haystack(parts ...string) string {
	return strings.Join(slices.DeleteFunc(parts, func(s string) bool { return s == "" }), " ")
}

func badRequest(message string) error {
	return errors.New(http.StatusBadRequest, message)
}

func (h *Handler) check(req any) error {
	if err := h.validate.Struct(req); err != nil {
		return badRequest(validationMessage(err))
	}
	return nil
}

func formFloat(form url.Values, name, label string) (float64, error) {
	raw := strings.TrimSpace(form.Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, badRequest(label + " must be a number.")
	}
	return v, nil
}

func formBool(form url.Values, name string) bool {
	switch form.Get(name) {
	case "on", "true", "1":
		return true
	}
	return false
}

func field(form url.Values, name string) string {
	return strings.TrimSpace(form.Get(name))
}

func summarize(changes map[string]any) string {
	keys := make([]string, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return strings.Join(keys, ", ")
}
