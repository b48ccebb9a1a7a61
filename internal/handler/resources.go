package handler

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/indigo-rhapsody/indigo-admin/internal/api"
	"github.com/indigo-rhapsody/indigo-admin/internal/apiclient"
	"github.com/indigo-rhapsody/indigo-admin/internal/domain"
	"github.com/indigo-rhapsody/indigo-admin/internal/resource"
)

type sess = apiclient.Session

// tables lists every resource page in sidebar order.
func (h *Handler) tables() []resource.View {
	return []resource.View{
		h.productsTable(),
		h.ordersTable(),
		h.designersTable(),
		h.designerRequestsTable(),
		h.usersTable(),
		h.paymentsTable(),
		h.couponsTable(),
		h.categoriesTable(),
		h.subcategoriesTable(),
		h.videosTable(),
		h.notificationsTable(),
		h.queriesTable(),
		h.bannersTable(),
		h.blogsTable(),
	}
}

var approvalOptions = options(domain.StatusPending, domain.StatusApproved, domain.StatusRejected)

func deleteAction[T any](del func(ctx context.Context, s sess, id string) error) resource.Action[T] {
	return resource.Action[T]{
		Name:    "delete",
		Label:   "Delete",
		Confirm: "Delete this item? This cannot be undone.",
		Danger:  true,
		Run: func(ctx context.Context, s sess, id string, _ url.Values) error {
			return del(ctx, s, id)
		},
	}
}

// approvalActions builds approve/reject actions shown only while pending.
func approvalActions[T any](status func(T) string, approve func(ctx context.Context, s sess, id string) error, reject func(ctx context.Context, s sess, id, reason string) error) []resource.Action[T] {
	pending := func(item T) bool { return status(item) == "" || status(item) == domain.StatusPending }
	return []resource.Action[T]{
		{
			Name:    "approve",
			Label:   "Approve",
			Visible: pending,
			Run: func(ctx context.Context, s sess, id string, _ url.Values) error {
				return approve(ctx, s, id)
			},
		},
		{
			Name:    "reject",
			Label:   "Reject",
			Prompt:  "Reason for rejection (optional)",
			Danger:  true,
			Visible: pending,
			Run: func(ctx context.Context, s sess, id string, form url.Values) error {
				return reject(ctx, s, id, field(form, resource.ActionInput))
			},
		},
	}
}

func (h *Handler) productsTable() resource.View {
	return &resource.Table[domain.Product]{
		Name:  "products",
		Title: "Products",
		Columns: []resource.Column[domain.Product]{
			{Title: "Name", Sort: "name", Value: func(p domain.Product) string { return p.Name }},
			{Title: "Designer", Sort: "designer", Value: func(p domain.Product) string { return p.DesignerName }},
			{Title: "Category", Value: func(p domain.Product) string { return p.Category }},
			{Title: "Price", Sort: "price", Value: func(p domain.Product) string { return Money(p.Price) }},
			{Title: "Stock", Sort: "stock", Value: func(p domain.Product) string { return strconv.Itoa(p.Stock) }},
			{
				Title: "Status",
				Value: func(p domain.Product) string { return yesNo(p.Enabled, "Enabled", "Disabled") },
				Badge: func(p domain.Product) string { return yesNo(p.Enabled, badgeOK, badgeBad) },
			},
			{Title: "Created", Sort: "created", Value: func(p domain.Product) string { return Date(p.CreatedAt) }},
		},
		ID:    func(p domain.Product) string { return p.Id },
		Fetch: h.APIClient.ListProducts,
		Options: resource.Options[domain.Product]{
			Haystack: func(p domain.Product) string { return haystack(p.Name, p.DesignerName, p.Category) },
			Filters: []resource.Filter[domain.Product]{
				equalFilter("status", "Status", options("Enabled", "Disabled"), func(p domain.Product) string {
					return yesNo(p.Enabled, "Enabled", "Disabled")
				}),
			},
			Sorts: []resource.Sort[domain.Product]{
				byText("name", "Name", func(p domain.Product) string { return p.Name }),
				byText("designer", "Designer", func(p domain.Product) string { return p.DesignerName }),
				byNumber("price", "Price", func(p domain.Product) float64 { return p.Price }),
				byNumber("stock", "Stock", func(p domain.Product) int { return p.Stock }),
				byTime("created", "Created", func(p domain.Product) time.Time { return p.CreatedAt }),
			},
			PageSize: h.pageSize(),
		},
		Actions: []resource.Action[domain.Product]{
			{
				Name:    "enable",
				Label:   "Enable",
				Visible: func(p domain.Product) bool { return !p.Enabled },
				Run: func(ctx context.Context, s sess, id string, _ url.Values) error {
					return h.APIClient.SetProductStatus(ctx, s, id, true)
				},
			},
			{
				Name:    "disable",
				Label:   "Disable",
				Visible: func(p domain.Product) bool { return p.Enabled },
				Run: func(ctx context.Context, s sess, id string, _ url.Values) error {
					return h.APIClient.SetProductStatus(ctx, s, id, false)
				},
			},
			deleteAction[domain.Product](h.APIClient.DeleteProduct),
		},
	}
}

func (h *Handler) ordersTable() resource.View {
	statuses := options(domain.OrderStatuses...)
	return &resource.Table[domain.Order]{
		Name:  "orders",
		Title: "Orders",
		Columns: []resource.Column[domain.Order]{
			{Title: "Order", Value: func(o domain.Order) string { return yesNo(o.OrderId != "", o.OrderId, o.Id) }},
			{Title: "Customer", Sort: "customer", Value: func(o domain.Order) string { return o.CustomerName }},
			{Title: "Email", Value: func(o domain.Order) string { return o.Email }},
			{Title: "Items", Value: func(o domain.Order) string { return strconv.Itoa(len(o.Items)) }},
			{Title: "Amount", Sort: "amount", Value: func(o domain.Order) string { return Money(o.Amount) }},
			{
				Title: "Status",
				Value: func(o domain.Order) string { return o.Status },
				Badge: func(o domain.Order) string { return statusBadge(o.Status) },
			},
			{
				Title: "Payment",
				Value: func(o domain.Order) string { return o.PaymentStatus },
				Badge: func(o domain.Order) string { return statusBadge(o.PaymentStatus) },
			},
			{Title: "Date", Sort: "date", Value: func(o domain.Order) string { return Date(o.CreatedAt) }},
		},
		ID:    func(o domain.Order) string { return o.Id },
		Fetch: h.APIClient.ListOrders,
		Options: resource.Options[domain.Order]{
			Haystack: func(o domain.Order) string { return haystack(o.OrderId, o.Id, o.CustomerName, o.Email) },
			Filters: []resource.Filter[domain.Order]{
				equalFilter("status", "Status", statuses, func(o domain.Order) string { return o.Status }),
			},
			Sorts: []resource.Sort[domain.Order]{
				byText("customer", "Customer", func(o domain.Order) string { return o.CustomerName }),
				byNumber("amount", "Amount", func(o domain.Order) float64 { return o.Amount }),
				byTime("date", "Date", func(o domain.Order) time.Time { return o.CreatedAt }),
			},
			PageSize: h.pageSize(),
		},
		Actions: []resource.Action[domain.Order]{
			{
				Name:    "status",
				Label:   "Update status",
				Prompt:  "New status",
				Choices: statuses,
				Run: func(ctx context.Context, s sess, id string, form url.Values) error {
					req := api.OrderStatusRequest{Status: field(form, resource.ActionInput)}
					if err := h.check(req); err != nil {
						return err
					}
					return h.APIClient.UpdateOrderStatus(ctx, s, id, req.Status)
				},
			},
		},
	}
}

func (h *Handler) designersTable() resource.View {
	return &resource.Table[domain.Designer]{
		Name:  "designers",
		Title: "Designers",
		Columns: []resource.Column[domain.Designer]{
			{Title: "Name", Sort: "name", Value: func(d domain.Designer) string { return d.Name }},
			{Title: "Email", Value: func(d domain.Designer) string { return d.Email }},
			{Title: "Phone", Value: func(d domain.Designer) string { return d.Phone }},
			{Title: "About", Value: func(d domain.Designer) string { return d.ShortDescription }},
			{
				Title: "Approval",
				Value: func(d domain.Designer) string { return yesNo(d.IsApproved, "Approved", "Pending") },
				Badge: func(d domain.Designer) string { return yesNo(d.IsApproved, badgeOK, badgeWarn) },
			},
			{Title: "Joined", Sort: "joined", Value: func(d domain.Designer) string { return Date(d.CreatedAt) }},
		},
		ID:    func(d domain.Designer) string { return d.Id },
		Fetch: h.APIClient.ListDesigners,
		Options: resource.Options[domain.Designer]{
			Haystack: func(d domain.Designer) string { return haystack(d.Name, d.Email, d.Phone) },
			Filters: []resource.Filter[domain.Designer]{
				equalFilter("approval", "Approval", options("Approved", "Pending"), func(d domain.Designer) string {
					return yesNo(d.IsApproved, "Approved", "Pending")
				}),
			},
			Sorts: []resource.Sort[domain.Designer]{
				byText("name", "Name", func(d domain.Designer) string { return d.Name }),
				byTime("joined", "Joined", func(d domain.Designer) time.Time { return d.CreatedAt }),
			},
			PageSize: h.pageSize(),
		},
		Actions: []resource.Action[domain.Designer]{
			{
				Name:    "approve",
				Label:   "Approve",
				Visible: func(d domain.Designer) bool { return !d.IsApproved },
				Run: func(ctx context.Context, s sess, id string, _ url.Values) error {
					return h.APIClient.SetDesignerApproval(ctx, s, id, true)
				},
			},
			{
				Name:    "revoke",
				Label:   "Revoke approval",
				Confirm: "Revoke this designer's approval?",
				Visible: func(d domain.Designer) bool { return d.IsApproved },
				Run: func(ctx context.Context, s sess, id string, _ url.Values) error {
					return h.APIClient.SetDesignerApproval(ctx, s, id, false)
				},
			},
			deleteAction[domain.Designer](h.APIClient.DeleteDesigner),
		},
	}
}

func (h *Handler) designerRequestsTable() resource.View {
	return &resource.Table[domain.DesignerRequest]{
		Name:  "designer-requests",
		Title: "Designer Requests",
		Columns: []resource.Column[domain.DesignerRequest]{
			{Title: "Designer", Sort: "designer", Value: func(d domain.DesignerRequest) string {
				return yesNo(d.DesignerName != "", d.DesignerName, d.DesignerId)
			}},
			{Title: "Requested changes", Value: func(d domain.DesignerRequest) string { return summarize(d.Changes) }},
			{
				Title: "Status",
				Value: func(d domain.DesignerRequest) string { return d.Status },
				Badge: func(d domain.DesignerRequest) string { return statusBadge(d.Status) },
			},
			{Title: "Reason", Value: func(d domain.DesignerRequest) string { return d.Reason }},
			{Title: "Submitted", Sort: "submitted", Value: func(d domain.DesignerRequest) string { return Date(d.CreatedAt) }},
		},
		ID:    func(d domain.DesignerRequest) string { return d.Id },
		Fetch: h.APIClient.ListDesignerRequests,
		Options: resource.Options[domain.DesignerRequest]{
			Haystack: func(d domain.DesignerRequest) string { return haystack(d.DesignerName, d.DesignerId, summarize(d.Changes)) },
			Filters: []resource.Filter[domain.DesignerRequest]{
				equalFilter("status", "Status", approvalOptions, func(d domain.DesignerRequest) string { return d.Status }),
			},
			Sorts: []resource.Sort[domain.DesignerRequest]{
				byText("designer", "Designer", func(d domain.DesignerRequest) string { return d.DesignerName }),
				byTime("submitted", "Submitted", func(d domain.DesignerRequest) time.Time { return d.CreatedAt }),
			},
			PageSize: h.pageSize(),
		},
		Actions: approvalActions(
			func(d domain.DesignerRequest) string { return d.Status },
			h.APIClient.ApproveDesignerRequest,
			h.APIClient.RejectDesignerRequest,
		),
	}
}

func (h *Handler) usersTable() resource.View {
	return &resource.Table[domain.User]{
		Name:  "users",
		Title: "Users",
		Columns: []resource.Column[domain.User]{
			{Title: "Name", Sort: "name", Value: func(u domain.User) string { return u.DisplayName }},
			{Title: "Email", Sort: "email", Value: func(u domain.User) string { return u.Email }},
			{Title: "Phone", Value: func(u domain.User) string { return u.Phone }},
			{Title: "Role", Value: func(u domain.User) string { return u.Role }},
			{Title: "Joined", Sort: "joined", Value: func(u domain.User) string { return Date(u.CreatedAt) }},
		},
		ID:    func(u domain.User) string { return u.Id },
		Fetch: h.APIClient.ListUsers,
		Options: resource.Options[domain.User]{
			Haystack: func(u domain.User) string { return haystack(u.DisplayName, u.Email, u.Phone) },
			Filters: []resource.Filter[domain.User]{
				equalFilter("role", "Role", options("User", "Designer", "Admin"), func(u domain.User) string { return u.Role }),
			},
			Sorts: []resource.Sort[domain.User]{
				byText("name", "Name", func(u domain.User) string { return u.DisplayName }),
				byText("email", "Email", func(u domain.User) string { return u.Email }),
				byTime("joined", "Joined", func(u domain.User) time.Time { return u.CreatedAt }),
			},
			PageSize: h.pageSize(),
		},
		Actions: []resource.Action[domain.User]{
			deleteAction[domain.User](h.APIClient.DeleteUser),
		},
	}
}

func (h *Handler) paymentsTable() resource.View {
	return &resource.Table[domain.Payment]{
		Name:  "payment",
		Title: "Payments",
		Columns: []resource.Column[domain.Payment]{
			{Title: "Order", Value: func(p domain.Payment) string { return p.OrderId }},
			{Title: "Customer", Sort: "customer", Value: func(p domain.Payment) string { return p.CustomerName }},
			{Title: "Amount", Sort: "amount", Value: func(p domain.Payment) string { return Money(p.Amount) }},
			{Title: "Method", Value: func(p domain.Payment) string { return p.Method }},
			{
				Title: "Status",
				Value: func(p domain.Payment) string { return p.Status },
				Badge: func(p domain.Payment) string { return statusBadge(p.Status) },
			},
			{Title: "Transaction", Value: func(p domain.Payment) string { return p.TransactionId }},
			{Title: "Date", Sort: "date", Value: func(p domain.Payment) string { return Date(p.CreatedAt) }},
		},
		ID:    func(p domain.Payment) string { return p.Id },
		Fetch: h.APIClient.ListPayments,
		Options: resource.Options[domain.Payment]{
			Haystack: func(p domain.Payment) string { return haystack(p.OrderId, p.CustomerName, p.TransactionId) },
			Filters: []resource.Filter[domain.Payment]{
				equalFilter("status", "Status", options("Completed", "Pending", "Failed"), func(p domain.Payment) string { return p.Status }),
				equalFilter("method", "Method", options("COD", "Online"), func(p domain.Payment) string { return p.Method }),
			},
			Sorts: []resource.Sort[domain.Payment]{
				byText("customer", "Customer", func(p domain.Payment) string { return p.CustomerName }),
				byNumber("amount", "Amount", func(p domain.Payment) float64 { return p.Amount }),
				byTime("date", "Date", func(p domain.Payment) time.Time { return p.CreatedAt }),
			},
			PageSize: h.pageSize(),
		},
	}
}

func (h *Handler) couponsTable() resource.View {
	request := func(form url.Values) (api.CouponRequest, error) {
		amount, err := formFloat(form, "couponAmount", "Amount")
		if err != nil {
			return api.CouponRequest{}, err
		}
		req := api.CouponRequest{
			Code:       field(form, "couponCode"),
			Amount:     amount,
			ExpiryDate: field(form, "expiryDate"),
		}
		return req, h.check(req)
	}

	return &resource.Table[domain.Coupon]{
		Name:  "coupon",
		Title: "Coupons",
		Columns: []resource.Column[domain.Coupon]{
			{Title: "Code", Sort: "code", Value: func(c domain.Coupon) string { return c.Code }},
			{Title: "Amount", Sort: "amount", Value: func(c domain.Coupon) string { return Money(c.Amount) }},
			{Title: "Expires", Sort: "expiry", Value: func(c domain.Coupon) string { return Date(c.ExpiryDate) }},
			{Title: "Used", Sort: "used", Value: func(c domain.Coupon) string { return strconv.Itoa(c.UsageCount) }},
			{
				Title: "Active",
				Value: func(c domain.Coupon) string { return yesNo(c.IsActive, "Active", "Inactive") },
				Badge: func(c domain.Coupon) string { return yesNo(c.IsActive, badgeOK, badgeMuted) },
			},
		},
		ID:    func(c domain.Coupon) string { return c.Id },
		Fetch: h.APIClient.ListCoupons,
		Options: resource.Options[domain.Coupon]{
			Haystack: func(c domain.Coupon) string { return c.Code },
			Filters: []resource.Filter[domain.Coupon]{
				equalFilter("active", "Active", options("Active", "Inactive"), func(c domain.Coupon) string {
					return yesNo(c.IsActive, "Active", "Inactive")
				}),
			},
			Sorts: []resource.Sort[domain.Coupon]{
				byText("code", "Code", func(c domain.Coupon) string { return c.Code }),
				byNumber("amount", "Amount", func(c domain.Coupon) float64 { return c.Amount }),
				byTime("expiry", "Expires", func(c domain.Coupon) time.Time { return c.ExpiryDate }),
				byNumber("used", "Used", func(c domain.Coupon) int { return c.UsageCount }),
			},
			PageSize: h.pageSize(),
		},
		Actions: []resource.Action[domain.Coupon]{
			deleteAction[domain.Coupon](h.APIClient.DeleteCoupon),
		},
		Form: &resource.Form[domain.Coupon]{
			Fields: []resource.Field{
				{Name: "couponCode", Label: "Code", Type: "text", Required: true, Placeholder: "WELCOME10"},
				{Name: "couponAmount", Label: "Amount", Type: "number", Required: true},
				{Name: "expiryDate", Label: "Expiry date", Type: "date", Required: true},
			},
			Values: func(c domain.Coupon) map[string]string {
				return map[string]string{
					"couponCode":   c.Code,
					"couponAmount": strconv.FormatFloat(c.Amount, 'f', -1, 64),
					"expiryDate":   yesNo(c.ExpiryDate.IsZero(), "", c.ExpiryDate.Format(dateLayout)),
				}
			},
			Create: func(ctx context.Context, s sess, form url.Values) error {
				req, err := request(form)
				if err != nil {
					return err
				}
				return h.APIClient.CreateCoupon(ctx, s, req)
			},
			Update: func(ctx context.Context, s sess, id string, form url.Values) error {
				req, err := request(form)
				if err != nil {
					return err
				}
				return h.APIClient.UpdateCoupon(ctx, s, id, req)
			},
		},
	}
}

func (h *Handler) categoriesTable() resource.View {
	request := func(form url.Values) (api.CategoryRequest, error) {
		req := api.CategoryRequest{Name: field(form, "name"), Image: field(form, "image")}
		return req, h.check(req)
	}

	return &resource.Table[domain.Category]{
		Name:  "category",
		Title: "Categories",
		Columns: []resource.Column[domain.Category]{
			{Title: "Name", Sort: "name", Value: func(c domain.Category) string { return c.Name }},
			{
				Title: "Image",
				Value: func(c domain.Category) string { return yesNo(c.Image != "", "View", "-") },
				Link:  func(c domain.Category) string { return c.Image },
			},
			{Title: "Created", Sort: "created", Value: func(c domain.Category) string { return Date(c.CreatedAt) }},
		},
		ID:    func(c domain.Category) string { return c.Id },
		Fetch: h.APIClient.ListCategories,
		Options: resource.Options[domain.Category]{
			Haystack: func(c domain.Category) string { return c.Name },
			Sorts: []resource.Sort[domain.Category]{
				byText("name", "Name", func(c domain.Category) string { return c.Name }),
				byTime("created", "Created", func(c domain.Category) time.Time { return c.CreatedAt }),
			},
			PageSize: h.pageSize(),
		},
		Actions: []resource.Action[domain.Category]{
			deleteAction[domain.Category](h.APIClient.DeleteCategory),
		},
		Form: &resource.Form[domain.Category]{
			Fields: []resource.Field{
				{Name: "name", Label: "Name", Type: "text", Required: true},
				{Name: "image", Label: "Image URL", Type: "url", Placeholder: "https://"},
			},
			Values: func(c domain.Category) map[string]string {
				return map[string]string{"name": c.Name, "image": c.Image}
			},
			Create: func(ctx context.Context, s sess, form url.Values) error {
				req, err := request(form)
				if err != nil {
					return err
				}
				return h.APIClient.CreateCategory(ctx, s, req)
			},
			Update: func(ctx context.Context, s sess, id string, form url.Values) error {
				req, err := request(form)
				if err != nil {
					return err
				}
				return h.APIClient.UpdateCategory(ctx, s, id, req)
			},
		},
	}
}

func (h *Handler) subcategoriesTable() resource.View {
	actions := approvalActions(
		func(c domain.Subcategory) string { return c.Status },
		h.APIClient.ApproveSubcategory,
		h.APIClient.RejectSubcategory,
	)
	actions = append(actions, deleteAction[domain.Subcategory](h.APIClient.DeleteSubcategory))

	return &resource.Table[domain.Subcategory]{
		Name:  "subcategory",
		Title: "Subcategories",
		Columns: []resource.Column[domain.Subcategory]{
			{Title: "Name", Sort: "name", Value: func(c domain.Subcategory) string { return c.Name }},
			{Title: "Category", Sort: "category", Value: func(c domain.Subcategory) string {
				return yesNo(c.CategoryName != "", c.CategoryName, c.CategoryId)
			}},
			{
				Title: "Status",
				Value: func(c domain.Subcategory) string { return c.Status },
				Badge: func(c domain.Subcategory) string { return statusBadge(c.Status) },
			},
			{Title: "Created", Sort: "created", Value: func(c domain.Subcategory) string { return Date(c.CreatedAt) }},
		},
		ID:    func(c domain.Subcategory) string { return c.Id },
		Fetch: h.APIClient.ListSubcategories,
		Options: resource.Options[domain.Subcategory]{
			Haystack: func(c domain.Subcategory) string { return haystack(c.Name, c.CategoryName) },
			Filters: []resource.Filter[domain.Subcategory]{
				equalFilter("status", "Status", approvalOptions, func(c domain.Subcategory) string { return c.Status }),
			},
			Sorts: []resource.Sort[domain.Subcategory]{
				byText("name", "Name", func(c domain.Subcategory) string { return c.Name }),
				byText("category", "Category", func(c domain.Subcategory) string { return c.CategoryName }),
				byTime("created", "Created", func(c domain.Subcategory) time.Time { return c.CreatedAt }),
			},
			PageSize: h.pageSize(),
		},
		Actions: actions,
	}
}

func (h *Handler) videosTable() resource.View {
	return &resource.Table[domain.Video]{
		Name:  "video",
		Title: "Videos",
		Columns: []resource.Column[domain.Video]{
			{Title: "Title", Sort: "title", Value: func(v domain.Video) string { return v.Title }},
			{Title: "Creator", Sort: "creator", Value: func(v domain.Video) string { return v.CreatorName }},
			{
				Title: "Video",
				Value: func(v domain.Video) string { return yesNo(v.URL != "", "Watch", "-") },
				Link:  func(v domain.Video) string { return v.URL },
			},
			{
				Title: "Status",
				Value: func(v domain.Video) string { return v.Status },
				Badge: func(v domain.Video) string { return statusBadge(v.Status) },
			},
			{Title: "Reason", Value: func(v domain.Video) string { return v.Reason }},
			{Title: "Uploaded", Sort: "uploaded", Value: func(v domain.Video) string { return Date(v.CreatedAt) }},
		},
		ID:    func(v domain.Video) string { return v.Id },
		Fetch: h.APIClient.ListVideos,
		Options: resource.Options[domain.Video]{
			Haystack: func(v domain.Video) string { return haystack(v.Title, v.CreatorName) },
			Filters: []resource.Filter[domain.Video]{
				equalFilter("status", "Status", approvalOptions, func(v domain.Video) string { return v.Status }),
			},
			Sorts: []resource.Sort[domain.Video]{
				byText("title", "Title", func(v domain.Video) string { return v.Title }),
				byText("creator", "Creator", func(v domain.Video) string { return v.CreatorName }),
				byTime("uploaded", "Uploaded", func(v domain.Video) time.Time { return v.CreatedAt }),
			},
			PageSize: h.pageSize(),
		},
		Actions: approvalActions(
			func(v domain.Video) string { return v.Status },
			h.APIClient.ApproveVideo,
			h.APIClient.RejectVideo,
		),
	}
}

func (h *Handler) notificationsTable() resource.View {
	return &resource.Table[domain.Notification]{
		Name:  "notification",
		Title: "Notifications",
		Columns: []resource.Column[domain.Notification]{
			{Title: "Title", Sort: "title", Value: func(n domain.Notification) string { return n.Title }},
			{Title: "Message", Value: func(n domain.Notification) string { return h.Markdown.Excerpt(n.Body, 80) }},
			{Title: "Audience", Value: func(n domain.Notification) string { return n.Target }},
			{Title: "Sent", Sort: "sent", Value: func(n domain.Notification) string { return Date(n.CreatedAt) }},
		},
		ID:    func(n domain.Notification) string { return n.Id },
		Fetch: h.APIClient.ListNotifications,
		Options: resource.Options[domain.Notification]{
			Haystack: func(n domain.Notification) string { return haystack(n.Title, n.Body) },
			Filters: []resource.Filter[domain.Notification]{
				equalFilter("target", "Audience", options(domain.NotificationTargets...), func(n domain.Notification) string { return n.Target }),
			},
			Sorts: []resource.Sort[domain.Notification]{
				byText("title", "Title", func(n domain.Notification) string { return n.Title }),
				byTime("sent", "Sent", func(n domain.Notification) time.Time { return n.CreatedAt }),
			},
			PageSize: h.pageSize(),
		},
		Form: &resource.Form[domain.Notification]{
			Fields: []resource.Field{
				{Name: "title", Label: "Title", Type: "text", Required: true},
				{Name: "message", Label: "Message", Type: "textarea", Required: true},
				{Name: "target", Label: "Audience", Type: "select", Options: options(domain.NotificationTargets...), Required: true},
			},
			Create: func(ctx context.Context, s sess, form url.Values) error {
				req := api.NotificationRequest{
					Title:  field(form, "title"),
					Body:   field(form, "message"),
					Target: field(form, "target"),
				}
				if err := h.check(req); err != nil {
					return err
				}
				return h.APIClient.SendNotification(ctx, s, req)
			},
		},
	}
}

func (h *Handler) queriesTable() resource.View {
	return &resource.Table[domain.Query]{
		Name:  "manage-queries",
		Title: "Customer Queries",
		Columns: []resource.Column[domain.Query]{
			{Title: "Name", Sort: "name", Value: func(q domain.Query) string { return q.Name }},
			{Title: "Email", Value: func(q domain.Query) string { return q.Email }},
			{Title: "Subject", Value: func(q domain.Query) string { return q.Subject }},
			{Title: "Message", Value: func(q domain.Query) string { return h.Markdown.Excerpt(q.Message, 100) }},
			{
				Title: "Status",
				Value: func(q domain.Query) string { return q.Status },
				Badge: func(q domain.Query) string { return statusBadge(q.Status) },
			},
			{Title: "Response", Value: func(q domain.Query) string { return q.Response }},
			{Title: "Received", Sort: "received", Value: func(q domain.Query) string { return Date(q.CreatedAt) }},
		},
		ID:    func(q domain.Query) string { return q.Id },
		Fetch: h.APIClient.ListQueries,
		Options: resource.Options[domain.Query]{
			Haystack: func(q domain.Query) string { return haystack(q.Name, q.Email, q.Subject, q.Message) },
			Filters: []resource.Filter[domain.Query]{
				equalFilter("status", "Status", options(domain.QueryOpen, domain.QueryResolved), func(q domain.Query) string { return q.Status }),
			},
			Sorts: []resource.Sort[domain.Query]{
				byText("name", "Name", func(q domain.Query) string { return q.Name }),
				byTime("received", "Received", func(q domain.Query) time.Time { return q.CreatedAt }),
			},
			PageSize: h.pageSize(),
		},
		Actions: []resource.Action[domain.Query]{
			{
				Name:    "respond",
				Label:   "Respond",
				Prompt:  "Your response",
				Visible: func(q domain.Query) bool { return q.Status != domain.QueryResolved },
				Run: func(ctx context.Context, s sess, id string, form url.Values) error {
					req := api.QueryResponseRequest{Response: field(form, resource.ActionInput)}
					if err := h.check(req); err != nil {
						return err
					}
					return h.APIClient.RespondToQuery(ctx, s, id, req)
				},
			},
			deleteAction[domain.Query](h.APIClient.DeleteQuery),
		},
	}
}

func (h *Handler) bannersTable() resource.View {
	request := func(form url.Values) (api.BannerRequest, error) {
		req := api.BannerRequest{
			Name:     field(form, "name"),
			Image:    field(form, "image"),
			Link:     field(form, "link"),
			Platform: field(form, "platform"),
		}
		return req, h.check(req)
	}

	return &resource.Table[domain.Banner]{
		Name:  "banner",
		Title: "Banners",
		Columns: []resource.Column[domain.Banner]{
			{Title: "Name", Sort: "name", Value: func(b domain.Banner) string { return b.Name }},
			{
				Title: "Image",
				Value: func(b domain.Banner) string { return yesNo(b.Image != "", "View", "-") },
				Link:  func(b domain.Banner) string { return b.Image },
			},
			{Title: "Link", Value: func(b domain.Banner) string { return b.Link }},
			{Title: "Platform", Value: func(b domain.Banner) string { return b.Platform }},
			{Title: "Created", Sort: "created", Value: func(b domain.Banner) string { return Date(b.CreatedAt) }},
		},
		ID:    func(b domain.Banner) string { return b.Id },
		Fetch: h.APIClient.ListBanners,
		Options: resource.Options[domain.Banner]{
			Haystack: func(b domain.Banner) string { return haystack(b.Name, b.Link) },
			Filters: []resource.Filter[domain.Banner]{
				equalFilter("platform", "Platform", options("web", "mobile"), func(b domain.Banner) string { return b.Platform }),
			},
			Sorts: []resource.Sort[domain.Banner]{
				byText("name", "Name", func(b domain.Banner) string { return b.Name }),
				byTime("created", "Created", func(b domain.Banner) time.Time { return b.CreatedAt }),
			},
			PageSize: h.pageSize(),
		},
		Actions: []resource.Action[domain.Banner]{
			deleteAction[domain.Banner](h.APIClient.DeleteBanner),
		},
		Form: &resource.Form[domain.Banner]{
			Fields: []resource.Field{
				{Name: "name", Label: "Name", Type: "text", Required: true},
				{Name: "image", Label: "Image URL", Type: "url", Required: true, Placeholder: "https://"},
				{Name: "link", Label: "Target link", Type: "url", Placeholder: "https://"},
				{Name: "platform", Label: "Platform", Type: "select", Options: options("web", "mobile")},
			},
			Values: func(b domain.Banner) map[string]string {
				return map[string]string{"name": b.Name, "image": b.Image, "link": b.Link, "platform": b.Platform}
			},
			Create: func(ctx context.Context, s sess, form url.Values) error {
				req, err := request(form)
				if err != nil {
					return err
				}
				return h.APIClient.CreateBanner(ctx, s, req)
			},
			Update: func(ctx context.Context, s sess, id string, form url.Values) error {
				req, err := request(form)
				if err != nil {
					return err
				}
				return h.APIClient.UpdateBanner(ctx, s, id, req)
			},
		},
	}
}

func (h *Handler) blogsTable() resource.View {
	request := func(form url.Values) (api.BlogRequest, error) {
		req := api.BlogRequest{
			Title:     field(form, "title"),
			Author:    field(form, "author"),
			Content:   form.Get("content"),
			Image:     field(form, "image"),
			Published: formBool(form, "published"),
		}
		return req, h.check(req)
	}

	return &resource.Table[domain.Blog]{
		Name:  "blogs",
		Title: "Blogs",
		Columns: []resource.Column[domain.Blog]{
			{
				Title: "Title",
				Sort:  "title",
				Value: func(b domain.Blog) string { return b.Title },
				Link:  func(b domain.Blog) string { return "/blogs/" + url.PathEscape(b.Id) + "/preview" },
			},
			{Title: "Author", Sort: "author", Value: func(b domain.Blog) string { return b.Author }},
			{Title: "Excerpt", Value: func(b domain.Blog) string { return h.Markdown.Excerpt(b.Content, 100) }},
			{
				Title: "Status",
				Value: func(b domain.Blog) string { return yesNo(b.Published, "Published", "Draft") },
				Badge: func(b domain.Blog) string { return yesNo(b.Published, badgeOK, badgeWarn) },
			},
			{Title: "Created", Sort: "created", Value: func(b domain.Blog) string { return Date(b.CreatedAt) }},
		},
		ID:    func(b domain.Blog) string { return b.Id },
		Fetch: h.APIClient.ListBlogs,
		Options: resource.Options[domain.Blog]{
			Haystack: func(b domain.Blog) string { return haystack(b.Title, b.Author, b.Content) },
			Filters: []resource.Filter[domain.Blog]{
				equalFilter("status", "Status", options("Published", "Draft"), func(b domain.Blog) string {
					return yesNo(b.Published, "Published", "Draft")
				}),
			},
			Sorts: []resource.Sort[domain.Blog]{
				byText("title", "Title", func(b domain.Blog) string { return b.Title }),
				byText("author", "Author", func(b domain.Blog) string { return b.Author }),
				byTime("created", "Created", func(b domain.Blog) time.Time { return b.CreatedAt }),
			},
			PageSize: h.pageSize(),
		},
		Actions: []resource.Action[domain.Blog]{
			deleteAction[domain.Blog](h.APIClient.DeleteBlog),
		},
		Form: &resource.Form[domain.Blog]{
			Fields: []resource.Field{
				{Name: "title", Label: "Title", Type: "text", Required: true},
				{Name: "author", Label: "Author", Type: "text"},
				{Name: "image", Label: "Cover image URL", Type: "url", Placeholder: "https://"},
				{Name: "content", Label: "Content (Markdown)", Type: "markdown", Required: true},
				{Name: "published", Label: "Published", Type: "checkbox"},
			},
			Values: func(b domain.Blog) map[string]string {
				return map[string]string{
					"title":     b.Title,
					"author":    b.Author,
					"image":     b.Image,
					"content":   b.Content,
					"published": yesNo(b.Published, "on", ""),
				}
			},
			Create: func(ctx context.Context, s sess, form url.Values) error {
				req, err := request(form)
				if err != nil {
					return err
				}
				return h.APIClient.CreateBlog(ctx, s, req)
			},
			Update: func(ctx context.Context, s sess, id string, form url.Values) error {
				req, err := request(form)
				if err != nil {
					return err
				}
				return h.APIClient.UpdateBlog(ctx, s, id, req)
			},
		},
	}
}
