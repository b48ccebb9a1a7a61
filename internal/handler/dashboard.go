package handler

import (
	"net/http"

	"github.com/indigo-rhapsody/indigo-admin/internal/apiclient"
	"github.com/indigo-rhapsody/indigo-admin/internal/domain"
	"github.com/indigo-rhapsody/indigo-admin/internal/middleware"
)

type dashboardPage struct {
	Stats domain.DashboardStats
	// Loaded is false when the stats could not be fetched; the page then
	// shows the error banner and no numbers.
	Loaded bool
}

func (h *Handler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.APIClient.DashboardStats(r.Context(), middleware.Session(r))
	if err != nil {
		if apiclient.IsAuth(err) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.renderTemplateWithError(w, r, "dashboard.html", dashboardPage{}, err.Error())
		return
	}
	h.renderTemplate(w, r, "dashboard.html", dashboardPage{Stats: stats, Loaded: true})
}
