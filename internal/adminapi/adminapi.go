// Package adminapi serves the dashboard endpoints: summary stats, recent
// feeds, the merged lead feed and data exports. None of these routes carry
// authentication yet; internal/app warns about this at startup.
package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coachdesk/coachdesk/internal/storage"
	"github.com/coachdesk/coachdesk/internal/webserver"
)

// recentLimit matches the dashboard's "recent" card size.
const recentLimit = 5

type API struct {
	store storage.Storage
}

func Register(ws *webserver.WebServer, store storage.Storage) {
	api := &API{store: store}

	ws.ApiGET("/admin/stats", api.stats)
	ws.ApiGET("/admin/leads", api.leads)

	ws.ApiGET("/admin/recent-bookings", api.recentBookings)
	ws.ApiGET("/admin/recent-contacts", api.recentContacts)
	ws.ApiGET("/admin/recent-payments", api.recentPayments)
	ws.ApiGET("/admin/recent-downloads", api.recentDownloads)

	ws.ApiGET("/admin/export/bookings", api.exportBookings)
	ws.ApiGET("/admin/export/contacts", api.exportContacts)
	ws.ApiGET("/admin/export/payments", api.exportPayments)
	ws.ApiGET("/admin/export/downloads", api.exportDownloads)
	ws.ApiGET("/admin/export/all", api.exportAll)

	ws.ApiGET("/admin/export/bookings.xlsx", api.workbookBookings)
	ws.ApiGET("/admin/export/contacts.xlsx", api.workbookContacts)
	ws.ApiGET("/admin/export/payments.xlsx", api.workbookPayments)
	ws.ApiGET("/admin/export/downloads.xlsx", api.workbookDownloads)
	ws.ApiGET("/admin/export/all.xlsx", api.workbookAll)

	ws.ApiGET("/admin/export/bookings.csv", api.csvBookings)
	ws.ApiGET("/admin/export/contacts.csv", api.csvContacts)
	ws.ApiGET("/admin/export/payments.csv", api.csvPayments)
	ws.ApiGET("/admin/export/downloads.csv", api.csvDownloads)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"error": msg})
}

func (a *API) stats(c echo.Context) error {
	stats, err := ComputeStats(a.store)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch stats")
	}
	return ok(c, stats)
}

func (a *API) leads(c echo.Context) error {
	leads, err := MergeLeads(a.store)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch leads")
	}
	return ok(c, leads)
}

func (a *API) recentBookings(c echo.Context) error {
	bookings, err := a.store.GetRecentBookings(recentLimit)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch recent bookings")
	}
	return ok(c, bookings)
}

func (a *API) recentContacts(c echo.Context) error {
	contacts, err := a.store.GetRecentContacts(recentLimit)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch recent contacts")
	}
	return ok(c, contacts)
}

func (a *API) recentPayments(c echo.Context) error {
	payments, err := a.store.GetRecentPayments(recentLimit)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch recent payments")
	}
	return ok(c, payments)
}

func (a *API) recentDownloads(c echo.Context) error {
	downloads, err := a.store.GetRecentDownloads(recentLimit)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch recent downloads")
	}
	return ok(c, downloads)
}
