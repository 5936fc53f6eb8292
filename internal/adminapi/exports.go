package adminapi

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/coachdesk/coachdesk/internal/export"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	csvContentType  = "text/csv"
)

// JSON exports: the raw collection, newest first, same shape the
// dashboard consumes.

func (a *API) exportBookings(c echo.Context) error {
	bookings, err := a.store.GetAllBookings()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to export bookings")
	}
	return ok(c, bookings)
}

func (a *API) exportContacts(c echo.Context) error {
	contacts, err := a.store.GetAllContacts()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to export contacts")
	}
	return ok(c, contacts)
}

func (a *API) exportPayments(c echo.Context) error {
	payments, err := a.store.GetAllPayments()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to export payments")
	}
	return ok(c, payments)
}

func (a *API) exportDownloads(c echo.Context) error {
	downloads, err := a.store.GetAllDownloads()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to export downloads")
	}
	return ok(c, downloads)
}

func (a *API) exportAll(c echo.Context) error {
	bookings, err := a.store.GetAllBookings()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to export all data")
	}
	contacts, err := a.store.GetAllContacts()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to export all data")
	}
	payments, err := a.store.GetAllPayments()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to export all data")
	}
	downloads, err := a.store.GetAllDownloads()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to export all data")
	}

	return ok(c, echo.Map{
		"bookings":  bookings,
		"contacts":  contacts,
		"payments":  payments,
		"downloads": downloads,
	})
}

// Workbook exports: server-side rendering of the dashboard's xlsx
// download. BlogPosts stay out of the combined workbook.

func (a *API) workbookBookings(c echo.Context) error {
	bookings, err := a.store.GetAllBookings()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to export bookings")
	}
	return a.sendWorkbook(c, "bookings", export.Sheet{Name: export.SheetName("bookings"), Records: bookings})
}

func (a *API) workbookContacts(c echo.Context) error {
	contacts, err := a.store.GetAllContacts()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to export contacts")
	}
	return a.sendWorkbook(c, "contacts", export.Sheet{Name: export.SheetName("contacts"), Records: contacts})
}

func (a *API) workbookPayments(c echo.Context) error {
	payments, err := a.store.GetAllPayments()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to export payments")
	}
	return a.sendWorkbook(c, "payments", export.Sheet{Name: export.SheetName("payments"), Records: payments})
}

func (a *API) workbookDownloads(c echo.Context) error {
	downloads, err := a.store.GetAllDownloads()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to export downloads")
	}
	return a.sendWorkbook(c, "downloads", export.Sheet{Name: export.SheetName("downloads"), Records: downloads})
}

func (a *API) workbookAll(c echo.Context) error {
	bookings, err := a.store.GetAllBookings()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to export all data")
	}
	contacts, err := a.store.GetAllContacts()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to export all data")
	}
	payments, err := a.store.GetAllPayments()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to export all data")
	}
	downloads, err := a.store.GetAllDownloads()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to export all data")
	}

	return a.sendWorkbook(c, "all",
		export.Sheet{Name: export.SheetName("bookings"), Records: bookings},
		export.Sheet{Name: export.SheetName("contacts"), Records: contacts},
		export.Sheet{Name: export.SheetName("payments"), Records: payments},
		export.Sheet{Name: export.SheetName("downloads"), Records: downloads},
	)
}

func (a *API) sendWorkbook(c echo.Context, entity string, sheets ...export.Sheet) error {
	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, sheets...); err != nil {
		zap.L().Error("workbook export failed", zap.String("entity", entity), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to build workbook")
	}
	filename := export.Filename(entity, time.Now())
	c.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

// CSV exports, one collection per file.

func (a *API) csvBookings(c echo.Context) error {
	bookings, err := a.store.GetAllBookings()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to export bookings")
	}
	return a.sendCSV(c, "bookings", bookings)
}

func (a *API) csvContacts(c echo.Context) error {
	contacts, err := a.store.GetAllContacts()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to export contacts")
	}
	return a.sendCSV(c, "contacts", contacts)
}

func (a *API) csvPayments(c echo.Context) error {
	payments, err := a.store.GetAllPayments()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to export payments")
	}
	return a.sendCSV(c, "payments", payments)
}

func (a *API) csvDownloads(c echo.Context) error {
	downloads, err := a.store.GetAllDownloads()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to export downloads")
	}
	return a.sendCSV(c, "downloads", downloads)
}

func (a *API) sendCSV(c echo.Context, entity string, records interface{}) error {
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, records); err != nil {
		zap.L().Error("csv export failed", zap.String("entity", entity), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to build csv")
	}
	filename := export.CSVFilename(entity, time.Now())
	c.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	return c.Blob(http.StatusOK, csvContentType, buf.Bytes())
}
