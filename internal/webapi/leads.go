package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/coachdesk/coachdesk/internal/domain"
	"github.com/coachdesk/coachdesk/internal/events"
)

type contactPayload struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone"`
	Message string  `json:"message" validate:"required"`
}

type bookingPayload struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone"`
	PackageType string  `json:"packageType" validate:"required"`
	PackageName string  `json:"packageName" validate:"required"`
	Price       string  `json:"price" validate:"required"`
}

type downloadPayload struct {
	ResourceName string `json:"resourceName" validate:"required"`
	UserEmail    string `json:"userEmail" validate:"required,email"`
}

func (a *API) createContact(c echo.Context) error {
	var payload contactPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid contact data")
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid contact data")
	}

	contact, err := a.store.CreateContact(domain.InsertContact{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Message: payload.Message,
	})
	if err != nil {
		zap.L().Error("contact create failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to save contact")
	}

	a.bus.Publish(events.TopicLeadCreated, events.LeadCreated{
		Kind:  domain.LeadKindContact,
		ID:    contact.ID,
		Name:  contact.Name,
		Email: contact.Email,
	})
	return ok(c, contact)
}

func (a *API) createBooking(c echo.Context) error {
	var payload bookingPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid booking data")
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid booking data")
	}

	booking, err := a.store.CreateBooking(domain.InsertBooking{
		Name:        payload.Name,
		Email:       payload.Email,
		Phone:       payload.Phone,
		PackageType: payload.PackageType,
		PackageName: payload.PackageName,
		Price:       payload.Price,
	})
	if err != nil {
		zap.L().Error("booking create failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to save booking")
	}

	a.bus.Publish(events.TopicLeadCreated, events.LeadCreated{
		Kind:  domain.LeadKindBooking,
		ID:    booking.ID,
		Name:  booking.Name,
		Email: booking.Email,
	})
	return ok(c, booking)
}

func (a *API) listBookings(c echo.Context) error {
	bookings, err := a.store.GetAllBookings()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch bookings")
	}
	return ok(c, bookings)
}

func (a *API) createDownload(c echo.Context) error {
	var payload downloadPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid download data")
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid download data")
	}

	download, err := a.store.CreateDownload(domain.InsertDownload{
		ResourceName: payload.ResourceName,
		UserEmail:    payload.UserEmail,
	})
	if err != nil {
		zap.L().Error("download create failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to save download")
	}
	return ok(c, download)
}
