// Package webapi serves the public site endpoints: lead capture forms,
// blog posts and the payment gateway pass-through.
package webapi

import (
	"net/http"

	"github.com/asaskevich/EventBus"
	"github.com/labstack/echo/v4"

	"github.com/coachdesk/coachdesk/internal/payment"
	"github.com/coachdesk/coachdesk/internal/storage"
	"github.com/coachdesk/coachdesk/internal/webserver"
)

type API struct {
	store   storage.Storage
	gateway *payment.Gateway
	bus     EventBus.Bus
}

func Register(ws *webserver.WebServer, store storage.Storage, gateway *payment.Gateway, bus EventBus.Bus) {
	api := &API{store: store, gateway: gateway, bus: bus}

	ws.ApiPOST("/contact", api.createContact)
	ws.ApiPOST("/bookings", api.createBooking)
	ws.ApiGET("/bookings", api.listBookings)
	ws.ApiPOST("/downloads", api.createDownload)

	ws.ApiGET("/blog-posts", api.listBlogPosts)
	ws.ApiGET("/blog-posts/:id", api.getBlogPost)
	ws.ApiPOST("/blog-posts", api.createBlogPost)
	ws.ApiPATCH("/blog-posts/:id", api.updateBlogPost)
	ws.ApiDELETE("/blog-posts/:id", api.deleteBlogPost)

	ws.ApiPOST("/create-order", api.createOrder)
	ws.ApiPOST("/verify-payment", api.verifyPayment)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"error": msg})
}
