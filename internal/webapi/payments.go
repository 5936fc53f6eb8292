package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/coachdesk/coachdesk/internal/domain"
	"github.com/coachdesk/coachdesk/internal/events"
)

type createOrderPayload struct {
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Currency string `json:"currency"`
}

type verifyPaymentPayload struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`

	// Optional checkout context, stored with the payment record.
	CustomerName string `json:"customer_name"`
	Amount       string `json:"amount"`
}

func (a *API) createOrder(c echo.Context) error {
	var payload createOrderPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid order data")
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid order data")
	}

	order, err := a.gateway.CreateOrder(payload.Amount, payload.Currency)
	if err != nil {
		zap.L().Error("gateway order creation failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to create order")
	}
	return ok(c, order)
}

func (a *API) verifyPayment(c echo.Context) error {
	var payload verifyPaymentPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid payment data")
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid payment data")
	}

	if !a.gateway.VerifySignature(payload.OrderID, payload.PaymentID, payload.Signature) {
		zap.L().Warn("payment signature mismatch", zap.String("order_id", payload.OrderID))
		return fail(c, http.StatusBadRequest, "Invalid signature")
	}

	saved, err := a.store.CreatePayment(domain.InsertPayment{
		CustomerName: payload.CustomerName,
		OrderID:      payload.OrderID,
		Amount:       payload.Amount,
		Status:       "completed",
	})
	if err != nil {
		zap.L().Error("payment record failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Payment verification failed")
	}

	a.bus.Publish(events.TopicPaymentVerified, events.PaymentVerified{
		PaymentID: saved.ID,
		OrderID:   saved.OrderID,
	})
	return ok(c, echo.Map{"success": true, "message": "Payment verified successfully"})
}
