// Package payment wraps the external payment gateway: order creation over
// its REST API and checkout signature verification. The signature contract
// is HMAC-SHA256 over "<orderId>|<paymentId>" with the shared key secret,
// hex encoded, and must match the gateway's client-side checkout flow
// bit-exactly.
package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/guonaihong/gout"
	"github.com/pkg/errors"
)

const DefaultBaseURL = "https://api.razorpay.com/v1"

// Order is the gateway's order object, passed through to the client
// untouched apart from JSON decoding.
type Order struct {
	ID        string `json:"id"`
	Entity    string `json:"entity"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

type Gateway struct {
	keyID     string
	keySecret string
	baseURL   string
}

func NewGateway(keyID, keySecret, baseURL string) *Gateway {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Gateway{keyID: keyID, keySecret: keySecret, baseURL: baseURL}
}

// CreateOrder registers an order with the gateway. Amount is in main
// currency units and converted to the smallest unit on the wire. Currency
// defaults to INR.
func (g *Gateway) CreateOrder(amount int64, currency string) (*Order, error) {
	if currency == "" {
		currency = "INR"
	}
	receipt := fmt.Sprintf("receipt_%d", time.Now().UnixMilli())

	var order Order
	var code int
	err := gout.POST(g.baseURL + "/orders").
		SetHeader(gout.H{"Authorization": g.basicAuth()}).
		SetJSON(gout.H{
			"amount":   amount * 100,
			"currency": currency,
			"receipt":  receipt,
		}).
		BindJSON(&order).
		Code(&code).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "gateway order request")
	}
	if code != http.StatusOK {
		return nil, errors.Errorf("gateway order request failed with status %d", code)
	}
	return &order, nil
}

// VerifySignature checks a checkout callback signature. Comparison is
// constant time.
func (g *Gateway) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (g *Gateway) basicAuth() string {
	creds := base64.StdEncoding.EncodeToString([]byte(g.keyID + ":" + g.keySecret))
	return "Basic " + creds
}
