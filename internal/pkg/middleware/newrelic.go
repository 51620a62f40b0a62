package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Transaction attribute keys
const (
	AttrDriverID      = "driver.id"
	AttrTripID        = "trip.id"
	AttrDepositMethod = "deposit.method"
	AttrDocumentKind  = "document.kind"
	AttrRejection     = "driver.rejection"
)

// AddAttribute adds a custom attribute to the current transaction
func AddAttribute(c echo.Context, key string, value interface{}) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeError reports err on the transaction. Rejections below 500 are
// recorded as an attribute and kept out of the error rate.
func NoticeError(c echo.Context, status int, err error) {
	txn := newrelic.FromContext(c.Request().Context())
	if txn == nil || err == nil {
		return
	}
	if status < http.StatusInternalServerError {
		txn.AddAttribute(AttrRejection, err.Error())
		return
	}
	txn.NoticeError(err)
}
