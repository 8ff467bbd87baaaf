// Package paymentx handles the payment gateway's redirect handshake: parsing
// the transaction outcome the gateway appends to the callback URL and
// replaying it to the backend for authoritative verification.
//
// The redirect parameters alone prove nothing; tamper protection is the
// backend's job. Consumers may show the parsed outcome optimistically, but
// only the backend verification result is trustworthy.
package paymentx

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/jonny-tran/lms-math-exam/pkg/lmssdk"
)

// successCode is the gateway's errorCode value for a completed transaction.
const successCode = "0"

// CallbackResult carries the gateway's transaction outcome as delivered in
// the redirect query string. All fields are the raw string values.
type CallbackResult struct {
	PartnerCode  string
	AccessKey    string
	RequestID    string
	Amount       string
	OrderID      string
	OrderInfo    string
	OrderType    string
	TransID      string
	Message      string
	LocalMessage string
	ResponseTime string
	ErrorCode    string
	PayType      string
	ExtraData    string
}

// ParseCallback extracts the gateway fields from redirect query parameters.
func ParseCallback(q url.Values) CallbackResult {
	return CallbackResult{
		PartnerCode:  q.Get("partnerCode"),
		AccessKey:    q.Get("accessKey"),
		RequestID:    q.Get("requestId"),
		Amount:       q.Get("amount"),
		OrderID:      q.Get("orderId"),
		OrderInfo:    q.Get("orderInfo"),
		OrderType:    q.Get("orderType"),
		TransID:      q.Get("transId"),
		Message:      q.Get("message"),
		LocalMessage: q.Get("localMessage"),
		ResponseTime: q.Get("responseTime"),
		ErrorCode:    q.Get("errorCode"),
		PayType:      q.Get("payType"),
		ExtraData:    q.Get("extraData"),
	}
}

// Succeeded reports whether the redirect claims a completed transaction:
// errorCode "0" and a transaction id present.
func (r CallbackResult) Succeeded() bool {
	return r.ErrorCode == successCode && r.TransID != ""
}

// FailureMessage returns the most specific failure text the gateway
// provided, preferring the localized message.
func (r CallbackResult) FailureMessage() string {
	if r.LocalMessage != "" {
		return r.LocalMessage
	}
	if r.Message != "" {
		return r.Message
	}
	return "payment was not successful"
}

// Values re-encodes the result as query parameters for replay to the
// backend's verification endpoint. Empty fields are omitted.
func (r CallbackResult) Values() url.Values {
	q := url.Values{}
	set := func(key, val string) {
		if val != "" {
			q.Set(key, val)
		}
	}
	set("partnerCode", r.PartnerCode)
	set("accessKey", r.AccessKey)
	set("requestId", r.RequestID)
	set("amount", r.Amount)
	set("orderId", r.OrderID)
	set("orderInfo", r.OrderInfo)
	set("orderType", r.OrderType)
	set("transId", r.TransID)
	set("message", r.Message)
	set("localMessage", r.LocalMessage)
	set("responseTime", r.ResponseTime)
	set("errorCode", r.ErrorCode)
	set("payType", r.PayType)
	set("extraData", r.ExtraData)
	return q
}

// BackendVerifier verifies a callback against the backend.
// *lmssdk.Client satisfies it.
type BackendVerifier interface {
	VerifyPaymentCallback(ctx context.Context, params url.Values) (*lmssdk.PaymentVerification, error)
}

// Verify replays the callback to the backend and returns its verdict.
func Verify(ctx context.Context, api BackendVerifier, r CallbackResult) (*lmssdk.PaymentVerification, error) {
	return api.VerifyPaymentCallback(ctx, r.Values())
}

// VerifyInBackground verifies after the consumer has already shown the
// gateway's claimed success. A verification failure at this point is logged,
// not surfaced: the optimistic state is not retracted.
func VerifyInBackground(ctx context.Context, api BackendVerifier, r CallbackResult, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	verification, err := Verify(ctx, api, r)
	switch {
	case err != nil:
		logger.Error("background payment verification failed",
			"order_id", r.OrderID, "trans_id", r.TransID, "err", err)
	case !verification.Success:
		logger.Warn("backend rejected gateway-claimed success",
			"order_id", r.OrderID, "trans_id", r.TransID,
			"message", verification.Message)
	default:
		logger.Info("payment verified",
			"order_id", r.OrderID, "trans_id", r.TransID)
	}
}
