package lmssdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// CreatePayment records a payment and initiates the gateway checkout. The
// response carries the redirect URL the consumer sends the user to.
func (c *Client) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*PaymentCheckout, error) {
	resp, err := c.do(ctx, http.MethodPost, "/payments", req, nil)
	if err != nil {
		return nil, err
	}

	var out PaymentCheckout
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyPaymentCallback replays the gateway's redirect parameters to the
// backend for authoritative verification. The redirect parameters alone are
// never to be trusted; this call is the source of truth for the outcome.
func (c *Client) VerifyPaymentCallback(ctx context.Context, params url.Values) (*PaymentVerification, error) {
	resp, err := c.do(ctx, http.MethodGet, "/payments/callback", nil, &RequestOptions{Query: params})
	if err != nil {
		return nil, err
	}

	var out PaymentVerification
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPayment returns a payment record.
func (c *Client) GetPayment(ctx context.Context, id int64) (*Payment, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/payments/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var out Payment
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPayments returns every payment record.
func (c *Client) ListPayments(ctx context.Context) ([]Payment, error) {
	resp, err := c.do(ctx, http.MethodGet, "/payments", nil, nil)
	if err != nil {
		return nil, err
	}

	var out []Payment
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPaymentsByTeacher returns a teacher's payment history.
func (c *Client) ListPaymentsByTeacher(ctx context.Context, teacherID int64) ([]Payment, error) {
	path := fmt.Sprintf("/payments/by-teacher/%d", teacherID)
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var out []Payment
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPaymentsByStatus filters payments by status.
func (c *Client) ListPaymentsByStatus(ctx context.Context, status PaymentStatus) ([]Payment, error) {
	path := "/payments/by-status/" + strconv.Itoa(int(status))
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var out []Payment
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdatePayment patches a payment record.
func (c *Client) UpdatePayment(ctx context.Context, id int64, req UpdatePaymentRequest) (*Payment, error) {
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/payments/%d", id), req, nil)
	if err != nil {
		return nil, err
	}

	var out Payment
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePaymentStatus changes only the status of a payment.
func (c *Client) UpdatePaymentStatus(ctx context.Context, id int64, status PaymentStatus) (*UpdatePaymentStatusResponse, error) {
	path := fmt.Sprintf("/payments/%d/status", id)
	resp, err := c.do(ctx, http.MethodPatch, path, status, nil)
	if err != nil {
		return nil, err
	}

	var out UpdatePaymentStatusResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePayment removes a payment record.
func (c *Client) DeletePayment(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/payments/%d", id), nil, nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusOK)
}
