package lmssdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListClasses returns every class, including the marketplace view students
// browse before enrolling.
func (c *Client) ListClasses(ctx context.Context) ([]Class, error) {
	resp, err := c.do(ctx, http.MethodGet, "/classes", nil, nil)
	if err != nil {
		return nil, err
	}

	var out []Class
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetClass returns a class with its enrollment roster.
func (c *Client) GetClass(ctx context.Context, id int64) (*Class, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/classes/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var out Class
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateClass creates a class under a subject and teacher.
func (c *Client) CreateClass(ctx context.Context, req CreateClassRequest) (*Class, error) {
	resp, err := c.do(ctx, http.MethodPost, "/classes", req, nil)
	if err != nil {
		return nil, err
	}

	var out Class
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateClass replaces a class record.
func (c *Client) UpdateClass(ctx context.Context, id int64, req UpdateClassRequest) (*Class, error) {
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/classes/%d", id), req, nil)
	if err != nil {
		return nil, err
	}

	var out Class
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteClass removes a class.
func (c *Client) DeleteClass(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/classes/%d", id), nil, nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusOK)
}
