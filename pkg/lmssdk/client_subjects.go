package lmssdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListSubjects returns every subject.
func (c *Client) ListSubjects(ctx context.Context) ([]Subject, error) {
	resp, err := c.do(ctx, http.MethodGet, "/subjects", nil, nil)
	if err != nil {
		return nil, err
	}

	var out []Subject
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSubject returns a subject with its classes.
func (c *Client) GetSubject(ctx context.Context, id int64) (*Subject, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/subjects/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var out Subject
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSubject creates a subject owned by a teacher.
func (c *Client) CreateSubject(ctx context.Context, req CreateSubjectRequest) (*Subject, error) {
	resp, err := c.do(ctx, http.MethodPost, "/subjects", req, nil)
	if err != nil {
		return nil, err
	}

	var out Subject
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSubject patches a subject.
func (c *Client) UpdateSubject(ctx context.Context, id int64, req UpdateSubjectRequest) (*Subject, error) {
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/subjects/%d", id), req, nil)
	if err != nil {
		return nil, err
	}

	var out Subject
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSubject removes a subject.
func (c *Client) DeleteSubject(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/subjects/%d", id), nil, nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusOK)
}
