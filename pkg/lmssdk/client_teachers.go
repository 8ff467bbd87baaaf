package lmssdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListTeachers returns every teacher profile.
func (c *Client) ListTeachers(ctx context.Context) ([]Teacher, error) {
	resp, err := c.do(ctx, http.MethodGet, "/teachers", nil, nil)
	if err != nil {
		return nil, err
	}

	var out []Teacher
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTeacher returns a single teacher profile by id.
func (c *Client) GetTeacher(ctx context.Context, id int64) (*Teacher, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/teachers/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var out Teacher
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTeacherProfile creates a teacher profile for a user account. Used by
// the identity resolver to auto-provision first-time teachers.
func (c *Client) CreateTeacherProfile(ctx context.Context, req CreateTeacherProfileRequest) (*Teacher, error) {
	resp, err := c.do(ctx, http.MethodPost, "/teachers", req, nil)
	if err != nil {
		return nil, err
	}

	var out Teacher
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
