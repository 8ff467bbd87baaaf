package lmssdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListStudents returns every student profile.
func (c *Client) ListStudents(ctx context.Context) ([]Student, error) {
	resp, err := c.do(ctx, http.MethodGet, "/student", nil, nil)
	if err != nil {
		return nil, err
	}

	var out []Student
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStudentByUserID looks up the student profile owned by a user account.
// Returns a 404 *APIError (see IsNotFound) when the user has no profile yet.
func (c *Client) GetStudentByUserID(ctx context.Context, userID int64) (*Student, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/student/%d", userID), nil, nil)
	if err != nil {
		return nil, err
	}

	var out Student
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateStudentProfile creates a student profile for a user account. Used by
// the identity resolver to auto-provision first-time students.
func (c *Client) CreateStudentProfile(ctx context.Context, req CreateStudentRequest) (*Student, error) {
	resp, err := c.do(ctx, http.MethodPost, "/student", req, nil)
	if err != nil {
		return nil, err
	}

	var out Student
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStudent patches a student profile.
func (c *Client) UpdateStudent(ctx context.Context, id int64, req UpdateStudentRequest) (*Student, error) {
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/student/%d", id), req, nil)
	if err != nil {
		return nil, err
	}

	var out Student
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// EnrollStudent enrolls a student into a class.
func (c *Client) EnrollStudent(ctx context.Context, classID, studentID int64) error {
	path := fmt.Sprintf("/classes/%d/enrollment/%d", classID, studentID)
	resp, err := c.do(ctx, http.MethodPost, path, nil, nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusOK)
}

// UnenrollStudent drops a student from a class.
func (c *Client) UnenrollStudent(ctx context.Context, classID, studentID int64) error {
	path := fmt.Sprintf("/classes/%d/unenrollment/%d", classID, studentID)
	resp, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusOK)
}
