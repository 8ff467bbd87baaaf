package lmssdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ============================================================================
// AI Configurations
// ============================================================================

// CreateAIConfig creates an AI configuration profile for a teacher.
func (c *Client) CreateAIConfig(ctx context.Context, req CreateAIConfigRequest) (*AIConfig, error) {
	resp, err := c.do(ctx, http.MethodPost, "/ai-configs", req, nil)
	if err != nil {
		return nil, err
	}

	var out AIConfig
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAIConfigsByTeacher returns the AI configurations a teacher created.
func (c *Client) ListAIConfigsByTeacher(ctx context.Context, teacherID int64) ([]AIConfig, error) {
	query := url.Values{"teacher_id": {strconv.FormatInt(teacherID, 10)}}
	resp, err := c.do(ctx, http.MethodGet, "/ai-configs", nil, &RequestOptions{Query: query})
	if err != nil {
		return nil, err
	}

	var out []AIConfig
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAIConfig returns an AI configuration by id.
func (c *Client) GetAIConfig(ctx context.Context, id int64) (*AIConfig, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/ai-configs/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var out AIConfig
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAIConfig patches an AI configuration.
func (c *Client) UpdateAIConfig(ctx context.Context, id int64, req UpdateAIConfigRequest) (*AIConfig, error) {
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/ai-configs/%d", id), req, nil)
	if err != nil {
		return nil, err
	}

	var out AIConfig
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAIConfig permanently removes an AI configuration.
func (c *Client) DeleteAIConfig(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/ai-configs/%d", id), nil, nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusOK)
}

// ============================================================================
// AI Chat History
// ============================================================================

// CreateAIChat records a chat exchange between a teacher and the assistant.
func (c *Client) CreateAIChat(ctx context.Context, req CreateAIChatRequest) (*AIChat, error) {
	resp, err := c.do(ctx, http.MethodPost, "/ai-history-chats", req, nil)
	if err != nil {
		return nil, err
	}

	var out AIChat
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAIChatsByTeacher returns a teacher's chat history.
func (c *Client) ListAIChatsByTeacher(ctx context.Context, teacherID int64) ([]AIChat, error) {
	query := url.Values{"teacher_id": {strconv.FormatInt(teacherID, 10)}}
	resp, err := c.do(ctx, http.MethodGet, "/ai-history-chats", nil, &RequestOptions{Query: query})
	if err != nil {
		return nil, err
	}

	var out []AIChat
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAIChat returns a single chat record.
func (c *Client) GetAIChat(ctx context.Context, id int64) (*AIChat, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/ai-history-chats/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var out AIChat
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAIChat soft-deletes a chat record.
func (c *Client) DeleteAIChat(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/ai-history-chats/%d", id), nil, nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusOK)
}

// ============================================================================
// Quiz Generation
// ============================================================================

// GenerateQuiz asks the backend's AI service for quiz questions matching the
// requested topic, grade and difficulty.
func (c *Client) GenerateQuiz(ctx context.Context, req GenerateQuizRequest) ([]QuizQuestion, error) {
	resp, err := c.do(ctx, http.MethodPost, "/quiz", req, nil)
	if err != nil {
		return nil, err
	}

	var out []QuizQuestion
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ============================================================================
// AI Call Logs
// ============================================================================

// ListAICallLogs returns AI interaction logs, optionally filtered by
// configuration or student.
func (c *Client) ListAICallLogs(ctx context.Context, filter AICallLogFilter) ([]AICallLog, error) {
	query := url.Values{}
	if filter.ConfigID != nil {
		query.Set("config_id", strconv.FormatInt(*filter.ConfigID, 10))
	}
	if filter.StudentID != nil {
		query.Set("student_id", strconv.FormatInt(*filter.StudentID, 10))
	}

	var opts *RequestOptions
	if len(query) > 0 {
		opts = &RequestOptions{Query: query}
	}

	resp, err := c.do(ctx, http.MethodGet, "/ai-call-logs", nil, opts)
	if err != nil {
		return nil, err
	}

	var out []AICallLog
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAICallLog returns a single call log.
func (c *Client) GetAICallLog(ctx context.Context, id int64) (*AICallLog, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/ai-call-logs/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var out AICallLog
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAICallLog soft-deletes a call log.
func (c *Client) DeleteAICallLog(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/ai-call-logs/%d", id), nil, nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusOK)
}
