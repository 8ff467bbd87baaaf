package lmssdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resourceServer(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return newTestClient(t, srv.URL, "access-1")
}

func TestGetStudentByUserIDNotFound(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /student/42", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Student not found"})
	})
	client := resourceServer(t, mux)

	_, err := client.GetStudentByUserID(context.Background(), 42)
	require.True(t, IsNotFound(err))
}

func TestCreateStudentProfile(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /student", func(w http.ResponseWriter, r *http.Request) {
		var req CreateStudentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(42), req.UserID)
		assert.Equal(t, "General", req.Major)

		_ = json.NewEncoder(w).Encode(Student{
			StudentID: 7,
			UserID:    req.UserID,
			Name:      req.Name,
			Major:     req.Major,
		})
	})
	client := resourceServer(t, mux)

	student, err := client.CreateStudentProfile(context.Background(), CreateStudentRequest{
		UserID: 42,
		Name:   "New Student",
		Major:  "General",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), student.StudentID)
}

func TestEnrollment(t *testing.T) {
	t.Parallel()

	var enrolled, unenrolled bool
	mux := http.NewServeMux()
	mux.HandleFunc("POST /classes/3/enrollment/7", func(w http.ResponseWriter, r *http.Request) {
		enrolled = true
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "enrolled"})
	})
	mux.HandleFunc("DELETE /classes/3/unenrollment/7", func(w http.ResponseWriter, r *http.Request) {
		unenrolled = true
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "unenrolled"})
	})
	client := resourceServer(t, mux)

	require.NoError(t, client.EnrollStudent(context.Background(), 3, 7))
	require.NoError(t, client.UnenrollStudent(context.Background(), 3, 7))
	assert.True(t, enrolled)
	assert.True(t, unenrolled)
}

func TestCreatePaymentCheckout(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /payments", func(w http.ResponseWriter, r *http.Request) {
		var req CreatePaymentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, float64(150000), req.Amount)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"paymentId":      11,
			"teacherId":      req.TeacherID,
			"amount":         req.Amount,
			"status":         0,
			"momoPaymentUrl": "https://test-payment.momo.vn/pay/ORD11",
			"momoOrderId":    "ORD11",
		})
	})
	client := resourceServer(t, mux)

	checkout, err := client.CreatePayment(context.Background(), CreatePaymentRequest{
		TeacherID:   5,
		Amount:      150000,
		TeacherName: "Jonny",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), checkout.PaymentID)
	assert.Equal(t, "ORD11", checkout.OrderID)
	assert.Contains(t, checkout.CheckoutURL, "momo.vn")
}

func TestVerifyPaymentCallback(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /payments/callback", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "0", r.URL.Query().Get("errorCode"))
		assert.Equal(t, "ORD11", r.URL.Query().Get("orderId"))

		_ = json.NewEncoder(w).Encode(PaymentVerification{
			Success: true,
			Message: "Payment verified",
			Data:    &GatewayCallback{OrderID: "ORD11", TransID: "999"},
		})
	})
	client := resourceServer(t, mux)

	params := url.Values{}
	params.Set("errorCode", "0")
	params.Set("orderId", "ORD11")
	params.Set("transId", "999")

	out, err := client.VerifyPaymentCallback(context.Background(), params)
	require.NoError(t, err)
	assert.True(t, out.Success)
	require.NotNil(t, out.Data)
	assert.Equal(t, "999", out.Data.TransID)
}

func TestListPaymentsByStatus(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /payments/by-status/1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]Payment{
			{PaymentID: 1, Status: "Completed"},
			{PaymentID: 2, Status: float64(1)},
		})
	})
	client := resourceServer(t, mux)

	payments, err := client.ListPaymentsByStatus(context.Background(), PaymentCompleted)
	require.NoError(t, err)
	require.Len(t, payments, 2)

	// The backend reports status as either a string or an enum number
	// depending on its version; both decode.
	assert.Equal(t, "Completed", payments[0].Status)
	assert.Equal(t, float64(1), payments[1].Status)
}

func TestListAICallLogsFilter(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ai-call-logs", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("config_id"))
		assert.Equal(t, "7", r.URL.Query().Get("student_id"))
		_ = json.NewEncoder(w).Encode([]AICallLog{{LogID: 1, ConfigID: 3}})
	})
	client := resourceServer(t, mux)

	configID, studentID := int64(3), int64(7)
	logs, err := client.ListAICallLogs(context.Background(), AICallLogFilter{
		ConfigID:  &configID,
		StudentID: &studentID,
	})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, int64(1), logs[0].LogID)
}
