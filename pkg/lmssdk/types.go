package lmssdk

// Wire types for the LMS domain resources. Field names follow the backend's
// JSON conventions: camelCase for the core resources, snake_case for the AI
// surface.

// ============================================================================
// Teachers
// ============================================================================

type Teacher struct {
	TeacherID  int64            `json:"teacherId"`
	UserID     int64            `json:"userId"`
	Name       string           `json:"name"`
	Username   string           `json:"username"`
	Email      *string          `json:"email"`
	Bio        string           `json:"bio"`
	HireDate   string           `json:"hireDate"`
	Department string           `json:"department"`
	Status     int              `json:"status"`
	Subjects   []SubjectSummary `json:"subjects"`
	Classes    []ClassSummary   `json:"classes"`
}

type CreateTeacherProfileRequest struct {
	UserID     int64  `json:"userId"`
	Name       string `json:"name"`
	Bio        string `json:"bio"`
	HireDate   string `json:"hireDate"`
	Department string `json:"department"`
}

// ============================================================================
// Students
// ============================================================================

type StudentStatus int

const (
	StudentActive    StudentStatus = 0
	StudentSuspended StudentStatus = 1
)

type EnrolledClass struct {
	ClassID      int64  `json:"classId"`
	Name         string `json:"name"`
	SubjectTitle string `json:"subjectTitle"`
	TeacherName  string `json:"teacherName"`
	Schedule     string `json:"schedule"`
}

type Student struct {
	StudentID       int64           `json:"studentId"`
	UserID          int64           `json:"userId"`
	Name            string          `json:"name"`
	Username        string          `json:"username"`
	Email           string          `json:"email"`
	Major           string          `json:"major"`
	EnrollmentDate  string          `json:"enrollmentDate"`
	Status          StudentStatus   `json:"status"`
	EnrolledClasses []EnrolledClass `json:"enrolledClasses"`
}

type CreateStudentRequest struct {
	UserID  int64  `json:"userId"`
	Name    string `json:"name"`
	Major   string `json:"major"`
	ClassID *int64 `json:"classId,omitempty"`
}

type UpdateStudentRequest struct {
	Name           *string        `json:"name,omitempty"`
	Major          *string        `json:"major,omitempty"`
	ClassID        *int64         `json:"classId,omitempty"`
	Status         *StudentStatus `json:"status,omitempty"`
	EnrollmentDate *string        `json:"enrollmentDate,omitempty"`
}

// ============================================================================
// Classes
// ============================================================================

type ClassSummary struct {
	ClassID   int64   `json:"classId"`
	Name      string  `json:"name"`
	Schedule  string  `json:"schedule"`
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

type ClassEnrollment struct {
	StudentID  int64   `json:"studentId"`
	Name       *string `json:"name"`
	Username   *string `json:"username"`
	Email      *string `json:"email"`
	EnrolledAt *string `json:"enrolledAt"`
}

type Class struct {
	ClassSummary
	SubjectID        int64             `json:"subjectId"`
	TeacherID        int64             `json:"teacherId"`
	CreatedAt        string            `json:"createdAt"`
	SubjectTitle     *string           `json:"subjectTitle"`
	TeacherName      string            `json:"teacherName"`
	EnrolledStudents []ClassEnrollment `json:"enrolledStudents"`
}

type CreateClassRequest struct {
	SubjectID int64   `json:"subjectId"`
	TeacherID int64   `json:"teacherId"`
	Name      string  `json:"name"`
	Schedule  string  `json:"schedule"`
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

// UpdateClassRequest mirrors the create payload; the backend replaces the
// whole record on update.
type UpdateClassRequest = CreateClassRequest

// ============================================================================
// Subjects
// ============================================================================

type SubjectSummary struct {
	SubjectID int64  `json:"subjectId"`
	Title     string `json:"title"`
}

type Subject struct {
	SubjectID   int64          `json:"subjectId"`
	TeacherID   int64          `json:"teacherId"`
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   *string        `json:"updatedAt"`
	TeacherName *string        `json:"teacherName"`
	Classes     []ClassSummary `json:"classes"`
}

type CreateSubjectRequest struct {
	TeacherID   int64   `json:"teacherId"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

type UpdateSubjectRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ============================================================================
// Payments
// ============================================================================

type PaymentMethod int

const (
	PaymentMethodBank PaymentMethod = 0
	PaymentMethodMomo PaymentMethod = 1
	PaymentMethodCash PaymentMethod = 2
)

type PaymentStatus int

const (
	PaymentPending   PaymentStatus = 0
	PaymentCompleted PaymentStatus = 1
	PaymentFailed    PaymentStatus = 2
)

type Payment struct {
	PaymentID   int64   `json:"paymentId"`
	TeacherID   int64   `json:"teacherId"`
	TeacherName string  `json:"teacherName"`
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"paymentDate"`
	Method      any     `json:"method"` // enum or string depending on backend version
	Status      any     `json:"status"` // enum or string depending on backend version
	Description *string `json:"description"`
}

type CreatePaymentRequest struct {
	TeacherID   int64   `json:"teacherId"`
	Amount      float64 `json:"amount"`
	TeacherName string  `json:"teacherName"`
	Description string  `json:"description,omitempty"`
}

type UpdatePaymentRequest struct {
	Amount *float64       `json:"amount,omitempty"`
	Method *PaymentMethod `json:"method,omitempty"`
	Status *PaymentStatus `json:"status,omitempty"`
}

// PaymentCheckout is the create-payment response: the stored record plus the
// gateway redirect target the consumer sends the user to.
type PaymentCheckout struct {
	Payment
	CheckoutURL string `json:"momoPaymentUrl"`
	OrderID     string `json:"momoOrderId"`
}

// GatewayCallback is the gateway's transaction outcome as echoed back by the
// backend's verification endpoint.
type GatewayCallback struct {
	PartnerCode  string `json:"partnerCode"`
	AccessKey    string `json:"accessKey"`
	RequestID    string `json:"requestId"`
	Amount       string `json:"amount"`
	OrderID      string `json:"orderId"`
	OrderInfo    string `json:"orderInfo"`
	OrderType    string `json:"orderType"`
	TransID      string `json:"transId"`
	Message      string `json:"message"`
	LocalMessage string `json:"localMessage"`
	ResponseTime string `json:"responseTime"`
	ErrorCode    int    `json:"errorCode"`
	PayType      string `json:"payType"`
	ExtraData    string `json:"extraData"`
}

type PaymentVerification struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	Data      *GatewayCallback `json:"data,omitempty"`
	ErrorCode *int             `json:"errorCode,omitempty"`
}

type UpdatePaymentStatusResponse struct {
	Message string  `json:"message"`
	Payment Payment `json:"payment"`
}

// ============================================================================
// AI surface
// ============================================================================

type AIConfig struct {
	ConfigID     int64    `json:"config_id"`
	TeacherID    int64    `json:"teacher_id"`
	ConfigName   string   `json:"config_name"`
	ModelName    string   `json:"model_name,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
	MaxTokens    *int     `json:"max_tokens,omitempty"`
	SettingsJSON string   `json:"settings_json,omitempty"`
	IsActive     bool     `json:"is_active"`
	CreatedAt    string   `json:"created_at"`
}

type CreateAIConfigRequest struct {
	TeacherID    int64    `json:"teacher_id"`
	ConfigName   string   `json:"config_name"`
	ModelName    string   `json:"model_name,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
	MaxTokens    *int     `json:"max_tokens,omitempty"`
	SettingsJSON string   `json:"settings_json,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

type UpdateAIConfigRequest struct {
	ConfigName   *string  `json:"config_name,omitempty"`
	ModelName    *string  `json:"model_name,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
	MaxTokens    *int     `json:"max_tokens,omitempty"`
	SettingsJSON *string  `json:"settings_json,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

type AIChat struct {
	ChatID      int64  `json:"chat_id"`
	TeacherID   int64  `json:"teacher_id"`
	Message     string `json:"message"`
	ChatSummary string `json:"chat_summary,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type CreateAIChatRequest struct {
	TeacherID   int64  `json:"teacher_id"`
	Message     string `json:"message"`
	ChatSummary string `json:"chat_summary,omitempty"`
}

type GenerateQuizRequest struct {
	Topic      string `json:"topic,omitempty"`
	Grade      int    `json:"grade,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Count      int    `json:"count"`
	Type       string `json:"type,omitempty"`
	TeacherID  *int64 `json:"teacher_id,omitempty"`
	StudentID  *int64 `json:"student_id,omitempty"`
	ConfigID   *int64 `json:"config_id,omitempty"`
}

type QuizQuestion struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Choices     []string `json:"choices"`
	AnswerIndex int      `json:"answer_index"`
	Explanation string   `json:"explanation,omitempty"`
	Topic       string   `json:"topic,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
}

type AICallLog struct {
	LogID        int64  `json:"log_id"`
	ConfigID     int64  `json:"config_id"`
	StudentID    *int64 `json:"student_id,omitempty"`
	MatrixID     *int64 `json:"matrix_id,omitempty"`
	ServiceName  string `json:"service_name,omitempty"`
	RequestText  string `json:"request_text,omitempty"`
	ResponseText string `json:"response_text,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// AICallLogFilter narrows call-log listings. Zero fields are omitted.
type AICallLogFilter struct {
	ConfigID  *int64
	StudentID *int64
}
