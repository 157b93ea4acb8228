package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/studentdiary/internal/client/models"
	"github.com/dmitrijs2005/studentdiary/internal/logging"
	"github.com/google/uuid"
)

// RequestIDHeader is set on every outgoing request.
const RequestIDHeader = "X-Request-ID"

// HTTPClient talks to the backend over JSON/HTTP. It attaches the bearer
// token from its TokenStore and invalidates the store on any 401.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenStore
	logger  logging.Logger
}

// NewHTTPClient builds a client for the backend at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenStore, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid api url %q: scheme must be http or https", baseURL)
	}
	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
	}, nil
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}

type request struct {
	method string
	path   string
	// body is JSON-encoded unless contentType is set, in which case it must
	// be an io.Reader.
	body        any
	contentType string
	out         any
	// public requests carry no token and do not tear the session down.
	public bool
}

func (c *HTTPClient) endpoint(path string) string {
	return c.baseURL.String() + path
}

func (c *HTTPClient) do(ctx context.Context, r request) error {
	var body io.Reader
	contentType := r.contentType
	if r.body != nil {
		if contentType != "" {
			body = r.body.(io.Reader)
		} else {
			b, err := json.Marshal(r.body)
			if err != nil {
				return fmt.Errorf("encode %s %s: %w", r.method, r.path, err)
			}
			body = bytes.NewReader(b)
			contentType = "application/json"
		}
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.endpoint(r.path), body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", r.method, r.path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)

	if !r.public {
		token := c.tokens.Token()
		if token == "" {
			return ErrAuthenticationRequired
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.logger.Warn(ctx, "request failed", "method", r.method, "path", r.path, "request_id", reqID, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "api call", "method", r.method, "path", r.path, "status", resp.StatusCode, "request_id", reqID)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if r.out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(r.out); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: decode %s %s: %v", ErrRequestFailed, r.method, r.path, err)
		}
		return nil
	}

	return c.mapStatus(ctx, r, resp)
}

// mapStatus classifies a non-2xx response.
func (c *HTTPClient) mapStatus(ctx context.Context, r request, resp *http.Response) error {
	var eb errorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(raw, &eb)
	msg := eb.text()

	switch {
	case resp.StatusCode == http.StatusUnauthorized && !r.public:
		if err := c.tokens.Invalidate(ctx); err != nil {
			c.logger.Error(ctx, "session teardown failed", "error", err)
		}
		return ErrAuthenticationRequired
	case resp.StatusCode == http.StatusForbidden:
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &AuthorizationError{Message: msg}
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return &ValidationError{Message: msg}
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	default:
		return &StatusError{Code: resp.StatusCode, Message: msg}
	}
}

func (c *HTTPClient) Login(ctx context.Context, cr models.Credentials) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, request{method: http.MethodPost, path: "/api/auth/login", body: cr, out: &out, public: true}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Signup(ctx context.Context, sr models.SignupRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, request{method: http.MethodPost, path: "/api/auth/signup", body: sr, out: &out, public: true}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, request{method: http.MethodGet, path: "/api/user", out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Subjects(ctx context.Context, role models.Role) ([]models.Subject, error) {
	var out []models.Subject
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/subjects/" + url.PathEscape(string(role)), out: &out})
	return out, err
}

func (c *HTTPClient) ForumSubjects(ctx context.Context) ([]models.Subject, error) {
	var out []models.Subject
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/subjects", out: &out})
	return out, err
}

func (c *HTTPClient) CreateSubject(ctx context.Context, s models.Subject) (*models.Subject, error) {
	var out models.Subject
	if err := c.do(ctx, request{method: http.MethodPost, path: "/api/subjects", body: s, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateUnits(ctx context.Context, subjectID string, units []models.Unit) error {
	body := struct {
		Units []models.Unit `json:"units"`
	}{Units: units}
	return c.do(ctx, request{method: http.MethodPut, path: "/api/subjects/" + url.PathEscape(subjectID) + "/units", body: body})
}

func (c *HTTPClient) Students(ctx context.Context, subjectID string) ([]models.Student, error) {
	var out []models.Student
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/students/" + url.PathEscape(subjectID), out: &out})
	return out, err
}

func (c *HTTPClient) Grades(ctx context.Context, subjectID string) ([]models.GradeRecord, error) {
	var out []models.GradeRecord
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/grades/" + url.PathEscape(subjectID), out: &out})
	return out, err
}

func (c *HTTPClient) SubmitGrade(ctx context.Context, in models.GradeInput) error {
	return c.do(ctx, request{method: http.MethodPost, path: "/api/grades", body: in})
}

func (c *HTTPClient) Tasks(ctx context.Context) ([]models.Task, error) {
	var out []models.Task
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/tasks", out: &out})
	return out, err
}

func (c *HTTPClient) AddTask(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	var out models.Task
	if err := c.do(ctx, request{method: http.MethodPost, path: "/api/tasks", body: in, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateTask(ctx context.Context, id string, in models.TaskUpdate) (*models.Task, error) {
	var out models.Task
	if err := c.do(ctx, request{method: http.MethodPut, path: "/api/tasks/" + url.PathEscape(id), body: in, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/api/tasks/" + url.PathEscape(id)})
}

func (c *HTTPClient) CheckDeadlines(ctx context.Context) ([]models.Task, error) {
	var out []models.Task
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/tasks/check-deadlines", out: &out})
	return out, err
}

func (c *HTTPClient) Calendar(ctx context.Context) ([]models.CalendarEntry, error) {
	var out []models.CalendarEntry
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/academic-calendar", out: &out})
	return out, err
}

func (c *HTTPClient) AddCalendarEntry(ctx context.Context, e models.CalendarEntry) (*models.CalendarEntry, error) {
	var out models.CalendarEntry
	if err := c.do(ctx, request{method: http.MethodPost, path: "/api/academic-calendar", body: e, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateCalendarEntry(ctx context.Context, e models.CalendarEntry) error {
	return c.do(ctx, request{method: http.MethodPut, path: "/api/academic-calendar/" + url.PathEscape(e.ID), body: e})
}

func (c *HTTPClient) DeleteCalendarEntry(ctx context.Context, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/api/academic-calendar/" + url.PathEscape(id)})
}

func (c *HTTPClient) Assignments(ctx context.Context, subjectID string) ([]models.Assignment, error) {
	var out []models.Assignment
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/assignments/" + url.PathEscape(subjectID), out: &out})
	return out, err
}

// CreateAssignment posts the assignment as a multipart form, the encoding
// the backend expects for this endpoint. No file part is sent.
func (c *HTTPClient) CreateAssignment(ctx context.Context, subjectID string, in models.AssignmentInput) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := [][2]string{{"title", in.Title}, {"description", in.Description}, {"dueDate", in.DueDate}}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return fmt.Errorf("encode assignment: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("encode assignment: %w", err)
	}
	return c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/api/assignments/" + url.PathEscape(subjectID),
		body:        &buf,
		contentType: w.FormDataContentType(),
	})
}

func (c *HTTPClient) Messages(ctx context.Context, subjectID string) ([]models.Message, error) {
	var out []models.Message
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/messages/" + url.PathEscape(subjectID), out: &out})
	return out, err
}

func (c *HTTPClient) PostMessage(ctx context.Context, in models.MessageInput) (*models.Message, error) {
	var out models.Message
	if err := c.do(ctx, request{method: http.MethodPost, path: "/api/messages", body: in, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) AlumniMessages(ctx context.Context) ([]models.Message, error) {
	var out []models.Message
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/alumni-messages", out: &out})
	return out, err
}

func (c *HTTPClient) PostAlumniMessage(ctx context.Context, in models.MessageInput) (*models.Message, error) {
	var out models.Message
	if err := c.do(ctx, request{method: http.MethodPost, path: "/api/alumni-messages", body: models.MessageInput{Text: in.Text}, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}
