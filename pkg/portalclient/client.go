// Package portalclient talks to the employee portal API on behalf of a
// logged-in account.
package portalclient

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
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// ErrNotLoggedIn is returned without a round trip when no session exists.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrSessionExpired means the server rejected the stored token. The
	// session has already been discarded; log in again.
	ErrSessionExpired = errors.New("session expired, please log in again")
)

// APIError is a non-2xx answer from the server. Message is the server's own
// text, unchanged.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return http.StatusText(e.Status)
	}
	return e.Message
}

// IsCode reports whether err is an APIError carrying code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

type Client struct {
	baseURL string
	http    *http.Client
	store   SessionStore
	now     func() time.Time

	mu      sync.Mutex
	session *Session
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New builds a client and restores any stored session. A stored session that
// is already past its expiry is cleared.
func New(baseURL string, store SessionStore, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 20 * time.Second},
		store:   store,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	s, err := store.Load()
	if err != nil {
		return nil, err
	}
	if s != nil && s.Expired(c.now()) {
		if err := store.Clear(); err != nil {
			return nil, err
		}
		s = nil
	}
	c.session = s

	return c, nil
}

// Session returns a copy of the current session, or nil.
func (c *Client) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

// ======================================================
// AUTH
// ======================================================

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      Account   `json:"user"`
}

// Login exchanges credentials for a token and stores the new session. A
// failed login leaves any existing session alone.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var out loginResponse
	err := c.send(ctx, http.MethodPost, "/auth/login", nil,
		jsonBody(loginRequest{Email: email, Password: password}), &out, false)
	if err != nil {
		return nil, err
	}

	s := &Session{Token: out.Token, ExpiresAt: out.ExpiresAt, User: out.User}
	if err := c.store.Save(s); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.session = s
	c.mu.Unlock()

	return s, nil
}

// Logout forgets the session locally. Tokens cannot be revoked server-side,
// so there is no request.
func (c *Client) Logout() error {
	c.mu.Lock()
	c.session = nil
	c.mu.Unlock()

	return c.store.Clear()
}

func (c *Client) Me(ctx context.Context) (*Account, error) {
	var out envelope[Account]
	if err := c.get(ctx, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// ======================================================
// EMPLOYEES
// ======================================================

func (c *Client) ListEmployees(ctx context.Context, p ListParams) (*EmployeePage, error) {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	setIf(q, "search", p.Search)
	setIf(q, "department", p.Department)
	setIf(q, "status", p.Status)

	var out EmployeePage
	if err := c.get(ctx, "/employees", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AllEmployees walks every page of a listing. Page and Limit in p are
// overridden.
func (c *Client) AllEmployees(ctx context.Context, p ListParams) ([]Employee, error) {
	p.Limit = 1000

	var all []Employee
	for page := 1; ; page++ {
		p.Page = page
		res, err := c.ListEmployees(ctx, p)
		if err != nil {
			return nil, err
		}
		all = append(all, res.Employees...)
		if len(res.Employees) == 0 || page >= res.TotalPages {
			return all, nil
		}
	}
}

func (c *Client) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	var out envelope[Employee]
	if err := c.get(ctx, "/employees/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) CreateEmployee(ctx context.Context, in EmployeeInput) (*Employee, error) {
	var out envelope[Employee]
	if err := c.send(ctx, http.MethodPost, "/employees", nil, jsonBody(in), &out, true); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, in EmployeeInput) (*Employee, error) {
	var out envelope[Employee]
	path := "/employees/" + url.PathEscape(id)
	if err := c.send(ctx, http.MethodPut, path, nil, jsonBody(in), &out, true); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/employees/"+url.PathEscape(id), nil, nil, nil, true)
}

// UploadPhoto sends r as the employee's profile photo.
func (c *Client) UploadPhoto(ctx context.Context, id, filename string, r io.Reader) (*Employee, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fw, err := w.CreateFormFile("photo", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(fw, r); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	var out envelope[Employee]
	path := "/employees/" + url.PathEscape(id) + "/photo"
	body := &requestBody{reader: &buf, contentType: w.FormDataContentType()}
	if err := c.send(ctx, http.MethodPut, path, nil, body, &out, true); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var out envelope[Stats]
	if err := c.get(ctx, "/employees/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// AuditLogs returns the newest entries first. limit <= 0 uses the server
// default.
func (c *Client) AuditLogs(ctx context.Context, limit int) ([]AuditLogEntry, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out listEnvelope[AuditLogEntry]
	if err := c.get(ctx, "/employees/audit-logs", q, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ======================================================
// ACCOUNTS
// ======================================================

func (c *Client) CreateSupervisor(ctx context.Context, email, password string) (*Account, error) {
	var out envelope[Account]
	body := jsonBody(loginRequest{Email: email, Password: password})
	if err := c.send(ctx, http.MethodPost, "/auth/create-supervisor", nil, body, &out, true); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) ListSupervisors(ctx context.Context) ([]Account, error) {
	var out listEnvelope[Account]
	if err := c.get(ctx, "/auth/supervisors", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/auth/users/"+url.PathEscape(id), nil, nil, nil, true)
}

// ======================================================
// TRANSPORT
// ======================================================

type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type listEnvelope[T any] struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    []T  `json:"data"`
}

type errorBody struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

type requestBody struct {
	reader      io.Reader
	contentType string
	err         error
}

func jsonBody(v any) *requestBody {
	raw, err := json.Marshal(v)
	return &requestBody{
		reader:      bytes.NewReader(raw),
		contentType: "application/json",
		err:         err,
	}
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	return c.send(ctx, http.MethodGet, path, q, nil, out, true)
}

func (c *Client) token() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return "", false
	}
	return c.session.Token, true
}

// expire drops the session after the server refused its token.
func (c *Client) expire() error {
	if err := c.Logout(); err != nil {
		return fmt.Errorf("%w (clear session: %v)", ErrSessionExpired, err)
	}
	return ErrSessionExpired
}

func (c *Client) send(
	ctx context.Context,
	method, path string,
	q url.Values,
	body *requestBody,
	out any,
	authenticated bool,
) error {
	var token string
	if authenticated {
		var ok bool
		if token, ok = c.token(); !ok {
			return ErrNotLoggedIn
		}
	}

	target := c.baseURL + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	var reader io.Reader
	if body != nil {
		if body.err != nil {
			return fmt.Errorf("encode request: %w", body.err)
		}
		reader = body.reader
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", body.contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusUnauthorized && authenticated {
			return c.expire()
		}

		apiErr := &APIError{Status: resp.StatusCode}
		var e errorBody
		if json.Unmarshal(raw, &e) == nil {
			apiErr.Code = e.Code
			apiErr.Message = e.Message
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
