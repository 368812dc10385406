// Package apitest provides an in-process fake of the remote user service
// for package tests. It mirrors the real service's routes, status codes and
// error envelope.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	"greetuser/internal/apiclient"
)

// Operation names used for call counting.
const (
	OpCreate = "create"
	OpLogin  = "login"
	OpInfo   = "info"
)

type storedUser struct {
	info     apiclient.UserInfo
	password string
}

type cannedResponse struct {
	status      int
	contentType string
	body        string
}

// FakeService is an httptest-backed stand-in for the user service.
type FakeService struct {
	mu         sync.Mutex
	users      map[int64]*storedUser
	byUsername map[string]int64
	nextID     int64
	calls      map[string]int
	lastCreate map[string]any
	queued     []cannedResponse
	srv        *httptest.Server
}

// NewFakeService starts a fake service and tears it down with the test.
func NewFakeService(t *testing.T) *FakeService {
	t.Helper()
	f := &FakeService{
		users:      make(map[int64]*storedUser),
		byUsername: make(map[string]int64),
		nextID:     1,
		calls:      make(map[string]int),
	}

	e := echo.New()
	e.HideBanner = true
	e.POST("/api/users", f.createUser)
	e.POST("/api/login", f.login)
	e.GET("/api/users/:id", f.getUserInfo)

	f.srv = httptest.NewServer(e)
	t.Cleanup(f.srv.Close)
	return f
}

// URL returns the fake's base URL.
func (f *FakeService) URL() string {
	return f.srv.URL
}

// Close stops the fake before test cleanup runs. Used to simulate
// transport failure on subsequent calls.
func (f *FakeService) Close() {
	f.srv.Close()
}

// Calls reports how many requests reached the named operation.
func (f *FakeService) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

// LastCreateBody returns the decoded JSON keys of the most recent create
// request, for asserting which fields were actually sent.
func (f *FakeService) LastCreateBody() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastCreate
}

// SeedUser installs an account the fake will serve.
func (f *FakeService) SeedUser(info apiclient.UserInfo, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[info.ID] = &storedUser{info: info, password: password}
	f.byUsername[info.Username] = info.ID
	if info.ID >= f.nextID {
		f.nextID = info.ID + 1
	}
}

// FailNextJSON queues one structured error response ahead of normal
// handling.
func (f *FakeService) FailNextJSON(status int, code, message string) {
	payload, _ := json.Marshal(map[string]string{"error": code, "message": message})
	f.queue(cannedResponse{status: status, contentType: echo.MIMEApplicationJSON, body: string(payload)})
}

// FailNextText queues one plain-text error response ahead of normal
// handling.
func (f *FakeService) FailNextText(status int, body string) {
	f.queue(cannedResponse{status: status, contentType: echo.MIMETextPlain, body: body})
}

func (f *FakeService) queue(r cannedResponse) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queued = append(f.queued, r)
}

func (f *FakeService) popQueued() (cannedResponse, bool) {
	if len(f.queued) == 0 {
		return cannedResponse{}, false
	}
	r := f.queued[0]
	f.queued = f.queued[1:]
	return r, true
}

func (f *FakeService) createUser(c echo.Context) error {
	f.mu.Lock()
	f.calls[OpCreate]++
	canned, hasCanned := f.popQueued()

	var raw map[string]any
	if err := json.NewDecoder(c.Request().Body).Decode(&raw); err == nil {
		f.lastCreate = raw
	}
	f.mu.Unlock()

	if hasCanned {
		return c.Blob(canned.status, canned.contentType, []byte(canned.body))
	}

	username, _ := raw["username"].(string)
	password, _ := raw["password"].(string)
	if username == "" || password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "Username is required and must be max 16 characters",
		})
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.byUsername[username]; exists {
		return c.JSON(http.StatusConflict, map[string]string{
			"error":   "DUPLICATE_USERNAME",
			"message": "Username '" + username + "' already exists",
		})
	}

	id := f.nextID
	f.nextID++
	info := apiclient.UserInfo{ID: id, Username: username}
	info.FirstName = optField(raw, "first_name")
	info.LastName = optField(raw, "last_name")
	info.Email = optField(raw, "email")
	info.Title = optField(raw, "title")
	info.Hobby = optField(raw, "hobby")
	f.users[id] = &storedUser{info: info, password: password}
	f.byUsername[username] = id

	return c.JSON(http.StatusCreated, map[string]int64{"user_id": id})
}

func (f *FakeService) login(c echo.Context) error {
	f.mu.Lock()
	f.calls[OpLogin]++
	canned, hasCanned := f.popQueued()
	f.mu.Unlock()

	if hasCanned {
		return c.Blob(canned.status, canned.contentType, []byte(canned.body))
	}

	var req apiclient.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "Username is required",
		})
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.byUsername[req.Username]
	if !ok || f.users[id].password != req.Password {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error":   "INVALID_CREDENTIALS",
			"message": "Invalid username or password",
		})
	}
	return c.JSON(http.StatusOK, map[string]int64{"user_id": id})
}

func (f *FakeService) getUserInfo(c echo.Context) error {
	f.mu.Lock()
	f.calls[OpInfo]++
	canned, hasCanned := f.popQueued()
	f.mu.Unlock()

	if hasCanned {
		return c.Blob(canned.status, canned.contentType, []byte(canned.body))
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "user_id must be a positive integer",
		})
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error":   "USER_NOT_FOUND",
			"message": "User not found",
		})
	}
	return c.JSON(http.StatusOK, user.info)
}

func optField(raw map[string]any, key string) *string {
	if raw == nil {
		return nil
	}
	if v, ok := raw[key].(string); ok && v != "" {
		return &v
	}
	return nil
}
