package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Suyogg2003/Employee-task-manager/domain"
	"github.com/Suyogg2003/Employee-task-manager/repositories"
	"github.com/Suyogg2003/Employee-task-manager/services"

	"go.opentelemetry.io/otel"
)

type testApp struct {
	server *httptest.Server
	client *http.Client
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	tracer := otel.Tracer("test")
	logger := log.New(io.Discard, "", 0)

	taskRepo := repositories.NewTaskInMem()
	userRepo := repositories.NewUserInMem()
	notifRepo := repositories.NewNotificationInMem()

	notificationService := services.NewNotificationService(notifRepo, logger, tracer)
	authService := services.NewAuthService(userRepo, []byte("test-secret"), tracer)
	userService := services.NewUserService(userRepo, tracer)
	taskService := services.NewTaskService(taskRepo, notificationService, tracer)

	router := NewRouter(
		NewAuthHandler(authService, tracer),
		NewUserHandler(userService, authService, tracer),
		NewTaskHandler(taskService, tracer),
		NewNotificationHandler(notificationService, tracer),
		NewAuthMiddleware(authService, DefaultAccessTable()),
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{server: server, client: server.Client()}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, a.server.URL+path, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, data
}

// register creates an account through the API and returns its token and id.
func (a *testApp) register(t *testing.T, name, email, role string) (token, id string) {
	t.Helper()

	resp, data := a.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "hunter22",
		"role":     role,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", email, resp.StatusCode, data)
	}

	var payload struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("unmarshal register response: %v", err)
	}
	return payload.Token, payload.User.Id.Hex()
}

func decodeTask(t *testing.T, data []byte) domain.Task {
	t.Helper()
	var task domain.Task
	if err := json.Unmarshal(data, &task); err != nil {
		t.Fatalf("unmarshal task: %v; body=%s", err, data)
	}
	return task
}

func TestStatusEndpointFlow(t *testing.T) {
	app := newTestApp(t)

	managerToken, _ := app.register(t, "Mona", "mona@example.com", "Manager")
	employeeToken, employeeID := app.register(t, "Evan", "evan@example.com", "Employee")
	otherToken, _ := app.register(t, "Olga", "olga@example.com", "Employee")

	// Manager creates a task for Evan; it starts at Pending.
	resp, data := app.do(t, http.MethodPost, "/api/tasks", managerToken, map[string]string{
		"title":       "Ship release notes",
		"description": "Draft and publish",
		"assignedTo":  employeeID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create task: status %d, body %s", resp.StatusCode, data)
	}
	task := decodeTask(t, data)
	if task.Status != domain.Pending {
		t.Fatalf("new task status = %s, want Pending", task.Status)
	}
	taskPath := "/api/tasks/" + task.Id.Hex() + "/status"

	// A different employee may not touch it.
	resp, _ = app.do(t, http.MethodPut, taskPath, otherToken, map[string]string{"newStatus": "In Progress"})
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("non-owner: status %d, want 403", resp.StatusCode)
	}

	// Unauthenticated calls are rejected before any read.
	resp, _ = app.do(t, http.MethodPut, taskPath, "", map[string]string{"newStatus": "In Progress"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("no token: status %d, want 401", resp.StatusCode)
	}

	// The owner advances it.
	resp, data = app.do(t, http.MethodPut, taskPath, employeeToken, map[string]string{"newStatus": "In Progress"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("advance: status %d, body %s", resp.StatusCode, data)
	}
	if got := decodeTask(t, data).Status; got != domain.InProgress {
		t.Fatalf("status = %s, want In Progress", got)
	}

	// Backward is rejected and the message names both statuses.
	resp, data = app.do(t, http.MethodPut, taskPath, employeeToken, map[string]string{"newStatus": "Pending"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("backward: status %d, want 400", resp.StatusCode)
	}
	var errPayload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &errPayload); err != nil {
		t.Fatalf("unmarshal error payload: %v", err)
	}
	if !bytes.Contains([]byte(errPayload.Message), []byte("In Progress")) ||
		!bytes.Contains([]byte(errPayload.Message), []byte("Pending")) {
		t.Errorf("backward error %q does not name both statuses", errPayload.Message)
	}

	// Unknown literals are rejected against the closed set.
	resp, _ = app.do(t, http.MethodPut, taskPath, employeeToken, map[string]string{"newStatus": "Archived"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown literal: status %d, want 400", resp.StatusCode)
	}

	// Complete it, then resubmit Completed: tolerated no-op.
	resp, _ = app.do(t, http.MethodPut, taskPath, employeeToken, map[string]string{"newStatus": "Completed"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("complete: status %d", resp.StatusCode)
	}
	resp, data = app.do(t, http.MethodPut, taskPath, employeeToken, map[string]string{"newStatus": "Completed"})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("repeat Completed: status %d, want 200", resp.StatusCode)
	}
	if got := decodeTask(t, data).Status; got != domain.Completed {
		t.Errorf("status = %s, want Completed", got)
	}

	// Missing task id shaped like an ObjectID: 404. Malformed id: 400.
	resp, _ = app.do(t, http.MethodPut, "/api/tasks/64a000000000000000000000/status", employeeToken, map[string]string{"newStatus": "Completed"})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing task: status %d, want 404", resp.StatusCode)
	}
	resp, _ = app.do(t, http.MethodPut, "/api/tasks/garbage/status", employeeToken, map[string]string{"newStatus": "Completed"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("malformed id: status %d, want 400", resp.StatusCode)
	}
}

func TestRoleGatedRoutes(t *testing.T) {
	app := newTestApp(t)

	managerToken, _ := app.register(t, "Mona", "mona@example.com", "Manager")
	employeeToken, employeeID := app.register(t, "Evan", "evan@example.com", "Employee")

	// Employees cannot reach manager-only routes.
	resp, _ := app.do(t, http.MethodGet, "/api/tasks", employeeToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("employee lists all tasks: status %d, want 403", resp.StatusCode)
	}
	resp, _ = app.do(t, http.MethodGet, "/api/users/employees", employeeToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("employee lists employees: status %d, want 403", resp.StatusCode)
	}

	// Managers can.
	resp, data := app.do(t, http.MethodGet, "/api/users/employees", managerToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("manager lists employees: status %d", resp.StatusCode)
	}
	var employees domain.Users
	if err := json.Unmarshal(data, &employees); err != nil {
		t.Fatalf("unmarshal employees: %v", err)
	}
	if len(employees) != 1 || employees[0].Id.Hex() != employeeID {
		t.Errorf("employees = %v, want exactly Evan", employees)
	}

	// The full-edit path stays manager-only even for the assignee.
	resp, data = app.do(t, http.MethodPost, "/api/tasks", managerToken, map[string]string{
		"title":       "Audit access logs",
		"description": "Quarterly review",
		"assignedTo":  employeeID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create task: status %d", resp.StatusCode)
	}
	task := decodeTask(t, data)

	resp, _ = app.do(t, http.MethodPut, "/api/tasks/"+task.Id.Hex(), employeeToken, map[string]string{"title": "renamed"})
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("employee full edit: status %d, want 403", resp.StatusCode)
	}
}

func TestManagerHasNoOwnershipBypassOnStatusRoute(t *testing.T) {
	app := newTestApp(t)

	managerToken, _ := app.register(t, "Mona", "mona@example.com", "Manager")
	_, employeeID := app.register(t, "Evan", "evan@example.com", "Employee")

	resp, data := app.do(t, http.MethodPost, "/api/tasks", managerToken, map[string]string{
		"title":       "Prepare demo",
		"description": "Friday showcase",
		"assignedTo":  employeeID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create task: status %d", resp.StatusCode)
	}
	task := decodeTask(t, data)

	// Ownership, not role, gates the status route: the manager who
	// created the task is not its assignee.
	resp, _ = app.do(t, http.MethodPut, "/api/tasks/"+task.Id.Hex()+"/status", managerToken, map[string]string{"newStatus": "In Progress"})
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("manager status change on foreign task: status %d, want 403", resp.StatusCode)
	}
}

func TestNotificationsFeed(t *testing.T) {
	app := newTestApp(t)

	managerToken, _ := app.register(t, "Mona", "mona@example.com", "Manager")
	employeeToken, employeeID := app.register(t, "Evan", "evan@example.com", "Employee")

	resp, _ := app.do(t, http.MethodPost, "/api/tasks", managerToken, map[string]string{
		"title":       "Refresh onboarding docs",
		"description": "New starter next week",
		"assignedTo":  employeeID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create task: status %d", resp.StatusCode)
	}

	resp, data := app.do(t, http.MethodGet, "/api/notifications", employeeToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list notifications: status %d", resp.StatusCode)
	}
	var notifications []domain.Notification
	if err := json.Unmarshal(data, &notifications); err != nil {
		t.Fatalf("unmarshal notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifications))
	}
	if notifications[0].IsRead {
		t.Errorf("fresh notification already read")
	}

	resp, _ = app.do(t, http.MethodPatch, "/api/notifications/read", employeeToken, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("mark read: status %d", resp.StatusCode)
	}

	_, data = app.do(t, http.MethodGet, "/api/notifications", employeeToken, nil)
	if err := json.Unmarshal(data, &notifications); err != nil {
		t.Fatalf("unmarshal notifications: %v", err)
	}
	if len(notifications) != 1 || !notifications[0].IsRead {
		t.Errorf("notifications after mark read = %+v, want one read entry", notifications)
	}
}

func TestLoginAndPasswordChange(t *testing.T) {
	app := newTestApp(t)

	token, _ := app.register(t, "Evan", "evan@example.com", "Employee")

	resp, _ := app.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "evan@example.com",
		"password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("bad password login: status %d, want 401", resp.StatusCode)
	}

	resp, _ = app.do(t, http.MethodPatch, "/api/users/password", token, map[string]string{
		"oldPassword": "hunter22",
		"newPassword": "correct horse",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("change password: status %d", resp.StatusCode)
	}

	resp, _ = app.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "evan@example.com",
		"password": "correct horse",
	})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("login with new password: status %d, want 200", resp.StatusCode)
	}
}
