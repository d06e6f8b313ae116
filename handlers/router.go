package handlers

import (
	"net/http"

	"github.com/Suyogg2003/Employee-task-manager/domain"

	"github.com/gorilla/mux"
)

// accessTable declares, in one place, what every operation requires.
// The status route is deliberately authenticated-only: ownership, not
// role, gates it.
var accessTable = AccessTable{
	"health":             {Public: true},
	"auth.register":      {Public: true},
	"auth.login":         {Public: true},
	"users.employees":    {Role: domain.Manager},
	"users.update":       {Role: domain.Manager},
	"users.delete":       {Role: domain.Manager},
	"users.password":     {},
	"tasks.create":       {Role: domain.Manager},
	"tasks.list":         {Role: domain.Manager},
	"tasks.update":       {Role: domain.Manager},
	"tasks.delete":       {Role: domain.Manager},
	"tasks.mine":         {},
	"tasks.status":       {},
	"notifications.list": {},
	"notifications.read": {},
}

// NewRouter wires every route against the access table. main and the
// tests share this assembly.
func NewRouter(authH *AuthHandler, userH *UserHandler, taskH *TaskHandler, notifH *NotificationHandler, authMw *AuthMiddleware) *mux.Router {
	router := mux.NewRouter()
	router.Use(MiddlewareContentTypeSet)
	router.Use(authMw.Middleware)

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeResp(struct {
			Message string `json:"message"`
		}{Message: "API is running..."}, http.StatusOK, w)
	}).Methods(http.MethodGet).Name("health")

	router.HandleFunc("/api/auth/register", authH.Register).Methods(http.MethodPost).Name("auth.register")
	router.HandleFunc("/api/auth/login", authH.LogIn).Methods(http.MethodPost).Name("auth.login")

	router.HandleFunc("/api/users/employees", userH.GetEmployees).Methods(http.MethodGet).Name("users.employees")
	router.HandleFunc("/api/users/password", userH.ChangePassword).Methods(http.MethodPatch).Name("users.password")
	router.HandleFunc("/api/users/{id}", userH.Update).Methods(http.MethodPut).Name("users.update")
	router.HandleFunc("/api/users/{id}", userH.Delete).Methods(http.MethodDelete).Name("users.delete")

	router.HandleFunc("/api/tasks", taskH.Create).Methods(http.MethodPost).Name("tasks.create")
	router.HandleFunc("/api/tasks", taskH.GetAll).Methods(http.MethodGet).Name("tasks.list")
	router.HandleFunc("/api/tasks/my-tasks", taskH.GetMyTasks).Methods(http.MethodGet).Name("tasks.mine")
	router.HandleFunc("/api/tasks/{id}/status", taskH.UpdateStatus).Methods(http.MethodPut).Name("tasks.status")
	router.HandleFunc("/api/tasks/{id}", taskH.Update).Methods(http.MethodPut).Name("tasks.update")
	router.HandleFunc("/api/tasks/{id}", taskH.Delete).Methods(http.MethodDelete).Name("tasks.delete")

	router.HandleFunc("/api/notifications", notifH.GetMine).Methods(http.MethodGet).Name("notifications.list")
	router.HandleFunc("/api/notifications/read", notifH.MarkAllRead).Methods(http.MethodPatch).Name("notifications.read")

	return router
}

// DefaultAccessTable exposes the route policy table for wiring.
func DefaultAccessTable() AccessTable {
	return accessTable
}
