package handlers

import (
	"net/http"

	"github.com/Suyogg2003/Employee-task-manager/domain"
	"github.com/Suyogg2003/Employee-task-manager/services"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/trace"
)

type UserHandler struct {
	users  *services.UserService
	auth   *services.AuthService
	tracer trace.Tracer
}

func NewUserHandler(users *services.UserService, auth *services.AuthService, tracer trace.Tracer) *UserHandler {
	return &UserHandler{users: users, auth: auth, tracer: tracer}
}

func (h *UserHandler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandler.GetEmployees")
	defer span.End()

	employees, err := h.users.GetEmployees(ctx)
	if err != nil {
		writeErrorResp(err, w)
		return
	}
	if employees == nil {
		employees = domain.Users{}
	}

	if err := employees.ToJSON(w); err != nil {
		http.Error(w, "Unable to convert to json", http.StatusInternalServerError)
		return
	}
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandler.Update")
	defer span.End()

	id := mux.Vars(r)["id"]

	req := &struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{}

	if err := readReq(req, r, w); err != nil {
		return
	}

	if req.Password != "" {
		writeResp(errorResponse{Message: "Use the separate /api/users/password route for password changes."}, http.StatusBadRequest, w)
		return
	}

	user, err := h.users.Update(ctx, id, req.Name, req.Email)
	if err != nil {
		writeErrorResp(err, w)
		return
	}

	writeResp(user, http.StatusOK, w)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandler.Delete")
	defer span.End()

	id := mux.Vars(r)["id"]

	if err := h.users.Delete(ctx, id); err != nil {
		writeErrorResp(err, w)
		return
	}

	resp := struct {
		Message string `json:"message"`
		Id      string `json:"id"`
	}{Message: "User successfully deleted.", Id: id}

	writeResp(resp, http.StatusOK, w)
}

// ChangePassword lets the authenticated user rotate their own password.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandler.ChangePassword")
	defer span.End()

	req := &struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}{}

	if err := readReq(req, r, w); err != nil {
		return
	}

	if req.NewPassword == "" {
		writeResp(errorResponse{Message: "New password is required."}, http.StatusBadRequest, w)
		return
	}

	if err := h.auth.ChangePassword(ctx, UserIDFromContext(ctx), req.OldPassword, req.NewPassword); err != nil {
		writeErrorResp(err, w)
		return
	}

	writeResp(struct {
		Message string `json:"message"`
	}{Message: "Password updated."}, http.StatusOK, w)
}
