package handlers

import (
	"net/http"

	"github.com/Suyogg2003/Employee-task-manager/domain"
	"github.com/Suyogg2003/Employee-task-manager/services"

	"go.opentelemetry.io/otel/trace"
)

type AuthHandler struct {
	auth   *services.AuthService
	tracer trace.Tracer
}

func NewAuthHandler(auth *services.AuthService, tracer trace.Tracer) *AuthHandler {
	return &AuthHandler{auth: auth, tracer: tracer}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AuthHandler.Register")
	defer span.End()

	req := &struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}{}

	if err := readReq(req, r, w); err != nil {
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeResp(errorResponse{Message: "Please include name, email and password."}, http.StatusBadRequest, w)
		return
	}

	user, err := h.auth.Register(ctx, req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		writeErrorResp(err, w)
		return
	}

	token, err := h.auth.CreateToken(user)
	if err != nil {
		writeErrorResp(err, w)
		return
	}

	resp := struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}{Token: token, User: user}

	writeResp(resp, http.StatusCreated, w)
}

func (h *AuthHandler) LogIn(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AuthHandler.LogIn")
	defer span.End()

	req := &struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{}

	if err := readReq(req, r, w); err != nil {
		return
	}

	token, err := h.auth.LogIn(ctx, req.Email, req.Password)
	if err != nil {
		writeErrorResp(err, w)
		return
	}

	resp := struct {
		Token string `json:"token"`
	}{Token: token}

	writeResp(resp, http.StatusOK, w)
}
