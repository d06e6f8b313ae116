package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Suyogg2003/Employee-task-manager/domain"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeErrorResp(err error, w http.ResponseWriter) {
	if err == nil {
		return
	}

	var status int
	switch {
	case errors.Is(err, domain.ErrUnauthenticated()),
		errors.Is(err, domain.ErrInvalidToken()),
		errors.Is(err, domain.ErrInvalidCredentials()):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden()) || errors.Is(err, domain.ErrNotTaskOwner()):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrTaskNotFound()) || errors.Is(err, domain.ErrUserNotFound()):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrStatusConflict()):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrUserAlreadyExists()):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidID()),
		errors.Is(err, domain.ErrInvalidRole()),
		domain.IsInvalidStatus(err),
		domain.IsInvalidTransition(err):
		status = http.StatusBadRequest
	default:
		log.Printf("Unexpected error: %v", err)
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(errorResponse{Message: err.Error()}); encodeErr != nil {
		log.Printf("Error writing response: %v", encodeErr)
	}
}

func writeResp(resp any, statusCode int, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if resp == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func readReq(req any, r *http.Request, w http.ResponseWriter) error {
	err := json.NewDecoder(r.Body).Decode(req)
	if err != nil {
		writeResp(errorResponse{Message: "unable to decode request body"}, http.StatusBadRequest, w)
	}
	return err
}
