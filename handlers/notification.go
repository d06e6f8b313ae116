package handlers

import (
	"net/http"

	"github.com/Suyogg2003/Employee-task-manager/domain"
	"github.com/Suyogg2003/Employee-task-manager/services"

	"go.opentelemetry.io/otel/trace"
)

type NotificationHandler struct {
	notifications *services.NotificationService
	tracer        trace.Tracer
}

func NewNotificationHandler(notifications *services.NotificationService, tracer trace.Tracer) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, tracer: tracer}
}

func (h *NotificationHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "NotificationHandler.GetMine")
	defer span.End()

	notifications, err := h.notifications.GetAllByUserID(ctx, UserIDFromContext(ctx))
	if err != nil {
		writeErrorResp(err, w)
		return
	}

	if notifications == nil {
		notifications = []domain.Notification{}
	}
	writeResp(notifications, http.StatusOK, w)
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "NotificationHandler.MarkAllRead")
	defer span.End()

	if err := h.notifications.MarkAllAsRead(ctx, UserIDFromContext(ctx)); err != nil {
		writeErrorResp(err, w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
