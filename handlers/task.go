package handlers

import (
	"net/http"

	"github.com/Suyogg2003/Employee-task-manager/domain"
	"github.com/Suyogg2003/Employee-task-manager/services"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/trace"
)

type TaskHandler struct {
	tasks  *services.TaskService
	tracer trace.Tracer
}

func NewTaskHandler(tasks *services.TaskService, tracer trace.Tracer) *TaskHandler {
	return &TaskHandler{tasks: tasks, tracer: tracer}
}

// Create handles the manager's new-task form. The new task always
// starts at Pending.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TaskHandler.Create")
	defer span.End()

	req := &struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		AssignedTo  string `json:"assignedTo"`
	}{}

	if err := readReq(req, r, w); err != nil {
		return
	}

	if req.Title == "" || req.Description == "" || req.AssignedTo == "" {
		writeResp(errorResponse{Message: "Please include title, description, and assigned employee ID."}, http.StatusBadRequest, w)
		return
	}

	task, err := h.tasks.Create(ctx, req.Title, req.Description, req.AssignedTo, UserIDFromContext(ctx))
	if err != nil {
		writeErrorResp(err, w)
		return
	}

	writeResp(task, http.StatusCreated, w)
}

func (h *TaskHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TaskHandler.GetAll")
	defer span.End()

	tasks, err := h.tasks.GetAll(ctx)
	if err != nil {
		writeErrorResp(err, w)
		return
	}
	if tasks == nil {
		tasks = domain.Tasks{}
	}

	if err := tasks.ToJSON(w); err != nil {
		http.Error(w, "Unable to convert to json", http.StatusInternalServerError)
		return
	}
}

func (h *TaskHandler) GetMyTasks(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TaskHandler.GetMyTasks")
	defer span.End()

	tasks, err := h.tasks.GetMine(ctx, UserIDFromContext(ctx))
	if err != nil {
		writeErrorResp(err, w)
		return
	}
	if tasks == nil {
		tasks = domain.Tasks{}
	}

	if err := tasks.ToJSON(w); err != nil {
		http.Error(w, "Unable to convert to json", http.StatusInternalServerError)
		return
	}
}

// Update is the manager-only unrestricted edit path.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TaskHandler.Update")
	defer span.End()

	id := mux.Vars(r)["id"]

	req := &struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Status      string `json:"status"`
		AssignedTo  string `json:"assignedTo"`
	}{}

	if err := readReq(req, r, w); err != nil {
		return
	}

	task, err := h.tasks.Update(ctx, id, req.Title, req.Description, req.Status, req.AssignedTo)
	if err != nil {
		writeErrorResp(err, w)
		return
	}

	writeResp(task, http.StatusOK, w)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TaskHandler.Delete")
	defer span.End()

	id := mux.Vars(r)["id"]

	if err := h.tasks.Delete(ctx, id); err != nil {
		writeErrorResp(err, w)
		return
	}

	resp := struct {
		Message string `json:"message"`
		Id      string `json:"id"`
	}{Message: "Task successfully removed.", Id: id}

	writeResp(resp, http.StatusOK, w)
}

// UpdateStatus is the employee-facing endpoint: the assignee may move
// their task strictly forward through the progression. The route is
// authenticated-only, ownership is checked in the service.
func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TaskHandler.UpdateStatus")
	defer span.End()

	id := mux.Vars(r)["id"]

	req := &struct {
		NewStatus string `json:"newStatus"`
	}{}

	if err := readReq(req, r, w); err != nil {
		return
	}

	task, err := h.tasks.UpdateStatus(ctx, id, UserIDFromContext(ctx), req.NewStatus)
	if err != nil {
		writeErrorResp(err, w)
		return
	}

	writeResp(task, http.StatusOK, w)
}
