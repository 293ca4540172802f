package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/task"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
)

type TaskHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	MyStats(w http.ResponseWriter, r *http.Request)
}

type TaskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &TaskHandlerImpl{taskService: taskService}
}

// Create implements TaskHandler. The assigning admin comes from the token.
func (h *TaskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq task.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.AssignedBy = principal.UserID

	t, err := h.taskService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create task failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created", t)
}

// List implements TaskHandler. Admin view with optional status, priority and
// assigned_to filters.
func (h *TaskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter task.ListFilter
	if v := r.URL.Query().Get("status"); v != "" {
		status := task.Status(v)
		if !status.IsValid() {
			response.BadRequest(w, "status must be one of pending, in_progress, completed, cancelled", nil)
			return
		}
		filter.Status = &status
	}
	if v := r.URL.Query().Get("priority"); v != "" {
		priority := task.Priority(v)
		if !priority.IsValid() {
			response.BadRequest(w, "priority must be one of low, medium, high, urgent", nil)
			return
		}
		filter.Priority = &priority
	}
	if v := r.URL.Query().Get("assigned_to"); v != "" {
		filter.AssignedTo = &v
	}

	tasks, err := h.taskService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tasks)
}

// Get implements TaskHandler.
func (h *TaskHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	t, err := h.taskService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, t)
}

// Update implements TaskHandler. Admin path: any field may change.
func (h *TaskHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq task.UpdateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	t, err := h.taskService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update task failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task updated", t)
}

// Delete implements TaskHandler.
func (h *TaskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete task failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task deleted", nil)
}

// ListMine implements TaskHandler.
func (h *TaskHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if principal.EmployeeID == nil {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	tasks, err := h.taskService.ListMine(r.Context(), *principal.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tasks)
}

// UpdateStatus implements TaskHandler. Employee path, scoped to own
// assignment.
func (h *TaskHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if principal.EmployeeID == nil {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	var statusReq task.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	statusReq.ID = chi.URLParam(r, "id")
	statusReq.EmployeeID = *principal.EmployeeID

	t, err := h.taskService.UpdateStatus(r.Context(), statusReq)
	if err != nil {
		slog.Error("Update task status failed", "task_id", statusReq.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task status updated", t)
}

// MyStats implements TaskHandler.
func (h *TaskHandlerImpl) MyStats(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if principal.EmployeeID == nil {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	stats, err := h.taskService.MyStats(r.Context(), *principal.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
