package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	ApprovedDays(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Apply implements LeaveHandler. The employee id comes from the token, not
// the body.
func (h *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if principal.EmployeeID == nil {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	var applyReq leave.ApplyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&applyReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	applyReq.EmployeeID = *principal.EmployeeID

	lr, err := h.leaveService.Apply(r.Context(), applyReq)
	if err != nil {
		slog.Error("Apply leave failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", lr)
}

// ListMine implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if principal.EmployeeID == nil {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	requests, err := h.leaveService.ListMine(r.Context(), *principal.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// List implements LeaveHandler. Admin view of all requests, with an optional
// status filter.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter leave.ListFilter
	if v := r.URL.Query().Get("status"); v != "" {
		status := leave.Status(v)
		if !status.IsValid() {
			response.BadRequest(w, "status must be one of pending, approved, rejected", nil)
			return
		}
		filter.Status = &status
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}

	requests, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.leaveService.Approve(r.Context(), id); err != nil {
		slog.Error("Approve leave failed", "leave_request_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", nil)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.leaveService.Reject(r.Context(), id); err != nil {
		slog.Error("Reject leave failed", "leave_request_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", nil)
}

// ApprovedDays implements LeaveHandler. The month parameter is zero-based
// (0 = January).
func (h *LeaveHandlerImpl) ApprovedDays(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "month must be an integer between 0 and 11", nil)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be a four-digit integer", nil)
		return
	}

	total, breakdown, err := h.leaveService.ApprovedDaysInMonth(r.Context(), id, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"total_leave_days": total,
		"breakdown":        breakdown,
	})
}
