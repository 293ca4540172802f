package http

import (
	"net/http"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/summary"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
)

type SummaryHandler interface {
	EmployeeSummary(w http.ResponseWriter, r *http.Request)
	AdminSummary(w http.ResponseWriter, r *http.Request)
}

type SummaryHandlerImpl struct {
	summaryService summary.SummaryService
}

func NewSummaryHandler(summaryService summary.SummaryService) SummaryHandler {
	return &SummaryHandlerImpl{summaryService: summaryService}
}

// EmployeeSummary implements SummaryHandler. The snapshot is always for the
// authenticated employee.
func (h *SummaryHandlerImpl) EmployeeSummary(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if principal.EmployeeID == nil {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	s, err := h.summaryService.EmployeeSummary(r.Context(), *principal.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, s)
}

// AdminSummary implements SummaryHandler.
func (h *SummaryHandlerImpl) AdminSummary(w http.ResponseWriter, r *http.Request) {
	s, err := h.summaryService.AdminSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, s)
}
