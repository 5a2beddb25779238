package http

import (
	"net/http"

	"github.com/codewithgaurave/hrms-console-go/internal/handler/http/response"
	payrollService "github.com/codewithgaurave/hrms-console-go/internal/service/payroll"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	MySlips(w http.ResponseWriter, r *http.Request)
	Slip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService *payrollService.Service
}

func NewPayrollHandler(service *payrollService.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: service}
}

// MySlips implements PayrollHandler.
func (h *payrollHandlerImpl) MySlips(w http.ResponseWriter, r *http.Request) {
	year := atoiOrZero(r.URL.Query().Get("year"))

	result, err := h.payrollService.MySlips(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Slip implements PayrollHandler.
func (h *payrollHandlerImpl) Slip(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.Slip(r.Context(), chi.URLParam(r, "slipID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
