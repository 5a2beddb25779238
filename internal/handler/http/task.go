package http

import (
	"encoding/json"
	"net/http"

	"github.com/codewithgaurave/hrms-console-go/internal/domain/task"
	"github.com/codewithgaurave/hrms-console-go/internal/handler/http/response"
	"github.com/codewithgaurave/hrms-console-go/internal/pkg/jwt"
	taskService "github.com/codewithgaurave/hrms-console-go/internal/service/task"
	"github.com/go-chi/chi/v5"
)

type TaskHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskService *taskService.Service
	jwtService  jwt.Service
}

func NewTaskHandler(service *taskService.Service, jwtService jwt.Service) TaskHandler {
	return &taskHandlerImpl{
		taskService: service,
		jwtService:  jwtService,
	}
}

// List implements TaskHandler.
func (h *taskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := taskFilterFromQuery(r)

	result, err := h.taskService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// My implements TaskHandler.
func (h *taskHandlerImpl) My(w http.ResponseWriter, r *http.Request) {
	filter := taskFilterFromQuery(r)

	result, err := h.taskService.My(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// UpdateStatus implements TaskHandler.
func (h *taskHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req task.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "taskID")

	result, err := h.taskService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Task status updated", result)
}

// Review implements TaskHandler.
func (h *taskHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	identity, err := h.jwtService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req task.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "taskID")

	result, err := h.taskService.Review(r.Context(), identity, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Task reviewed", result)
}

func taskFilterFromQuery(r *http.Request) task.ListFilter {
	q := r.URL.Query()
	return task.ListFilter{
		Search:     optional(q.Get("search")),
		Status:     optional(q.Get("status")),
		Priority:   optional(q.Get("priority")),
		AssignedTo: optional(q.Get("assignedTo")),
		Page:       atoiOrZero(q.Get("page")),
		Limit:      atoiOrZero(q.Get("limit")),
		SortBy:     q.Get("sortBy"),
		SortOrder:  q.Get("sortOrder"),
	}
}
