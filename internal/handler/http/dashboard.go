package http

import (
	"net/http"

	"github.com/codewithgaurave/hrms-console-go/internal/handler/http/response"
	"github.com/codewithgaurave/hrms-console-go/internal/pkg/jwt"
	dashboardService "github.com/codewithgaurave/hrms-console-go/internal/service/dashboard"
)

type DashboardHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService *dashboardService.Service
	jwtService       jwt.Service
}

func NewDashboardHandler(service *dashboardService.Service, jwtService jwt.Service) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: service,
		jwtService:       jwtService,
	}
}

// Overview implements DashboardHandler.
func (h *dashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	identity, err := h.jwtService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.Overview(r.Context(), identity)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
