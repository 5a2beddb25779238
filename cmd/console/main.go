package main

import (
	"fmt"
	"net/http"

	"github.com/codewithgaurave/hrms-console-go/internal/config"
	appHTTP "github.com/codewithgaurave/hrms-console-go/internal/handler/http"
	"github.com/codewithgaurave/hrms-console-go/internal/location"
	"github.com/codewithgaurave/hrms-console-go/internal/pkg/hrapi"
	"github.com/codewithgaurave/hrms-console-go/internal/pkg/jwt"
	attendanceService "github.com/codewithgaurave/hrms-console-go/internal/service/attendance"
	dashboardService "github.com/codewithgaurave/hrms-console-go/internal/service/dashboard"
	payrollService "github.com/codewithgaurave/hrms-console-go/internal/service/payroll"
	punchService "github.com/codewithgaurave/hrms-console-go/internal/service/punch"
	taskService "github.com/codewithgaurave/hrms-console-go/internal/service/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	apiClient := hrapi.NewClient(cfg.Upstream)
	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	var geocoder location.Geocoder
	if cfg.Geocoder.BaseURL != "" {
		geocoder = location.NewHTTPGeocoder(cfg.Geocoder)
	}
	locations := location.NewProvider(location.ContextSource{}, geocoder)

	workflow := punchService.NewWorkflow(apiClient, locations)
	attendanceSvc := attendanceService.NewService(apiClient, workflow)
	taskSvc := taskService.NewService(apiClient)
	payrollSvc := payrollService.NewService(apiClient)
	dashboardSvc := dashboardService.NewService(apiClient, attendanceSvc, taskSvc)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, workflow, jwtService)
	taskHandler := appHTTP.NewTaskHandler(taskSvc, jwtService)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc, jwtService)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		attendanceHandler,
		taskHandler,
		payrollHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Console running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
