package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/codewithgaurave/hrms-console-go/internal/config"
	"github.com/codewithgaurave/hrms-console-go/internal/domain/user"
	"github.com/codewithgaurave/hrms-console-go/internal/location"
	"github.com/codewithgaurave/hrms-console-go/internal/pkg/hrapi"
	"github.com/codewithgaurave/hrms-console-go/internal/pkg/jwt"
	attendanceService "github.com/codewithgaurave/hrms-console-go/internal/service/attendance"
	dashboardService "github.com/codewithgaurave/hrms-console-go/internal/service/dashboard"
	payrollService "github.com/codewithgaurave/hrms-console-go/internal/service/payroll"
	punchService "github.com/codewithgaurave/hrms-console-go/internal/service/punch"
	taskService "github.com/codewithgaurave/hrms-console-go/internal/service/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

// newTestGateway wires the full router against a stub HR backend.
func newTestGateway(t *testing.T, upstream http.HandlerFunc) (*httptest.Server, jwt.Service) {
	t.Helper()

	backend := httptest.NewServer(upstream)
	t.Cleanup(backend.Close)

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.FrontendURL = "http://localhost:3000"
	cfg.Upstream = config.UpstreamConfig{BaseURL: backend.URL, Timeout: 5 * time.Second}

	apiClient := hrapi.NewClient(cfg.Upstream)
	jwtService := jwt.NewJWTService(handlerTestSecret)
	locations := location.NewProvider(location.ContextSource{}, nil)

	workflow := punchService.NewWorkflow(apiClient, locations)
	attendanceSvc := attendanceService.NewService(apiClient, workflow)
	taskSvc := taskService.NewService(apiClient)
	payrollSvc := payrollService.NewService(apiClient)
	dashboardSvc := dashboardService.NewService(apiClient, attendanceSvc, taskSvc)

	router := NewRouter(
		cfg,
		jwtService,
		NewAttendanceHandler(attendanceSvc, workflow, jwtService),
		NewTaskHandler(taskSvc, jwtService),
		NewPayrollHandler(payrollSvc),
		NewDashboardHandler(dashboardSvc, jwtService),
	)

	gateway := httptest.NewServer(router)
	t.Cleanup(gateway.Close)
	return gateway, jwtService
}

func accessToken(t *testing.T, jwtService jwt.Service, employeeID string, role user.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken(employeeID, role, time.Hour)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func okEnvelope(data any) map[string]any {
	return map[string]any{"success": true, "data": data}
}

func TestRouter_RejectsMissingToken(t *testing.T) {
	gateway, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be reached without a token")
	})

	resp := doRequest(t, http.MethodGet, gateway.URL+"/api/v1/attendance/today", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_EmployeeCannotReachManagerRoutes(t *testing.T) {
	gateway, jwtService := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be reached for a forbidden route")
	})
	token := accessToken(t, jwtService, "emp-1", user.RoleEmployee)

	resp := doRequest(t, http.MethodGet, gateway.URL+"/api/v1/attendance/", token, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRouter_TodayForwardsTokenUpstream(t *testing.T) {
	var gotAuth string
	gateway, jwtService := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/attendance/today", r.URL.Path)
		json.NewEncoder(w).Encode(okEnvelope(map[string]any{
			"employee_id": "emp-1",
			"date":        time.Now().Format("2006-01-02"),
			"status":      "Present",
			"punch_in":    map[string]any{"timestamp": time.Now().Format(time.RFC3339)},
		}))
	})
	token := accessToken(t, jwtService, "emp-1", user.RoleEmployee)

	resp := doRequest(t, http.MethodGet, gateway.URL+"/api/v1/attendance/today", token, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bearer "+token, gotAuth)

	var payload struct {
		Success bool `json:"success"`
		Data    struct {
			State string `json:"state"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.True(t, payload.Success)
	assert.Equal(t, "punched_in", payload.Data.State)
}

func TestRouter_PunchInWithForwardedFix(t *testing.T) {
	var gotCoords map[string]any
	gateway, jwtService := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/attendance/punch-in", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotCoords, _ = body["coordinates"].(map[string]any)
		json.NewEncoder(w).Encode(okEnvelope(map[string]any{
			"employee_id": "emp-1",
			"date":        time.Now().Format("2006-01-02"),
			"status":      "Present",
			"punch_in":    map[string]any{"timestamp": time.Now().Format(time.RFC3339)},
		}))
	})
	token := accessToken(t, jwtService, "emp-1", user.RoleEmployee)

	resp := doRequest(t, http.MethodPost, gateway.URL+"/api/v1/attendance/punch-in", token, map[string]any{
		"fix": map[string]any{"latitude": 12.9716, "longitude": 77.5946, "accuracy_meters": 8.0},
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, gotCoords)
	assert.Equal(t, 12.9716, gotCoords["latitude"])
}

func TestRouter_PunchInLocationDeniedNeverReachesUpstream(t *testing.T) {
	gateway, jwtService := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("a punch without a fix must not reach the backend")
	})
	token := accessToken(t, jwtService, "emp-1", user.RoleEmployee)

	resp := doRequest(t, http.MethodPost, gateway.URL+"/api/v1/attendance/punch-in", token, map[string]any{
		"error_code": "PERMISSION_DENIED",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_HRPunchRequiresManagerRole(t *testing.T) {
	var upstreamPath string
	gateway, jwtService := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		upstreamPath = r.URL.Path
		json.NewEncoder(w).Encode(okEnvelope(map[string]any{
			"employee_id": "emp-2",
			"date":        time.Now().Format("2006-01-02"),
			"status":      "Present",
			"punch_in":    map[string]any{"timestamp": time.Now().Format(time.RFC3339)},
		}))
	})

	employee := accessToken(t, jwtService, "emp-1", user.RoleEmployee)
	resp := doRequest(t, http.MethodPost, gateway.URL+"/api/v1/attendance/emp-2/punch-in/by-hr", employee, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	manager := accessToken(t, jwtService, "mgr-1", user.RoleManager)
	resp = doRequest(t, http.MethodPost, gateway.URL+"/api/v1/attendance/emp-2/punch-in/by-hr", manager, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/attendance/emp-2/punch-in/by-hr", upstreamPath)
}

func TestRouter_UpstreamRejectionSurfacedVerbatim(t *testing.T) {
	gateway, jwtService := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   map[string]any{"code": "ALREADY_PUNCHED", "message": "Already punched in at 09:02"},
		})
	})
	token := accessToken(t, jwtService, "emp-1", user.RoleEmployee)

	resp := doRequest(t, http.MethodPost, gateway.URL+"/api/v1/attendance/punch-in", token, map[string]any{
		"fix": map[string]any{"latitude": 1.0, "longitude": 2.0},
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusConflict, resp.StatusCode)
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "Already punched in at 09:02", payload.Error.Message)
}

func TestRouter_TaskReviewRouteIsManagerOnly(t *testing.T) {
	gateway, jwtService := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tasks/t-1/review", r.URL.Path)
		json.NewEncoder(w).Encode(okEnvelope(map[string]any{"id": "t-1", "status": "Approved"}))
	})

	employee := accessToken(t, jwtService, "emp-1", user.RoleEmployee)
	resp := doRequest(t, http.MethodPut, gateway.URL+"/api/v1/tasks/t-1/review", employee, map[string]any{"verdict": "approve"})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	hr := accessToken(t, jwtService, "hr-1", user.RoleHR)
	resp = doRequest(t, http.MethodPut, gateway.URL+"/api/v1/tasks/t-1/review", hr, map[string]any{"verdict": "approve"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_ValidationErrorsReturn422(t *testing.T) {
	gateway, jwtService := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be reached on invalid input")
	})
	token := accessToken(t, jwtService, "mgr-1", user.RoleManager)

	url := fmt.Sprintf("%s/api/v1/attendance/?status=Imaginary", gateway.URL)
	resp := doRequest(t, http.MethodGet, url, token, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestRouter_PunchInRejectsOutOfRangeFix(t *testing.T) {
	gateway, jwtService := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("an out-of-range fix must not reach the backend")
	})
	token := accessToken(t, jwtService, "emp-1", user.RoleEmployee)

	resp := doRequest(t, http.MethodPost, gateway.URL+"/api/v1/attendance/punch-in", token, map[string]any{
		"fix": map[string]any{"latitude": 999.0, "longitude": 77.5946},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var payload struct {
		Error struct {
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Contains(t, payload.Error.Details, "fix.latitude")
}

func TestRouter_HRPunchChunkedBodyKeepsManualTime(t *testing.T) {
	var gotTime string
	gateway, jwtService := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotTime, _ = body["punchInTime"].(string)
		json.NewEncoder(w).Encode(okEnvelope(map[string]any{
			"employee_id": "emp-2",
			"date":        time.Now().Format("2006-01-02"),
			"status":      "Present",
			"punch_in":    map[string]any{"timestamp": time.Now().Format(time.RFC3339)},
		}))
	})
	manager := accessToken(t, jwtService, "mgr-1", user.RoleManager)

	// Wrapping the reader hides its length, so the request goes out with
	// Transfer-Encoding chunked and no Content-Length.
	body := io.MultiReader(strings.NewReader(`{"time":"2024-06-10T09:00:00Z"}`))
	req, err := http.NewRequest(http.MethodPost, gateway.URL+"/api/v1/attendance/emp-2/punch-in/by-hr", body)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+manager)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2024-06-10T09:00:00Z", gotTime)
}
