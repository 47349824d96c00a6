package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"civicreport-be/controllers"
	"civicreport-be/models"
	"civicreport-be/services"
	"civicreport-be/store/mocks"
	authUtils "civicreport-be/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const secret = "router-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	issues := mocks.NewMockIssueStore(ctrl)
	users := mocks.NewMockUserStore(ctrl)
	images := mocks.NewMockImageStore(ctrl)

	return SetupRouter(Handlers{
		Auth: controllers.NewAuthController(users, secret, controllers.CookieSettings{}),
		Issues: controllers.NewIssueController(controllers.IssueControllerDeps{
			Issues:   issues,
			Users:    users,
			Images:   images,
			Reports:  services.NewReportService(issues, images, nil, ""),
			Nearby:   services.NewNearbyService(issues, 10),
			Analyzer: services.NewImageAnalyzer("", "claude-sonnet-4-5"),
		}),
		Locations: controllers.NewLocationController(services.NewGeocoder("http://127.0.0.1:1", "test", time.Second)),
		Analytics: controllers.NewAnalyticsController(services.NewAnalyticsService(issues, nil, time.Minute, 10)),
	}, Options{Origins: []string{"http://localhost:3000"}, JWTSecret: secret})
}

func serve(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPingAndMetrics(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")

	w = serve(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestStaticRoutesBeatIssueID(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, http.MethodGet, "/api/v1/issues/categories", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/api/v1/issues/location/districts", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutes(t *testing.T) {
	r := newTestRouter(t)
	citizen, err := authUtils.GenerateToken(secret, "citizen-1", models.RoleCitizen)
	require.NoError(t, err)

	tests := []struct {
		method, path, token string
		want                int
	}{
		{http.MethodPut, "/api/v1/issues/65a1f0c2e4b0a1b2c3d4e5f6/update", "", http.StatusUnauthorized},
		{http.MethodPut, "/api/v1/issues/65a1f0c2e4b0a1b2c3d4e5f6/update", citizen, http.StatusForbidden},
		{http.MethodPost, "/api/v1/issues/create-authority-officer", citizen, http.StatusForbidden},
		{http.MethodPost, "/api/v1/issues/65a1f0c2e4b0a1b2c3d4e5f6/feedback", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/issues/my-reports/citizen-1", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/auth/me", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		w := serve(r, tt.method, tt.path, tt.token)
		assert.Equal(t, tt.want, w.Code, tt.method+" "+tt.path)
	}
}
