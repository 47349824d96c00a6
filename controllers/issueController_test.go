package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"civicreport-be/apperrors"
	"civicreport-be/models"
	"civicreport-be/services"
	"civicreport-be/store"
	"civicreport-be/store/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

const issueHex = "65a1f0c2e4b0a1b2c3d4e5f6"

type stubAnalyzer struct {
	mediaType string
	location  string
	err       error
}

func (s *stubAnalyzer) Analyze(_ context.Context, image []byte, mediaType, location string) (*models.AIAnalysis, error) {
	s.mediaType, s.location = mediaType, location
	if s.err != nil {
		return nil, s.err
	}
	return &models.AIAnalysis{DetectedIssue: "Pothole", Category: models.Roads, SeverityLevel: 3, ConfidenceScore: 0.9}, nil
}

type countingInvalidator struct{ calls int }

func (c *countingInvalidator) Invalidate(context.Context) { c.calls++ }

type issueFixture struct {
	issues    *mocks.MockIssueStore
	users     *mocks.MockUserStore
	images    *mocks.MockImageStore
	analyzer  *stubAnalyzer
	analytics *countingInvalidator
	router    *gin.Engine
}

func newIssueFixture(t *testing.T, userID string) *issueFixture {
	ctrl := gomock.NewController(t)
	f := &issueFixture{
		issues:    mocks.NewMockIssueStore(ctrl),
		users:     mocks.NewMockUserStore(ctrl),
		images:    mocks.NewMockImageStore(ctrl),
		analyzer:  &stubAnalyzer{},
		analytics: &countingInvalidator{},
	}
	ic := NewIssueController(IssueControllerDeps{
		Issues:    f.issues,
		Users:     f.users,
		Images:    f.images,
		Reports:   services.NewReportService(f.issues, f.images, nil, "/api/v1/issues/images"),
		Nearby:    services.NewNearbyService(f.issues, 1000),
		Analyzer:  f.analyzer,
		Analytics: f.analytics,
	})

	r := gin.New()
	r.Use(withUser(userID))
	r.POST("/issues/report", ic.ReportIssue)
	r.GET("/issues/my-reports/:user_id", ic.GetMyReports)
	r.GET("/issues/categories", ic.GetCategories)
	r.GET("/issues/authorities", ic.GetAuthorities)
	r.POST("/issues/nearby", ic.GetNearbyIssues)
	r.GET("/issues/all", ic.GetAllIssues)
	r.POST("/issues/analyze-image", ic.AnalyzeImage)
	r.GET("/issues/images/:image_id", ic.GetImage)
	r.POST("/issues/create-authority-officer", ic.CreateAuthorityOfficer)
	r.GET("/issues/:issue_id", ic.GetIssue)
	r.GET("/issues/:issue_id/status", ic.GetIssueStatus)
	r.PUT("/issues/:issue_id/update", ic.UpdateIssueStatus)
	r.POST("/issues/:issue_id/feedback", ic.SubmitFeedback)
	f.router = r
	return f
}

func TestReportIssueWithImage(t *testing.T) {
	f := newIssueFixture(t, "")
	f.issues.EXPECT().FetchAuthorities(gomock.Any(), models.Roads).Return(nil, nil)
	f.images.EXPECT().SaveImage(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, name string, src io.Reader) (string, error) {
			data, err := io.ReadAll(src)
			require.NoError(t, err)
			assert.Equal(t, "fake jpeg", string(data))
			assert.True(t, strings.HasSuffix(name, ".jpg"))
			return issueHex, nil
		})
	f.issues.EXPECT().InsertIssue(gomock.Any(), gomock.Any()).Return(nil)

	body, contentType := multipartForm(t, map[string]string{
		"category":       "Roads",
		"description":    "Deep pothole near the junction",
		"location":       "Galle Road, Kollupitiya",
		"user_id":        "citizen-1",
		"severity_level": "3",
		"latitude":       "6.9089",
		"longitude":      "79.8564",
		"ai_analysis":    "not json",
	}, []byte("fake jpeg"), "image/jpeg")

	w := perform(f.router, http.MethodPost, "/issues/report", body, contentType)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	issue := decode(t, w)["issue"].(map[string]any)
	assert.Equal(t, "roads", issue["category"])
	assert.Equal(t, "Roads Issue", issue["title"])
	assert.Equal(t, "citizen-1", issue["user_id"])
	assert.Equal(t, float64(3), issue["severity_level"])
	assert.Equal(t, "/api/v1/issues/images/"+issueHex, issue["image_url"])
	assert.Regexp(t, `^ISS[0-9A-F]{6}$`, issue["booking_reference"])
	assert.Equal(t, "not json", issue["ai_analysis"].(map[string]any)["raw_analysis"])
	assert.Equal(t, 1, f.analytics.calls)
}

func TestReportIssuePrefersAuthenticatedUser(t *testing.T) {
	f := newIssueFixture(t, "token-user")
	f.issues.EXPECT().FetchAuthorities(gomock.Any(), models.Waste).Return(nil, nil)
	f.issues.EXPECT().InsertIssue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, issue *models.Issue) error {
			assert.Equal(t, "token-user", issue.UserID)
			return nil
		})

	body, contentType := multipartForm(t, map[string]string{
		"category":    "waste",
		"description": "Bins overflowing",
		"location":    "Dehiwala",
		"user_id":     "someone-else",
	}, nil, "")

	w := perform(f.router, http.MethodPost, "/issues/report", body, contentType)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestReportIssueValidation(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		image  []byte
		ctype  string
	}{
		{
			name:   "unknown category",
			fields: map[string]string{"category": "parks", "description": "d", "location": "l", "user_id": "u"},
		},
		{
			name:   "missing description",
			fields: map[string]string{"category": "roads", "location": "l", "user_id": "u"},
		},
		{
			name:   "latitude without longitude",
			fields: map[string]string{"category": "roads", "description": "d", "location": "l", "user_id": "u", "latitude": "6.9"},
		},
		{
			name:   "non-image upload",
			fields: map[string]string{"category": "roads", "description": "d", "location": "l", "user_id": "u"},
			image:  []byte("%PDF-1.4"),
			ctype:  "application/pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newIssueFixture(t, "")
			body, contentType := multipartForm(t, tt.fields, tt.image, tt.ctype)
			w := perform(f.router, http.MethodPost, "/issues/report", body, contentType)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestGetMyReportsPaginates(t *testing.T) {
	f := newIssueFixture(t, "")
	filter := store.IssueFilter{UserID: "citizen-1"}
	f.issues.EXPECT().FetchIssues(gomock.Any(), store.IssueQuery{Filter: filter, Limit: 5, Offset: 10}).
		Return([]models.Issue{{Title: "Broken light"}}, nil)
	f.issues.EXPECT().CountIssues(gomock.Any(), filter).Return(int64(11), nil)

	w := perform(f.router, http.MethodGet, "/issues/my-reports/citizen-1?skip=10&limit=5", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, float64(11), body["total_count"])
	assert.Equal(t, float64(3), body["page"])
	assert.Len(t, body["reports"], 1)
}

func TestGetCategories(t *testing.T) {
	f := newIssueFixture(t, "")
	w := perform(f.router, http.MethodGet, "/issues/categories", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["categories"], len(models.CategoryCatalog))
}

func TestGetAuthorities(t *testing.T) {
	f := newIssueFixture(t, "")
	f.issues.EXPECT().FetchAuthorities(gomock.Any(), models.Water).
		Return([]models.Authority{{Name: "National Water Supply & Drainage Board", Category: models.Water}}, nil)

	w := perform(f.router, http.MethodGet, "/issues/authorities?category=water", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["authorities"], 1)

	w = perform(f.router, http.MethodGet, "/issues/authorities?category=parks", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetNearbyIssues(t *testing.T) {
	f := newIssueFixture(t, "")
	galleLat, galleLon := 6.9089, 79.8564
	kandyLat, kandyLon := 7.2906, 80.6337
	f.issues.EXPECT().FetchIssues(gomock.Any(), gomock.Any()).Return([]models.Issue{
		{Title: "Kandy lake wall", Latitude: &kandyLat, Longitude: &kandyLon},
		{Title: "Galle Road pothole", Latitude: &galleLat, Longitude: &galleLon},
	}, nil)

	w := performJSON(t, f.router, http.MethodPost, "/issues/nearby", map[string]any{
		"latitude": 6.9, "longitude": 79.856, "radius_km": 5,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	issues := body["issues"].([]any)
	require.Len(t, issues, 1)
	assert.Equal(t, "Galle Road pothole", issues[0].(map[string]any)["title"])
	assert.InDelta(t, 0.99, issues[0].(map[string]any)["distance_km"], 0.02)
	assert.Equal(t, float64(100), body["search_params"].(map[string]any)["limit"])
	assert.Equal(t, float64(1), body["count"])
}

func TestGetNearbyIssuesValidation(t *testing.T) {
	f := newIssueFixture(t, "")

	w := performJSON(t, f.router, http.MethodPost, "/issues/nearby", map[string]any{"longitude": 79.8})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(t, f.router, http.MethodPost, "/issues/nearby", map[string]any{
		"latitude": 6.9, "longitude": 79.8, "radius_km": -1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAllIssuesFilters(t *testing.T) {
	f := newIssueFixture(t, "")
	authorityID, err := primitive.ObjectIDFromHex(issueHex)
	require.NoError(t, err)
	filter := store.IssueFilter{Category: models.Roads, Status: models.Pending, AuthorityID: &authorityID}
	f.issues.EXPECT().FetchIssues(gomock.Any(), store.IssueQuery{Filter: filter, Limit: 100}).Return([]models.Issue{}, nil)
	f.issues.EXPECT().CountIssues(gomock.Any(), filter).Return(int64(0), nil)

	w := perform(f.router, http.MethodGet, "/issues/all?category=roads&status=pending&authority_id="+issueHex, nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "roads", decode(t, w)["filters"].(map[string]any)["category"])

	for _, query := range []string{"status=done", "category=parks", "authority_id=xyz", "limit=-1"} {
		w := perform(f.router, http.MethodGet, "/issues/all?"+query, nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestListingLimitIsBounded(t *testing.T) {
	f := newIssueFixture(t, "")

	for _, path := range []string{"/issues/all?limit=0", "/issues/my-reports/citizen-1?limit=0", "/issues/all?limit=abc"} {
		w := perform(f.router, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}

	f.issues.EXPECT().FetchIssues(gomock.Any(), store.IssueQuery{Limit: MaxPageSize}).Return([]models.Issue{}, nil)
	f.issues.EXPECT().CountIssues(gomock.Any(), store.IssueFilter{}).Return(int64(0), nil)
	w := perform(f.router, http.MethodGet, "/issues/all?limit=50000", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	filter := store.IssueFilter{UserID: "citizen-1"}
	f.issues.EXPECT().FetchIssues(gomock.Any(), store.IssueQuery{Filter: filter, Limit: MaxPageSize}).Return([]models.Issue{}, nil)
	f.issues.EXPECT().CountIssues(gomock.Any(), filter).Return(int64(0), nil)
	w = perform(f.router, http.MethodGet, "/issues/my-reports/citizen-1?limit=1001", nil, "")
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestGetIssueMapsErrorKinds(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: issue", apperrors.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: bad id", apperrors.ErrInvalidArgument), http.StatusBadRequest},
		{fmt.Errorf("%w: timeout", apperrors.ErrDataUnavailable), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		f := newIssueFixture(t, "")
		f.issues.EXPECT().GetIssue(gomock.Any(), issueHex).Return(nil, tt.err)

		w := perform(f.router, http.MethodGet, "/issues/"+issueHex, nil, "")
		assert.Equal(t, tt.want, w.Code, tt.err.Error())
		assert.Equal(t, false, decode(t, w)["success"])
	}
}

func TestGetIssueStatus(t *testing.T) {
	f := newIssueFixture(t, "")
	created := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	f.issues.EXPECT().GetIssue(gomock.Any(), issueHex).
		Return(&models.Issue{Status: models.InProgress, CreatedAt: created}, nil)
	f.issues.EXPECT().FetchIssueUpdates(gomock.Any(), issueHex).Return([]models.IssueUpdate{
		{NewStatus: models.InProgress, UpdateType: models.UpdateStatusChange, IsPublic: true, UpdatedByUserID: "officer-1", CreatedAt: created.Add(time.Hour)},
	}, nil)

	w := perform(f.router, http.MethodGet, "/issues/"+issueHex+"/status", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	status := decode(t, w)["status"].(map[string]any)
	assert.Equal(t, "in_progress", status["current_status"])
	history := status["status_history"].([]any)
	require.Len(t, history, 1)
	assert.Equal(t, "Status changed to In Progress", history[0].(map[string]any)["note"])
	assert.Equal(t, "officer-1", history[0].(map[string]any)["updated_by"])
}

func TestStatusHistory(t *testing.T) {
	created := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	issue := &models.Issue{Status: models.Pending, CreatedAt: created}

	t.Run("no updates", func(t *testing.T) {
		history := statusHistory(issue, nil)
		require.Len(t, history, 1)
		assert.Equal(t, models.Pending, history[0].Status)
		assert.Equal(t, created, history[0].Timestamp)
		assert.Equal(t, "Issue reported by citizen", history[0].Note)
	})

	t.Run("private feedback hidden", func(t *testing.T) {
		comment := "Crew dispatched"
		history := statusHistory(issue, []models.IssueUpdate{
			{NewStatus: models.Assigned, IsPublic: true, Comment: &comment, CreatedAt: created.Add(time.Hour)},
			{NewStatus: models.Assigned, UpdateType: models.UpdateFeedback, IsPublic: false},
		})
		require.Len(t, history, 1)
		assert.Equal(t, "Crew dispatched", history[0].Note)
	})
}

func TestUpdateIssueStatus(t *testing.T) {
	f := newIssueFixture(t, "officer-1")
	note := "Patched"
	updated := time.Date(2025, 1, 12, 9, 0, 0, 0, time.UTC)
	f.issues.EXPECT().UpdateIssueStatus(gomock.Any(), issueHex, store.StatusChange{
		Status:          models.Resolved,
		Note:            &note,
		UpdatedByUserID: "officer-1",
	}).Return(&models.Issue{Status: models.Resolved, UpdatedAt: updated}, nil)

	w := performJSON(t, f.router, http.MethodPut, "/issues/"+issueHex+"/update", map[string]any{
		"status": "resolved", "note": note,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Patched", body["note"])
	assert.Contains(t, body["message"], "resolved")
	assert.Equal(t, 1, f.analytics.calls)

	w = performJSON(t, f.router, http.MethodPut, "/issues/"+issueHex+"/update", map[string]any{"status": "done"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 1, f.analytics.calls)
}

func TestSubmitFeedback(t *testing.T) {
	f := newIssueFixture(t, "citizen-1")
	f.issues.EXPECT().RateIssue(gomock.Any(), issueHex, store.Feedback{Rating: 4, UserID: "citizen-1"}).
		Return(&models.Issue{}, nil)

	w := performJSON(t, f.router, http.MethodPost, "/issues/"+issueHex+"/feedback", map[string]any{"rating": 4})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 1, f.analytics.calls)

	for _, rating := range []float64{0, 6, -1} {
		w := performJSON(t, f.router, http.MethodPost, "/issues/"+issueHex+"/feedback", map[string]any{"rating": rating})
		assert.Equal(t, http.StatusBadRequest, w.Code, rating)
	}
}

func TestAnalyzeImage(t *testing.T) {
	f := newIssueFixture(t, "")
	body, contentType := multipartForm(t, map[string]string{
		"latitude": "6.9271", "longitude": "79.8612",
	}, []byte("fake png"), "image/png")

	w := perform(f.router, http.MethodPost, "/issues/analyze-image", body, contentType)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, "image/png", f.analyzer.mediaType)
	assert.Equal(t, "GPS Coordinates: 6.927100, 79.861200", f.analyzer.location)
	resp := decode(t, w)
	assert.Equal(t, "Pothole", resp["analysis"].(map[string]any)["detected_issue"])
	assert.Equal(t, true, resp["processing_info"].(map[string]any)["location_provided"])
}

func TestAnalyzeImageUnavailable(t *testing.T) {
	f := newIssueFixture(t, "")
	f.analyzer.err = fmt.Errorf("%w: image analysis is not configured", apperrors.ErrDataUnavailable)
	body, contentType := multipartForm(t, map[string]string{"address": "Fort"}, []byte("fake"), "image/jpeg")

	w := perform(f.router, http.MethodPost, "/issues/analyze-image", body, contentType)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Fort", f.analyzer.location)

	body, contentType = multipartForm(t, map[string]string{"address": "Fort"}, nil, "")
	w = perform(f.router, http.MethodPost, "/issues/analyze-image", body, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetImage(t *testing.T) {
	f := newIssueFixture(t, "")
	png := []byte("\x89PNG\r\n\x1a\n0000")
	f.images.EXPECT().OpenImage(gomock.Any(), issueHex, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dst io.Writer) error {
			_, err := dst.Write(png)
			return err
		})

	w := perform(f.router, http.MethodGet, "/issues/images/"+issueHex, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, png, w.Body.Bytes())

	f.images.EXPECT().OpenImage(gomock.Any(), "missing", gomock.Any()).
		Return(fmt.Errorf("%w: image missing", apperrors.ErrNotFound))
	w = perform(f.router, http.MethodGet, "/issues/images/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAuthorityOfficer(t *testing.T) {
	f := newIssueFixture(t, "admin-1")
	authorityID, err := primitive.ObjectIDFromHex(issueHex)
	require.NoError(t, err)
	f.issues.EXPECT().GetAuthority(gomock.Any(), issueHex).Return(&models.Authority{ID: authorityID}, nil)
	f.users.EXPECT().UpsertOfficer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, officer *models.User) (bool, error) {
			assert.Equal(t, "199012345678", officer.NIC)
			assert.Equal(t, "officer@rda.gov.lk", officer.Email)
			require.NotNil(t, officer.AuthorityID)
			assert.Equal(t, authorityID, *officer.AuthorityID)
			return true, nil
		})

	payload := map[string]any{
		"full_name":    "Nimal Perera",
		"email":        "Officer@RDA.gov.lk",
		"nic":          "199012345678",
		"authority_id": issueHex,
	}
	w := performJSON(t, f.router, http.MethodPost, "/issues/create-authority-officer", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, decode(t, w)["message"], "Created authority officer profile")

	f.issues.EXPECT().GetAuthority(gomock.Any(), issueHex).Return(nil, fmt.Errorf("%w: authority", apperrors.ErrNotFound))
	w = performJSON(t, f.router, http.MethodPost, "/issues/create-authority-officer", payload)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatedOfficerCanLogIn(t *testing.T) {
	f := newIssueFixture(t, "admin-1")
	authorityID, err := primitive.ObjectIDFromHex(issueHex)
	require.NoError(t, err)

	var saved *models.User
	f.issues.EXPECT().GetAuthority(gomock.Any(), issueHex).Return(&models.Authority{ID: authorityID}, nil)
	f.users.EXPECT().UpsertOfficer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, officer *models.User) (bool, error) {
			officer.ID = primitive.NewObjectID()
			saved = officer
			return true, nil
		})

	w := performJSON(t, f.router, http.MethodPost, "/issues/create-authority-officer", map[string]any{
		"full_name":    "Nimal Perera",
		"email":        "officer@rda.gov.lk",
		"nic":          "199012345678",
		"authority_id": issueHex,
		"password":     "initial-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "initial-pass")
	require.NotNil(t, saved)
	assert.NotEqual(t, "initial-pass", saved.Password)

	auth := NewAuthController(f.users, authSecret, CookieSettings{})
	r := gin.New()
	r.POST("/auth/login", auth.LoginUser)
	f.users.EXPECT().FindUserByEmail(gomock.Any(), "officer@rda.gov.lk").Return(saved, nil)
	w = performJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email": "officer@rda.gov.lk", "password": "initial-pass",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestCreateAuthorityOfficerPromotesExistingCitizen(t *testing.T) {
	f := newIssueFixture(t, "admin-1")
	authorityID, err := primitive.ObjectIDFromHex(issueHex)
	require.NoError(t, err)
	citizenID := primitive.NewObjectID()

	f.issues.EXPECT().GetAuthority(gomock.Any(), issueHex).Return(&models.Authority{ID: authorityID}, nil)
	f.users.EXPECT().UpsertOfficer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, officer *models.User) (bool, error) {
			assert.Empty(t, officer.Password)
			officer.ID = citizenID
			return false, nil
		})

	w := performJSON(t, f.router, http.MethodPost, "/issues/create-authority-officer", map[string]any{
		"full_name":    "Kamal Silva",
		"email":        "kamal@example.lk",
		"nic":          "198876543210",
		"authority_id": issueHex,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Contains(t, body["message"], "Updated existing user kamal@example.lk")
	assert.Equal(t, citizenID.Hex(), body["profile"].(map[string]any)["id"])
}

func TestCreateAuthorityOfficerRejectsShortPassword(t *testing.T) {
	f := newIssueFixture(t, "admin-1")
	w := performJSON(t, f.router, http.MethodPost, "/issues/create-authority-officer", map[string]any{
		"full_name":    "Nimal Perera",
		"email":        "officer@rda.gov.lk",
		"nic":          "199012345678",
		"authority_id": issueHex,
		"password":     "123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
