package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"ielts_tracker_backend/internal/config"
	"ielts_tracker_backend/internal/middleware"
	"ielts_tracker_backend/internal/planner"
	"ielts_tracker_backend/internal/repository"
	"ielts_tracker_backend/internal/service"
	"ielts_tracker_backend/internal/util"
	"ielts_tracker_backend/pkg/database"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:ctl_%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	cfg := &config.Config{}
	cfg.JWT.Secret = "controller-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	cfg.Planner = config.PlannerConfig{UpcomingDefaultDays: 7, UpcomingMaxDays: 30, GoalLookaheadDays: 30}

	users := repository.NewUserRepository(db)
	sections := repository.NewSectionRepository(db)
	tests := repository.NewPracticeTestRepository(db, nil)
	weak := repository.NewWeakAreaRepository(db)
	plans := repository.NewStudyPlanRepository(db)
	resources := repository.NewResourceRepository(db)

	auth := NewAuthController(service.NewAuthService(users, cfg), service.NewUserService(users))
	plan := NewStudyPlanController(service.NewStudyPlanService(db, plans, tests, weak, sections, resources, cfg))
	section := NewSectionController(sections)

	r := gin.New()
	r.POST("/api/register", auth.Register)
	r.POST("/api/login", auth.Login)

	api := r.Group("/api", middleware.AuthMiddleware(cfg.JWT.Secret))
	api.GET("/sections", section.List)
	api.POST("/study-plans/generate", plan.Generate)
	api.POST("/study-plans/preview", plan.Preview)
	api.GET("/study-plans/today", plan.Today)
	api.GET("/study-plans/upcoming", plan.Upcoming)
	api.GET("/study-plans/:id", plan.Get)
	api.PATCH("/study-plans/:id/status", plan.UpdateStatus)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func login(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w, _ := doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{
		"name":            "Test " + username,
		"username":        username,
		"email":           username + "@example.com",
		"password":        "Passw0rd!",
		"confirmPassword": "Passw0rd!",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, env := doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{"login": username, "password": "Passw0rd!"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.NotEmpty(t, result.Token)
	return result.Token
}

func TestGeneratePlanFlow(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "mei")
	testDate := time.Now().UTC().AddDate(0, 0, 40).Format(util.DateFormat)

	w, _ := doJSON(t, r, http.MethodPost, "/api/study-plans/generate", "", gin.H{"testDate": testDate})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := doJSON(t, r, http.MethodPost, "/api/study-plans/preview", token, gin.H{"testDate": testDate, "planName": "Draft"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var preview PlanPreview
	require.NoError(t, json.Unmarshal(env.Data, &preview))
	assert.Equal(t, "Draft", preview.Name)
	assert.Equal(t, testDate, preview.EndDate)
	assert.NotEmpty(t, preview.Items)
	assert.Len(t, preview.Allocation, 4)

	w, env = doJSON(t, r, http.MethodPost, "/api/study-plans/generate", token, gin.H{"testDate": testDate})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var plan struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
		Items  []struct {
			ScheduledDate string `json:"scheduledDate"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &plan))
	assert.Equal(t, "active", plan.Status)
	assert.Len(t, plan.Items, len(preview.Items))

	w, _ = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/study-plans/%d", plan.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, r, http.MethodGet, "/api/study-plans/today", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var today service.TodayPlan
	require.NoError(t, json.Unmarshal(env.Data, &today))
	assert.NotEmpty(t, today.Items)

	w, env = doJSON(t, r, http.MethodGet, "/api/study-plans/upcoming?days=99", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"days":7`)

	other := login(t, r, "tom")
	w, _ = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/study-plans/%d", plan.ID), other, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/study-plans/%d/status", plan.ID), token, gin.H{"status": "paused"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = doJSON(t, r, http.MethodGet, "/api/study-plans/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGeneratePlanRejectsPastDate(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "mei")

	tests := []struct {
		name string
		body gin.H
	}{
		{"today", gin.H{"testDate": time.Now().UTC().Format(util.DateFormat)}},
		{"past", gin.H{"testDate": "2020-01-01"}},
		{"bad format", gin.H{"testDate": "01/02/2030"}},
		{"missing", gin.H{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := doJSON(t, r, http.MethodPost, "/api/study-plans/generate", token, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err    error
		status int
	}{
		{util.ErrPermissionDenied, http.StatusForbidden},
		{util.ErrInvalidCredentials, http.StatusUnauthorized},
		{util.ErrPlanNotFound, http.StatusNotFound},
		{fmt.Errorf("load: %w", util.ErrTestNotFound), http.StatusNotFound},
		{util.ErrPlanOverlap, http.StatusConflict},
		{util.ErrScoreExists, http.StatusConflict},
		{planner.ErrNoTimeRemaining, http.StatusBadRequest},
		{fmt.Errorf("%w: text/html", util.ErrInvalidFileType), http.StatusBadRequest},
		{util.ErrTestDateNotSet, http.StatusBadRequest},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			respondError(ctx, tt.err)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for raw, ok := range map[string]bool{"12": true, "0": false, "abc": false, "-3": false} {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Params = gin.Params{{Key: "id", Value: raw}}
		id, got := pathID(ctx, "id")
		assert.Equal(t, ok, got, raw)
		if ok {
			assert.Equal(t, uint(12), id)
		} else {
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	}
}
