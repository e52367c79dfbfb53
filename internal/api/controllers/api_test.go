package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"beacon/internal/config"
	"beacon/internal/events"
	"beacon/internal/infra"
	"beacon/internal/models/db_models"
	"beacon/internal/repositories"
	"beacon/internal/services"
	"beacon/pkg/middleware"
	"beacon/pkg/tokencache"
	"beacon/pkg/utils"
)

type testAPI struct {
	router   *gin.Engine
	db       *gorm.DB
	jwtMaker *utils.JWTMaker
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		JWTSecret:           "test-secret",
		TokenTTL:            time.Hour,
		UploadDir:           t.TempDir(),
		VerifyRewardPoints:  10,
		ResolveRewardPoints: 5,
	}

	jwtMaker := utils.NewJWTMaker(cfg.JWTSecret, cfg.TokenTTL)
	denylist := tokencache.NewMemoryDenylist()
	publisher := events.NopPublisher{}

	accountRepo := repositories.NewAccountRepository(db)
	reportRepo := repositories.NewReportRepository(db)
	rewardRepo := repositories.NewRewardRepository(db)

	accountService := services.NewAccountService(accountRepo, jwtMaker, denylist, publisher, logger)
	reportService := services.NewReportService(reportRepo, cfg, publisher, logger)
	rewardService := services.NewRewardService(rewardRepo, publisher, logger)
	leaderboardService := services.NewLeaderboardService(rewardRepo)

	authController := NewAuthController(accountService)
	reportController := NewReportController(reportService, cfg)
	rewardController := NewRewardController(rewardService)
	adminController := NewAdminController(accountService, reportService, rewardService, leaderboardService)

	router := gin.New()
	router.POST("/login", authController.Login)
	router.POST("/register", authController.Register)

	authed := router.Group("/", middleware.JWTAuthMiddleware(jwtMaker, denylist, accountRepo))
	authed.POST("/logout", authController.Logout)
	authed.GET("/user", authController.CurrentUser)
	authed.PUT("/profile/update", authController.UpdateProfile)
	authed.POST("/report-emergency", reportController.Submit)
	authed.GET("/me/emergencies", reportController.ListMine)
	authed.GET("/me/rewards", rewardController.ListMine)
	authed.POST("/claim-reward", rewardController.Claim)
	authed.GET("/responder/emergencies", reportController.ListForResponder)
	authed.POST("/emergencies/:id/verify", reportController.Verify)
	authed.POST("/emergencies/:id/resolve", reportController.Resolve)
	authed.POST("/emergency/:id/decline", reportController.Decline)
	authed.POST("/process-reward/:id", adminController.ProcessClaim)

	adminGroup := authed.Group("/admin", middleware.AdminOnlyMiddleware())
	adminGroup.GET("/responders", adminController.ListResponders)
	adminGroup.POST("/responders/:id/approve", adminController.ApproveResponder)
	adminGroup.POST("/responders/:id/decline", adminController.DeclineResponder)
	adminGroup.GET("/emergencies", adminController.ListEmergencies)
	adminGroup.GET("/leaderboard", adminController.Leaderboard)
	adminGroup.GET("/claimrequests", adminController.ListClaims)

	return &testAPI{router: router, db: db, jwtMaker: jwtMaker}
}

func (api *testAPI) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// registerReporter registers a reporter account and returns its token.
func (api *testAPI) registerReporter(t *testing.T, email string) string {
	t.Helper()
	w := api.request(t, http.MethodPost, "/register", "", gin.H{
		"name":     "Reporter",
		"email":    email,
		"phone":    "+100200300",
		"password": "secret123",
		"role":     "reporter",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// seedAdmin creates an admin directly; the registration endpoint only
// accepts reporter and responder roles.
func (api *testAPI) seedAdmin(t *testing.T) string {
	t.Helper()
	hash, err := utils.HashPassword("admin123")
	require.NoError(t, err)
	admin := &db_models.Account{
		Name:           "Admin",
		Email:          "admin@example.com",
		PasswordHash:   hash,
		Role:           db_models.RoleAdmin,
		IsAdmin:        true,
		ApprovalStatus: db_models.ApprovalApproved,
	}
	require.NoError(t, api.db.Create(admin).Error)

	w := api.request(t, http.MethodPost, "/login", "", gin.H{
		"email":    "admin@example.com",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := decodeBody(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func (api *testAPI) submitReport(t *testing.T, token string) string {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Fire on Main St"))
	require.NoError(t, mw.WriteField("description", "Smoke from the second floor"))
	require.NoError(t, mw.WriteField("type", "fire"))
	require.NoError(t, mw.WriteField("location_link", "https://maps.example.com/?q=1,2"))
	require.NoError(t, mw.WriteField("landmark", "next to the bakery"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/report-emergency", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	report, _ := decodeBody(t, w)["report"].(map[string]interface{})
	require.NotNil(t, report)
	id, _ := report["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "pending", report["status"])
	return id
}

func TestEmergencyLifecycleEndToEnd(t *testing.T) {
	api := newTestAPI(t)

	reporterToken := api.registerReporter(t, "ada@example.com")
	adminToken := api.seedAdmin(t)

	// A responder signs up and lands in the approval queue with no token.
	w := api.request(t, http.MethodPost, "/register", "", gin.H{
		"name":     "Bob",
		"email":    "bob@example.com",
		"phone":    "+100200301",
		"password": "secret123",
		"role":     "responder",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["pending_approval"])
	assert.NotContains(t, body, "token")

	reportID := api.submitReport(t, reporterToken)

	// The unapproved responder can log in but cannot moderate yet.
	w = api.request(t, http.MethodPost, "/login", "", gin.H{
		"email":    "bob@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	responderToken, _ := decodeBody(t, w)["token"].(string)
	require.NotEmpty(t, responderToken)

	w = api.request(t, http.MethodPost, "/emergencies/"+reportID+"/verify", responderToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admin approves the responder application.
	w = api.request(t, http.MethodGet, "/admin/responders", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	responders, _ := decodeBody(t, w)["responder"].([]interface{})
	require.Len(t, responders, 1)
	responderID, _ := responders[0].(map[string]interface{})["id"].(string)

	w = api.request(t, http.MethodPost, "/admin/responders/"+responderID+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The approval check is per request: a fresh login is not needed.
	w = api.request(t, http.MethodPost, "/emergencies/"+reportID+"/verify", responderToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	report, _ := decodeBody(t, w)["report"].(map[string]interface{})
	assert.Equal(t, "verified", report["status"])

	// Verifying twice is a conflict.
	w = api.request(t, http.MethodPost, "/emergencies/"+reportID+"/verify", responderToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.request(t, http.MethodPost, "/emergencies/"+reportID+"/resolve", responderToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	report, _ = decodeBody(t, w)["report"].(map[string]interface{})
	assert.Equal(t, "resolved", report["status"])

	// Verification and resolution credited the reporter 10 + 5 points.
	w = api.request(t, http.MethodGet, "/me/rewards", reporterToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	rewards, _ := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, rewards, 2)

	w = api.request(t, http.MethodPost, "/claim-reward", reporterToken, gin.H{"points": 15})
	require.Equal(t, http.StatusCreated, w.Code)
	claim, _ := decodeBody(t, w)["claim"].(map[string]interface{})
	claimID, _ := claim["id"].(string)
	require.NotEmpty(t, claimID)
	assert.Equal(t, "pending", claim["status"])

	// Admin settles the claim.
	w = api.request(t, http.MethodGet, "/admin/claimrequests", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	claims, _ := decodeBody(t, w)["claims"].([]interface{})
	require.Len(t, claims, 1)

	w = api.request(t, http.MethodPost, "/process-reward/"+claimID, adminToken, gin.H{"status": "approved"})
	require.Equal(t, http.StatusOK, w.Code)
	claim, _ = decodeBody(t, w)["claim"].(map[string]interface{})
	assert.Equal(t, "approved", claim["status"])

	// The decision is one-shot.
	w = api.request(t, http.MethodPost, "/process-reward/"+claimID, adminToken, gin.H{"status": "rejected"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Only 0 points remain, so another claim overdraws.
	w = api.request(t, http.MethodPost, "/claim-reward", reporterToken, gin.H{"points": 5})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Leaderboard reflects the accrued total.
	w = api.request(t, http.MethodGet, "/admin/leaderboard", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	entries, _ := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, entries, 1)
	entry, _ := entries[0].(map[string]interface{})
	assert.Equal(t, float64(15), entry["rewards_sum_points"])
}

func TestSubmitReport_ValidationDetails(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerReporter(t, "ada@example.com")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Incomplete"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/report-emergency", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	// Missing required form fields fail at binding.
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAuth_MissingAndRevokedTokens(t *testing.T) {
	api := newTestAPI(t)

	w := api.request(t, http.MethodGet, "/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.request(t, http.MethodGet, "/user", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := api.registerReporter(t, "ada@example.com")

	w = api.request(t, http.MethodGet, "/user", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user, _ := decodeBody(t, w)["user"].(map[string]interface{})
	assert.Equal(t, "ada@example.com", user["email"])

	w = api.request(t, http.MethodPost, "/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The revoked token is dead from this point on.
	w = api.request(t, http.MethodGet, "/user", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutes_ForbiddenForNonAdmins(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerReporter(t, "ada@example.com")

	for _, path := range []string{"/admin/responders", "/admin/emergencies", "/admin/leaderboard", "/admin/claimrequests"} {
		w := api.request(t, http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, path)
	}
}

func TestDecline_IsTerminal(t *testing.T) {
	api := newTestAPI(t)
	reporterToken := api.registerReporter(t, "ada@example.com")
	adminToken := api.seedAdmin(t)

	reportID := api.submitReport(t, reporterToken)

	w := api.request(t, http.MethodPost, "/emergency/"+reportID+"/decline", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	report, _ := decodeBody(t, w)["report"].(map[string]interface{})
	assert.Equal(t, "declined", report["status"])

	w = api.request(t, http.MethodPost, "/emergencies/"+reportID+"/verify", adminToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Declined reports earn nothing.
	w = api.request(t, http.MethodGet, "/me/rewards", reporterToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	rewards, _ := decodeBody(t, w)["data"].([]interface{})
	assert.Empty(t, rewards)
}

func TestProfileUpdate_RoundTrip(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerReporter(t, "ada@example.com")

	w := api.request(t, http.MethodPut, "/profile/update", token, gin.H{
		"name":  "Ada Lovelace",
		"email": "ada@example.com",
		"phone": "+100200999",
	})
	require.Equal(t, http.StatusOK, w.Code)
	user, _ := decodeBody(t, w)["user"].(map[string]interface{})
	assert.Equal(t, "Ada Lovelace", user["name"])
	assert.Equal(t, "+100200999", user["phone"])
}

func TestReporterSeesOnlyOwnReports(t *testing.T) {
	api := newTestAPI(t)
	first := api.registerReporter(t, "ada@example.com")
	second := api.registerReporter(t, fmt.Sprintf("other-%d@example.com", time.Now().UnixNano()))

	api.submitReport(t, first)

	w := api.request(t, http.MethodGet, "/me/emergencies", second, nil)
	require.Equal(t, http.StatusOK, w.Code)
	reports, _ := decodeBody(t, w)["data"].([]interface{})
	assert.Empty(t, reports)

	w = api.request(t, http.MethodGet, "/me/emergencies", first, nil)
	require.Equal(t, http.StatusOK, w.Code)
	reports, _ = decodeBody(t, w)["data"].([]interface{})
	assert.Len(t, reports, 1)
}
