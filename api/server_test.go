package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/saadtahsin/portfolio-backend/database"
	"github.com/saadtahsin/portfolio-backend/services"
)

const testAdminPassword = "test-password"

// recordingNotifier captures notifications instead of spawning a process.
type recordingNotifier struct {
	mu            sync.Mutex
	notifications []services.ContactNotification
	err           error
}

func (n *recordingNotifier) Notify(_ context.Context, notification services.ContactNotification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, notification)
	return n.err
}

func (n *recordingNotifier) recorded() []services.ContactNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]services.ContactNotification{}, n.notifications...)
}

func setupTestRouter(t *testing.T) (http.Handler, *recordingNotifier) {
	t.Helper()

	// Shared cache keeps the in-memory database visible across pooled
	// connections; the unique name isolates tests from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	notifier := &recordingNotifier{}
	router, err := newRouter(database.New(db),
		withConfig(map[string]string{
			"ADMIN_PASSWORD": testAdminPassword,
			"SESSION_SECRET": "test-signing-key",
		}),
		withNotifier(notifier),
	)
	require.NoError(t, err)

	return router, notifier
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func adminToken(t *testing.T, handler http.Handler) string {
	t.Helper()

	recorder := doRequest(t, handler, http.MethodPost, "/api/login",
		map[string]string{"password": testAdminPassword}, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestLogin(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/login",
		map[string]string{"password": testAdminPassword}, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/login",
		map[string]string{"password": "nope"}, "")
	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid password", body["message"])
}

func TestLoginMissingPassword(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/login",
		map[string]string{}, "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/projects",
		map[string]string{"title": "x"}, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = doRequest(t, router, http.MethodPost, "/api/projects",
		map[string]string{"title": "x"}, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = doRequest(t, router, http.MethodGet, "/api/contact", nil, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestPublicReadsNeedNoToken(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, path := range []string{
		"/api/projects",
		"/api/ecas",
		"/api/skill-categories",
		"/api/skills",
		"/api/additional-skills",
		"/api/blogs",
		"/api/experiences",
	} {
		recorder := doRequest(t, router, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusOK, recorder.Code, path)
		assert.JSONEq(t, "[]", recorder.Body.String(), path)
	}
}

func TestUpdatePassword(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := adminToken(t, router)

	// Wrong current password leaves the secret unchanged
	recorder := doRequest(t, router, http.MethodPost, "/api/update-password",
		map[string]string{"currentPassword": "wrong", "newPassword": "next"}, token)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Current password is incorrect", decodeBody(t, recorder)["message"])

	recorder = doRequest(t, router, http.MethodPost, "/api/login",
		map[string]string{"password": testAdminPassword}, "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	// Correct rotation switches which password logs in
	recorder = doRequest(t, router, http.MethodPost, "/api/update-password",
		map[string]string{"currentPassword": testAdminPassword, "newPassword": "rotated"}, token)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(t, router, http.MethodPost, "/api/login",
		map[string]string{"password": testAdminPassword}, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = doRequest(t, router, http.MethodPost, "/api/login",
		map[string]string{"password": "rotated"}, "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	// Existing session tokens stay valid after a rotation
	recorder = doRequest(t, router, http.MethodGet, "/api/contact", nil, token)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
