package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubmission(t *testing.T) {
	router, notifier := setupTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/contact", map[string]any{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "Hello there",
	}, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.NotZero(t, body["id"])

	notifications := notifier.recorded()
	require.Len(t, notifications, 1)
	assert.Equal(t, "Visitor", notifications[0].Name)
	assert.Equal(t, "visitor@example.com", notifications[0].Email)

	token := adminToken(t, router)
	recorder = doRequest(t, router, http.MethodGet, "/api/contact", nil, token)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Hello there")
}

func TestContactSubmissionStripsUnsafeCharacters(t *testing.T) {
	router, notifier := setupTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/contact", map[string]any{
		"name":    "Bob<script>",
		"email":   "bob@example.com",
		"message": "hi `$(whoami)`; rm -rf | cat & 'quoted' \"double\"",
	}, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	notifications := notifier.recorded()
	require.Len(t, notifications, 1)
	assert.Equal(t, "Bobscript", notifications[0].Name)
	assert.Equal(t, "hi (whoami) rm -rf  cat  quoted double", notifications[0].Message)

	// Email is validated, not rewritten
	assert.Equal(t, "bob@example.com", notifications[0].Email)
}

func TestContactSubmissionValidation(t *testing.T) {
	router, notifier := setupTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/contact", map[string]any{
		"name":  "Visitor",
		"email": "not-an-email",
	}, "")
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid data", body["message"])
	assert.NotEmpty(t, body["errors"])

	// Nothing stored, nothing notified
	assert.Empty(t, notifier.recorded())
}

func TestContactSubmissionSucceedsWhenNotificationFails(t *testing.T) {
	router, notifier := setupTestRouter(t)
	notifier.err = errors.New("smtp is down")

	recorder := doRequest(t, router, http.MethodPost, "/api/contact", map[string]any{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "still stored",
	}, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, true, decodeBody(t, recorder)["success"])

	token := adminToken(t, router)
	recorder = doRequest(t, router, http.MethodGet, "/api/contact", nil, token)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "still stored")
}

func TestContactSubmissionMalformedBody(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/contact", "{not json", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
