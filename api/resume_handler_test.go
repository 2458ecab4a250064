package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saadtahsin/portfolio-backend/services"
)

func TestResumeDownload(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/resume", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	assert.Equal(t, docxContentType, recorder.Header().Get("Content-Type"))
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), services.ResumeFileName)
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "attachment")

	body := recorder.Body.Bytes()
	require.Greater(t, len(body), 2)
	assert.Equal(t, "PK", string(body[:2]))
}
