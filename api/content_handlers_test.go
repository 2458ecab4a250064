package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectLifecycle(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := adminToken(t, router)

	// Comma-separated technologies are materialized as an ordered list
	recorder := doRequest(t, router, http.MethodPost, "/api/projects", map[string]any{
		"title":        "Portfolio Backend",
		"description":  "REST API for the personal site",
		"technologies": "Go, PostgreSQL, Docker",
		"category":     "backend",
		"imageUrl":     "https://example.com/p.png",
	}, token)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["success"])
	project := body["project"].(map[string]any)
	assert.Equal(t, []any{"Go", "PostgreSQL", "Docker"}, project["technologies"])
	projectID := int(project["id"].(float64))
	require.NotZero(t, projectID)

	// Reads are public and raw
	recorder = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/projects/%d", projectID), nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	fetched := decodeBody(t, recorder)
	assert.Equal(t, "Portfolio Backend", fetched["title"])
	assert.Nil(t, fetched["success"])

	// Partial update keeps unspecified fields
	recorder = doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/projects/%d", projectID),
		map[string]any{"title": "Portfolio API"}, token)
	require.Equal(t, http.StatusOK, recorder.Code)
	updated := decodeBody(t, recorder)["project"].(map[string]any)
	assert.Equal(t, "Portfolio API", updated["title"])
	assert.Equal(t, "backend", updated["category"])
	assert.Equal(t, float64(projectID), updated["id"])

	recorder = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/projects/%d", projectID), nil, token)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, true, decodeBody(t, recorder)["success"])

	recorder = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/projects/%d", projectID), nil, "")
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Project not found", decodeBody(t, recorder)["message"])
}

func TestProjectValidation(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := adminToken(t, router)

	recorder := doRequest(t, router, http.MethodPost, "/api/projects", map[string]any{
		"title": "No description",
	}, token)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid data", body["message"])
	assert.NotEmpty(t, body["errors"])
}

func TestDeleteMissingProject(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := adminToken(t, router)

	recorder := doRequest(t, router, http.MethodDelete, "/api/projects/99", nil, token)
	require.Equal(t, http.StatusNotFound, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Project not found", body["message"])
}

func TestInvalidIDParam(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/projects/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doRequest(t, router, http.MethodGet, "/api/projects/0", nil, "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSkillCategoryCascadeDelete(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := adminToken(t, router)

	recorder := doRequest(t, router, http.MethodPost, "/api/skill-categories",
		map[string]any{"name": "Languages", "icon": "code"}, token)
	require.Equal(t, http.StatusOK, recorder.Code)
	category := decodeBody(t, recorder)["category"].(map[string]any)
	categoryID := int(category["id"].(float64))

	recorder = doRequest(t, router, http.MethodPost, "/api/skills", map[string]any{
		"categoryId": categoryID, "name": "Go", "level": "Advanced", "percentage": 85,
	}, token)
	require.Equal(t, http.StatusOK, recorder.Code)

	// Category listing embeds its skills
	recorder = doRequest(t, router, http.MethodGet, "/api/skill-categories", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"Go"`)

	recorder = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/skill-categories/%d", categoryID), nil, token)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(t, router, http.MethodGet, "/api/skills", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, "[]", recorder.Body.String())
}

func TestSkillPercentageBounds(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := adminToken(t, router)

	recorder := doRequest(t, router, http.MethodPost, "/api/skill-categories",
		map[string]any{"name": "Languages", "icon": "code"}, token)
	require.Equal(t, http.StatusOK, recorder.Code)
	categoryID := int(decodeBody(t, recorder)["category"].(map[string]any)["id"].(float64))

	recorder = doRequest(t, router, http.MethodPost, "/api/skills", map[string]any{
		"categoryId": categoryID, "name": "Go", "level": "Advanced", "percentage": 101,
	}, token)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doRequest(t, router, http.MethodPost, "/api/skills", map[string]any{
		"categoryId": categoryID, "name": "Go", "level": "Wizard", "percentage": 50,
	}, token)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAdditionalSkills(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := adminToken(t, router)

	recorder := doRequest(t, router, http.MethodPost, "/api/additional-skills",
		map[string]any{"name": "GraphQL"}, token)
	require.Equal(t, http.StatusOK, recorder.Code)
	skillID := int(decodeBody(t, recorder)["skill"].(map[string]any)["id"].(float64))

	recorder = doRequest(t, router, http.MethodGet, "/api/additional-skills", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "GraphQL")

	recorder = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/additional-skills/%d", skillID), nil, token)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/additional-skills/%d", skillID), nil, token)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Additional skill not found", decodeBody(t, recorder)["message"])
}

func TestEcaNotFoundMessage(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/ecas/7", nil, "")
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "ECA not found", decodeBody(t, recorder)["message"])
}

func TestBlogNotFoundMessage(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/blogs/7", nil, "")
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Blog not found", decodeBody(t, recorder)["message"])
}

func TestExperiencesOrderedByDisplayOrder(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := adminToken(t, router)

	for _, experience := range []map[string]any{
		{"role": "Intern", "duration": "2022", "description": "a", "order": 2},
		{"role": "Engineer", "duration": "2023", "description": "b", "order": 1},
	} {
		recorder := doRequest(t, router, http.MethodPost, "/api/experiences", experience, token)
		require.Equal(t, http.StatusOK, recorder.Code)
	}

	recorder := doRequest(t, router, http.MethodGet, "/api/experiences", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var experiences []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &experiences))
	require.Len(t, experiences, 2)
	assert.Equal(t, "Engineer", experiences[0]["role"])
	assert.Equal(t, "Intern", experiences[1]["role"])
}

func TestAboutUpsert(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := adminToken(t, router)

	recorder := doRequest(t, router, http.MethodGet, "/api/about", nil, "")
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "About info not found", decodeBody(t, recorder)["message"])

	payload := map[string]any{
		"bio":               "bio",
		"passion":           "building things",
		"yearsExperience":   "3+",
		"projectsCompleted": "20+",
		"aspirationLabel":   "Software Engineer",
	}
	recorder = doRequest(t, router, http.MethodPost, "/api/about", payload, token)
	require.Equal(t, http.StatusOK, recorder.Code)
	firstID := decodeBody(t, recorder)["info"].(map[string]any)["id"]

	// A second POST updates the same row instead of creating another
	payload["bio"] = "updated bio"
	recorder = doRequest(t, router, http.MethodPost, "/api/about", payload, token)
	require.Equal(t, http.StatusOK, recorder.Code)
	info := decodeBody(t, recorder)["info"].(map[string]any)
	assert.Equal(t, firstID, info["id"])
	assert.Equal(t, "updated bio", info["bio"])

	recorder = doRequest(t, router, http.MethodGet, "/api/about", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "updated bio", decodeBody(t, recorder)["bio"])
}
