package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okbaghel/devfolio/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, srv http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestListProjects(t *testing.T) {
	h, _ := setupHandler()

	rec := get(t, router(h), "/api/projects")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var projects []model.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	require.Len(t, projects, 3)
	assert.Equal(t, "DirectNaukri Job Platform", projects[0].Title)
}

func TestGetProject(t *testing.T) {
	h, _ := setupHandler()
	srv := router(h)

	tests := []struct {
		name       string
		id         string
		wantStatus int
		wantTitle  string
	}{
		{name: "existing", id: "3", wantStatus: http.StatusOK, wantTitle: "SmartScrap"},
		{name: "missing", id: "42", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, srv, "/api/projects/"+tt.id)
			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus != http.StatusOK {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "project not found", body["error"])

				return
			}

			var project model.Project
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &project))
			assert.Equal(t, tt.wantTitle, project.Title)
			assert.Equal(t, []string{"next", "mongodb", "cleark"}, project.TechStack)
		})
	}
}

func TestListSkillsAndHealth(t *testing.T) {
	h, _ := setupHandler()
	srv := router(h)

	var skills []model.Skill
	require.NoError(t, json.Unmarshal(get(t, srv, "/api/skills").Body.Bytes(), &skills))
	require.Len(t, skills, 6)
	assert.Equal(t, 95, skills[0].Level)

	rec := get(t, srv, "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
