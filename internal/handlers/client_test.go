package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/client-portal-api/internal/dto"
	apierrors "github.com/yukikurage/client-portal-api/internal/errors"
	"github.com/yukikurage/client-portal-api/internal/models"
)

func addProject(t *testing.T, env handlerTestEnv, token string, payload map[string]any) dto.AddProjectResponse {
	t.Helper()

	w := env.do(t, http.MethodPost, "/api/add-project", payload, token)
	requireStatus(t, http.StatusOK, w)

	var response dto.AddProjectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestClientHandler_RequiresToken(t *testing.T) {
	env := setupHandlerTestEnv(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/client-info"},
		{http.MethodPost, "/api/update-client"},
		{http.MethodPost, "/api/change-password"},
		{http.MethodPost, "/api/add-project"},
		{http.MethodGet, "/api/project-info"},
		{http.MethodPost, "/api/update-project"},
		{http.MethodDelete, "/api/delete-project/abc"},
	}

	for _, route := range routes {
		w := env.do(t, route.method, route.path, nil, "")
		requireStatus(t, http.StatusForbidden, w)
		assert.Equal(t, "Access denied. No token provided.", decodeError(t, w).Message)

		w = env.do(t, route.method, route.path, nil, "garbage")
		requireStatus(t, http.StatusForbidden, w)
		assert.Equal(t, "Invalid or expired token.", decodeError(t, w).Message)
	}
}

func TestClientHandler_GetClientInfo(t *testing.T) {
	env := setupHandlerTestEnv(t)
	accountID, token := env.registerAccount(t, "a@x.com", "secret1")

	w := env.do(t, http.MethodGet, "/api/client-info", nil, token)
	requireStatus(t, http.StatusOK, w)

	var profile dto.ProfileDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, accountID, profile.AccountID)
	assert.Equal(t, "Acme", profile.Name)
	assert.Empty(t, profile.Projects)
}

func TestClientHandler_GetClientInfo_NoProfile(t *testing.T) {
	env := setupHandlerTestEnv(t)
	accountID, token := env.registerAccount(t, "a@x.com", "secret1")
	require.NoError(t, env.db.Where("account_id = ?", accountID).Delete(&models.Profile{}).Error)

	w := env.do(t, http.MethodGet, "/api/client-info", nil, token)
	requireStatus(t, http.StatusNotFound, w)
	assert.Equal(t, "Client details not found", decodeError(t, w).Message)

	w = env.do(t, http.MethodGet, "/api/project-info", nil, token)
	requireStatus(t, http.StatusNotFound, w)
	assert.Equal(t, "No projects found for this client", decodeError(t, w).Message)
}

func TestClientHandler_UpdateClient_Partial(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, token := env.registerAccount(t, "a@x.com", "secret1")

	w := env.do(t, http.MethodPost, "/api/update-client", map[string]string{"companySize": "500+"}, token)
	requireStatus(t, http.StatusOK, w)

	var profile dto.ProfileDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Acme", profile.Name)
	assert.Equal(t, "500+", profile.CompanySize)
	assert.Equal(t, "en", profile.PreferredLanguage)
}

func TestClientHandler_ChangePassword(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, token := env.registerAccount(t, "a@x.com", "secret1")

	w := env.do(t, http.MethodPost, "/api/change-password", map[string]string{
		"oldPassword": "wrong!", "newPassword": "123456",
	}, token)
	requireStatus(t, http.StatusBadRequest, w)
	assert.Equal(t, "Old password is incorrect", decodeError(t, w).Message)

	w = env.do(t, http.MethodPost, "/api/change-password", map[string]string{
		"oldPassword": "secret1", "newPassword": "12345",
	}, token)
	requireStatus(t, http.StatusBadRequest, w)
	body := decodeError(t, w)
	assert.Equal(t, apierrors.ErrCodeWeakPassword, body.Code)
	assert.Equal(t, "New password is too short", body.Message)

	w = env.do(t, http.MethodPost, "/api/change-password", map[string]string{
		"oldPassword": "secret1", "newPassword": "123456",
	}, token)
	requireStatus(t, http.StatusOK, w)
	assert.JSONEq(t, `{"message":"Password changed successfully"}`, w.Body.String())

	w = env.do(t, http.MethodPost, "/auth/login", map[string]string{"email": "a@x.com", "password": "123456"}, "")
	requireStatus(t, http.StatusOK, w)
	w = env.do(t, http.MethodPost, "/auth/login", map[string]string{"email": "a@x.com", "password": "secret1"}, "")
	requireStatus(t, http.StatusBadRequest, w)
}

func TestClientHandler_ChangePassword_OverBcryptLimit(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, token := env.registerAccount(t, "a@x.com", "secret1")

	w := env.do(t, http.MethodPost, "/api/change-password", map[string]string{
		"oldPassword": "secret1", "newPassword": strings.Repeat("p", 80),
	}, token)
	requireStatus(t, http.StatusBadRequest, w)
	assert.Equal(t, apierrors.ErrCodeInvalidInput, decodeError(t, w).Code)

	w = env.do(t, http.MethodPost, "/auth/login", map[string]string{"email": "a@x.com", "password": "secret1"}, "")
	requireStatus(t, http.StatusOK, w)
}

func TestClientHandler_ChangePassword_AccountGone(t *testing.T) {
	env := setupHandlerTestEnv(t)
	accountID, token := env.registerAccount(t, "a@x.com", "secret1")
	require.NoError(t, env.db.Delete(&models.Account{}, accountID).Error)

	w := env.do(t, http.MethodPost, "/api/change-password", map[string]string{
		"oldPassword": "secret1", "newPassword": "123456",
	}, token)
	requireStatus(t, http.StatusNotFound, w)
	assert.Equal(t, "User not found", decodeError(t, w).Message)
}

func TestClientHandler_ProjectLifecycle(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, token := env.registerAccount(t, "a@x.com", "secret1")

	w := env.do(t, http.MethodGet, "/api/project-info", nil, token)
	requireStatus(t, http.StatusOK, w)
	assert.JSONEq(t, `[]`, w.Body.String())

	added := addProject(t, env, token, map[string]any{"name": "Site", "status": "active", "developer": "Kim"})
	assert.Equal(t, "Project added successfully", added.Message)
	require.Len(t, added.ClientDetails.Projects, 1)
	first := added.ClientDetails.Projects[0]
	assert.NotEmpty(t, first.ID)
	assert.Nil(t, first.DueDate)

	added = addProject(t, env, token, map[string]any{"name": "App", "status": "planned", "developer": "Lee", "dueDate": "2026-12-01"})
	require.Len(t, added.ClientDetails.Projects, 2)
	second := added.ClientDetails.Projects[1]
	assert.NotEqual(t, first.ID, second.ID)
	require.NotNil(t, second.DueDate)
	assert.Equal(t, "2026-12-01", second.DueDate.Format("2006-01-02"))

	w = env.do(t, http.MethodPost, "/api/update-project", map[string]any{
		"projectId": first.ID, "name": "Site v2", "status": "done", "developer": "Kim",
		"dueDate": "2026-11-15T10:00:00Z",
	}, token)
	requireStatus(t, http.StatusOK, w)

	var updated dto.ProjectDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, "Site v2", updated.Name)
	assert.Equal(t, "done", updated.Status)
	require.NotNil(t, updated.DueDate)

	w = env.do(t, http.MethodDelete, "/api/delete-project/"+first.ID, nil, token)
	requireStatus(t, http.StatusOK, w)
	assert.JSONEq(t, `{"message":"Project deleted successfully"}`, w.Body.String())

	w = env.do(t, http.MethodGet, "/api/project-info", nil, token)
	requireStatus(t, http.StatusOK, w)

	var projects []dto.ProjectDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, second.ID, projects[0].ID)

	w = env.do(t, http.MethodDelete, "/api/delete-project/"+first.ID, nil, token)
	requireStatus(t, http.StatusNotFound, w)
	assert.Equal(t, "Project not found", decodeError(t, w).Message)
}

func TestClientHandler_CrossAccountProjectIsolation(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, aliceToken := env.registerAccount(t, "alice@x.com", "secret1")
	_, bobToken := env.registerAccount(t, "bob@x.com", "secret1")

	added := addProject(t, env, aliceToken, map[string]any{"name": "Secret", "status": "active", "developer": "Kim"})
	projectID := added.ClientDetails.Projects[0].ID

	w := env.do(t, http.MethodPost, "/api/update-project", map[string]any{
		"projectId": projectID, "name": "Hijack", "status": "x", "developer": "y",
	}, bobToken)
	requireStatus(t, http.StatusNotFound, w)

	w = env.do(t, http.MethodDelete, "/api/delete-project/"+projectID, nil, bobToken)
	requireStatus(t, http.StatusNotFound, w)

	w = env.do(t, http.MethodGet, "/api/project-info", nil, aliceToken)
	requireStatus(t, http.StatusOK, w)
	assert.Contains(t, w.Body.String(), `"name":"Secret"`)
}

func TestClientHandler_ProjectValidation(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, token := env.registerAccount(t, "a@x.com", "secret1")

	w := env.do(t, http.MethodPost, "/api/add-project", map[string]any{"name": "Site", "status": "active"}, token)
	requireStatus(t, http.StatusBadRequest, w)
	assert.Equal(t, apierrors.ErrCodeMissingField, decodeError(t, w).Code)

	w = env.do(t, http.MethodPost, "/api/add-project", map[string]any{
		"name": "Site", "status": "active", "developer": "Kim", "dueDate": "next tuesday",
	}, token)
	requireStatus(t, http.StatusBadRequest, w)
	assert.Equal(t, apierrors.ErrCodeInvalidInput, decodeError(t, w).Code)

	w = env.do(t, http.MethodPost, "/api/update-project", map[string]any{
		"name": "Site", "status": "active", "developer": "Kim",
	}, token)
	requireStatus(t, http.StatusBadRequest, w)
	assert.Equal(t, "projectId is required", decodeError(t, w).Message)

	w = env.do(t, http.MethodPost, "/api/update-project", map[string]any{
		"projectId": "does-not-exist", "name": "Site", "status": "active", "developer": "Kim",
	}, token)
	requireStatus(t, http.StatusNotFound, w)
	assert.Equal(t, "Project not found", decodeError(t, w).Message)
}
