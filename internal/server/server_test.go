package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallek/compass/internal/domain"
	"github.com/jmallek/compass/internal/repository"
	"github.com/jmallek/compass/internal/scenario"
	"github.com/jmallek/compass/internal/service"
	"github.com/jmallek/compass/internal/testutil"
)

type fixture struct {
	handler http.Handler
	users   repository.UserRepo
	admin   *domain.User
	member  *domain.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	conn := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(conn)
	ctx := context.Background()

	admin := testutil.NewTestUser("admin@example.com", domain.RoleAdmin)
	member := testutil.NewTestUser("member@example.com", domain.RoleMember)
	member.Status = domain.UserPending
	require.NoError(t, users.Create(ctx, admin))
	require.NoError(t, users.Create(ctx, member))

	adminSvc := service.NewAdminService(users)
	engine := scenario.NewEngine(nil, nil)
	srv := New(Config{Prefix: "api"}, adminSvc, engine, nil)

	return &fixture{handler: srv.Handler(), users: users, admin: admin, member: member}
}

func (f *fixture) post(t *testing.T, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestAdminUsers_Approve(t *testing.T) {
	f := newFixture(t)

	rec := f.post(t, "/api/admin/users", f.admin.APIToken, AdminUsersRequest{
		Action: "approve",
		UserID: f.member.ID,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "approve")

	got, err := f.users.GetByID(context.Background(), f.member.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserApproved, got.Status)
}

func TestAdminUsers_Delete(t *testing.T) {
	f := newFixture(t)

	rec := f.post(t, "/api/admin/users", f.admin.APIToken, AdminUsersRequest{
		Action: "delete",
		UserID: f.member.ID,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := f.users.GetByID(context.Background(), f.member.ID)
	assert.Error(t, err)
}

func TestAdminUsers_MissingToken(t *testing.T) {
	f := newFixture(t)
	rec := f.post(t, "/api/admin/users", "", AdminUsersRequest{Action: "approve", UserID: f.member.ID})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminUsers_BadToken(t *testing.T) {
	f := newFixture(t)
	rec := f.post(t, "/api/admin/users", "bogus", AdminUsersRequest{Action: "approve", UserID: f.member.ID})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminUsers_NonAdminForbidden(t *testing.T) {
	f := newFixture(t)

	rec := f.post(t, "/api/admin/users", f.member.APIToken, AdminUsersRequest{
		Action: "approve",
		UserID: f.member.ID,
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestAdminUsers_UnknownAction(t *testing.T) {
	f := newFixture(t)
	rec := f.post(t, "/api/admin/users", f.admin.APIToken, AdminUsersRequest{
		Action: "promote",
		UserID: f.member.ID,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminUsers_InvalidBody(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users", bytes.NewReader([]byte("{broken")))
	req.Header.Set("Authorization", "Bearer "+f.admin.APIToken)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminUsers_MethodNotAllowed(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSuggest_ReturnsRuleTableSuggestions(t *testing.T) {
	f := newFixture(t)

	var req SuggestRequest
	req.Query = "we need to go faster"
	req.Context.BudgetPct = 80
	rec := f.post(t, "/api/ai/suggest", f.member.APIToken, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp SuggestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, "acceleration", resp.Suggestions[0].Strategy)
	for _, sg := range resp.Suggestions {
		assert.NotEmpty(t, sg.ID)
		assert.GreaterOrEqual(t, sg.Confidence, 0.5)
		assert.LessOrEqual(t, sg.Confidence, 0.9)
	}
}

func TestSuggest_RequiresQuery(t *testing.T) {
	f := newFixture(t)
	rec := f.post(t, "/api/ai/suggest", f.member.APIToken, SuggestRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSuggest_RequiresAuth(t *testing.T) {
	f := newFixture(t)
	var req SuggestRequest
	req.Query = "anything"
	rec := f.post(t, "/api/ai/suggest", "", req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
