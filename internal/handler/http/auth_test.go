package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MrK0xGT/insurance-crm/internal/logger"
	"github.com/MrK0xGT/insurance-crm/internal/service"
	"github.com/MrK0xGT/insurance-crm/internal/store"
	"github.com/MrK0xGT/insurance-crm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerAgentFn func(ctx context.Context, username, fullName, password string) (models.Agent, error)
	loginFn         func(ctx context.Context, username, password string) (models.Agent, error)
	createTokenFn   func(ctx context.Context, agent models.Agent) (models.Token, error)
	parseTokenFn    func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterAgent(ctx context.Context, username, fullName, password string) (models.Agent, error) {
	return m.registerAgentFn(ctx, username, fullName, password)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.Agent, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, agent models.Agent) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, agent)
	}
	return stubToken("signed.jwt.token"), nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// validRegister is a convenience fixture used across multiple tests.
var validRegister = models.RegisterRequest{
	Username:        "alice",
	FullName:        "Alice Agent",
	Password:        "password123",
	PasswordConfirm: "password123",
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		registerAgentFn: func(_ context.Context, username, fullName, _ string) (models.Agent, error) {
			return models.Agent{AgentID: 1, Username: username, FullName: fullName}, nil
		},
		createTokenFn: func(_ context.Context, _ models.Agent) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "Alice Agent", resp.FullName)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_PasswordConfirmationMismatch(t *testing.T) {
	serviceCalled := false
	auth := &mockAuthService{
		registerAgentFn: func(_ context.Context, _, _, _ string) (models.Agent, error) {
			serviceCalled = true
			return models.Agent{}, nil
		},
	}

	body := validRegister
	body.PasswordConfirm = "different-password"

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, body)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, serviceCalled, "mismatched confirmation must be rejected before the service")
}

func TestRegister_PasswordTooShort(t *testing.T) {
	body := validRegister
	body.Password = "12345"
	body.PasswordConfirm = "12345"

	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, body)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_UsernameTaken(t *testing.T) {
	auth := &mockAuthService{
		registerAgentFn: func(_ context.Context, _, _, _ string) (models.Agent, error) {
			return models.Agent{}, fmt.Errorf("agent creation ended with error: %w", store.ErrUsernameTaken)
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_TokenCreationFailure(t *testing.T) {
	auth := &mockAuthService{
		registerAgentFn: func(_ context.Context, username, fullName, _ string) (models.Agent, error) {
			return models.Agent{Username: username, FullName: fullName}, nil
		},
		createTokenFn: func(_ context.Context, _ models.Agent) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, username, _ string) (models.Agent, error) {
			return models.Agent{AgentID: 1, Username: username, FullName: "Alice Agent"}, nil
		},
		createTokenFn: func(_ context.Context, _ models.Agent) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.LoginRequest{Username: "alice", Password: "password123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Alice Agent", resp.FullName)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.Agent, error) {
			return models.Agent{}, service.ErrInvalidCredentials
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.LoginRequest{Username: "alice", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
