package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MrK0xGT/insurance-crm/internal/logger"
	"github.com/MrK0xGT/insurance-crm/internal/service"
	"github.com/MrK0xGT/insurance-crm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires a full router over mocked services so requests travel
// through the real middleware chain.
func newTestRouter(t *testing.T, auth service.AuthService, clients service.ClientService) http.Handler {
	t.Helper()

	svcs := &service.Services{
		AuthService:   auth,
		ClientService: clients,
	}
	return NewHandler(svcs, logger.Nop()).Init()
}

func TestRouter_OpenRoutesReachableWithoutToken(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, username, _ string) (models.Agent, error) {
			return models.Agent{Username: username}, nil
		},
	}
	router := newTestRouter(t, auth, &mockClientService{})

	body := jsonBody(t, models.LoginRequest{Username: "alice", Password: "password123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ClientRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t, &mockAuthService{}, &mockClientService{})

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_TokenIdentityReachesHandlers(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			require.Equal(t, "valid.jwt.token", tokenString)
			return models.Token{Username: "alice"}, nil
		},
	}

	var gotOwner string
	clients := &mockClientService{
		listClientsFn: func(_ context.Context, owner, _ string) (models.ListClientsResponse, error) {
			gotOwner = owner
			return models.ListClientsResponse{Clients: []models.ClientView{}}, nil
		},
	}

	router := newTestRouter(t, auth, clients)

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", gotOwner, "the verified token subject is the tenant key for the listing")
}

func TestRouter_TraceIDHeaderAttached(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, username, _ string) (models.Agent, error) {
			return models.Agent{Username: username}, nil
		},
	}
	router := newTestRouter(t, auth, &mockClientService{})

	body := jsonBody(t, models.LoginRequest{Username: "alice", Password: "password123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}
