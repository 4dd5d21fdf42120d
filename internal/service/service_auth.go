package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MrK0xGT/insurance-crm/internal/config"
	"github.com/MrK0xGT/insurance-crm/internal/crypto"
	"github.com/MrK0xGT/insurance-crm/internal/logger"
	"github.com/MrK0xGT/insurance-crm/internal/store"
	"github.com/MrK0xGT/insurance-crm/internal/utils"
	"github.com/MrK0xGT/insurance-crm/models"
)

// authService is the concrete implementation of AuthService.
// It handles agent registration, credential verification, and JWT token
// lifecycle using an AgentRepository for persistence and the credential
// vault for password hashing.
type authService struct {
	// agentRepository is the data-access layer used to create and look up agents.
	agentRepository store.AgentRepository

	// vault derives and verifies the salted one-way password hashes.
	vault crypto.CredentialVault

	// tokenSignKey is the HMAC secret used to sign and verify session JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repository
// and credential vault, populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(agentRepository store.AgentRepository, vault crypto.CredentialVault, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		agentRepository: agentRepository,
		vault:           vault,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		logger:          logger,
	}
}

// RegisterAgent creates a new agent account.
//
// It validates that username and password are non-empty, derives a salted
// hash of the password, and delegates persistence to the AgentRepository.
// The plaintext password is never stored and never logged.
//
// Returns the persisted agent (with a server-assigned AgentID) or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the repository call fails (in particular
//     store.ErrUsernameTaken when the username is already registered; the
//     failed call leaves the store unchanged).
func (a *authService) RegisterAgent(ctx context.Context, username, fullName, password string) (models.Agent, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid registration data provided")
		return models.Agent{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.vault.HashPassword(password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("password hashing failed")
		return models.Agent{}, fmt.Errorf("password hashing failed: %w", err)
	}

	agent := models.Agent{
		Username:     username,
		FullName:     fullName,
		PasswordHash: passwordHash,
	}

	registeredAgent, err := a.agentRepository.CreateAgent(ctx, agent)
	if err != nil {
		log.Err(err).Str("username", username).Msg("agent creation ended with error")
		return models.Agent{}, fmt.Errorf("agent creation ended with error: %w", err)
	}

	return registeredAgent, nil
}

// Login authenticates an existing agent.
//
// It looks up the account by username and verifies the presented password
// against the stored hash. An unknown username and a wrong password are
// indistinguishable to the caller: both return ErrInvalidCredentials, so
// the response does not reveal whether a username is registered.
//
// Returns the authenticated agent record (including FullName for display) or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrInvalidCredentials on any authentication failure.
//   - A wrapped storage error if the lookup fails for a non-auth reason.
func (a *authService) Login(ctx context.Context, username, password string) (models.Agent, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.Agent{}, ErrInvalidDataProvided
	}

	foundAgent, err := a.agentRepository.FindAgentByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrAgentNotFound) {
			log.Warn().Str("username", username).Msg("login attempt for unknown username")
			return models.Agent{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", username).Msg("agent search by username failed")
		return models.Agent{}, fmt.Errorf("agent search by username failed: %w", err)
	}

	if !a.vault.VerifyPassword(password, foundAgent.PasswordHash) {
		log.Warn().
			Int64("id", foundAgent.AgentID).
			Str("username", foundAgent.Username).
			Msg("wrong password")
		return models.Agent{}, ErrInvalidCredentials
	}

	return foundAgent, nil
}

// CreateToken issues a signed JWT for the given agent.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the agent's username as the "sub" claim,
// and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, agent models.Agent) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, agent.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
