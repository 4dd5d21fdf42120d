package service

import (
	"github.com/MrK0xGT/insurance-crm/internal/config"
	"github.com/MrK0xGT/insurance-crm/internal/crypto"
	"github.com/MrK0xGT/insurance-crm/internal/logger"
	"github.com/MrK0xGT/insurance-crm/internal/store"
)

type Services struct {
	AuthService   AuthService
	ClientService ClientService
}

// NewServices wires the business layer: the credential vault and field
// cipher are constructed here from cfg and shared by the services for the
// process lifetime.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	cipher, err := crypto.NewFieldCipher(cfg.CipherKey)
	if err != nil {
		logger.Err(err).Msg("error creating field cipher")
		return nil, err
	}

	vault := crypto.NewCredentialVault()

	return &Services{
		AuthService:   NewAuthService(storages.AgentRepository, vault, cfg, logger),
		ClientService: NewClientService(storages.ClientRepository, cipher, logger),
	}, nil
}
