package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MrK0xGT/insurance-crm/internal/calendar"
	"github.com/MrK0xGT/insurance-crm/internal/crypto"
	"github.com/MrK0xGT/insurance-crm/internal/logger"
	"github.com/MrK0xGT/insurance-crm/internal/status"
	"github.com/MrK0xGT/insurance-crm/internal/store"
	"github.com/MrK0xGT/insurance-crm/models"
)

// clientService is the concrete implementation of ClientService.
//
// It sits between the transport layer and the tenant-scoped repository:
// plaintext PII is encrypted here on the way down and decrypted here on the
// way up, so ciphertext is the only form that crosses the store boundary.
// The owner username is an explicit parameter on every method and is
// attached to records before persistence.
type clientService struct {
	clientRepository store.ClientRepository
	cipher           crypto.FieldCipher

	// now returns the current time; replaced in tests to pin "today".
	now func() time.Time

	logger *logger.Logger
}

// NewClientService constructs a ClientService over the given repository and
// field cipher.
func NewClientService(clientRepository store.ClientRepository, cipher crypto.FieldCipher, logger *logger.Logger) ClientService {
	return &clientService{
		clientRepository: clientRepository,
		cipher:           cipher,
		now:              time.Now,
		logger:           logger,
	}
}

// CreateClient validates req, encrypts the name and plate fields, attaches
// owner, and persists the record.
//
// Name and plate are required; a missing insurance type defaults to
// mandatory coverage, an unknown one is rejected. Returns the
// store-assigned id or:
//   - ErrInvalidDataProvided on any validation failure.
//   - A wrapped encryption or storage error otherwise.
func (c *clientService) CreateClient(ctx context.Context, owner string, req models.CreateClientRequest) (int64, error) {
	log := logger.FromContext(ctx)

	if owner == "" {
		log.Error().Msg("no owner provided for client record creation")
		return 0, ErrInvalidDataProvided
	}

	if req.Name == "" || req.Plate == "" {
		log.Error().Str("owner", owner).Msg("client name and plate are required")
		return 0, ErrInvalidDataProvided
	}

	insuranceType := req.InsuranceType
	if insuranceType == "" {
		insuranceType = models.InsuranceMandatory
	}
	if !insuranceType.Valid() {
		log.Error().Str("owner", owner).Str("insurance_type", string(req.InsuranceType)).Msg("unknown insurance type")
		return 0, ErrInvalidDataProvided
	}

	encryptedName, err := c.cipher.Encrypt(req.Name)
	if err != nil {
		log.Err(err).Str("owner", owner).Msg("encrypting client name failed")
		return 0, fmt.Errorf("encrypting client record failed: %w", err)
	}

	encryptedPlate, err := c.cipher.Encrypt(req.Plate)
	if err != nil {
		log.Err(err).Str("owner", owner).Msg("encrypting client plate failed")
		return 0, fmt.Errorf("encrypting client record failed: %w", err)
	}

	record := models.ClientRecord{
		AgentUsername:  owner,
		EncryptedName:  encryptedName,
		EncryptedPlate: encryptedPlate,
		Phone:          req.Phone,
		InsuranceType:  insuranceType,
		ExpiryDate:     req.ExpiryDate,
		Notes:          req.Notes,
	}

	id, err := c.clientRepository.CreateClient(ctx, record)
	if err != nil {
		log.Err(err).Str("owner", owner).Msg("client record creation ended with error")
		return 0, fmt.Errorf("client record creation ended with error: %w", err)
	}

	return id, nil
}

// ListClients returns owner's records sorted by expiry date ascending,
// decrypted and annotated with the day-count to expiry and the urgency
// classification, both recomputed against "today" on every call.
//
// A non-empty searchTerm narrows the result to records whose decrypted name
// or plate contains the term (case-sensitive); an empty term returns the
// full set unchanged. A record whose ciphertext fails its integrity check
// degrades to the decryption sentinel in the affected field instead of
// failing the listing.
//
// On a store read failure the response still carries an empty, non-nil
// record set alongside the wrapped error, so the transport layer can render
// "no data" plus a warning rather than abort.
func (c *clientService) ListClients(ctx context.Context, owner, searchTerm string) (models.ListClientsResponse, error) {
	log := logger.FromContext(ctx)

	empty := models.ListClientsResponse{Clients: []models.ClientView{}}

	if owner == "" {
		log.Error().Msg("no owner provided for client record listing")
		return empty, ErrInvalidDataProvided
	}

	records, err := c.clientRepository.GetClientsByAgent(ctx, owner)
	if err != nil {
		log.Err(err).Str("owner", owner).Msg("listing client records failed")
		return empty, fmt.Errorf("listing client records failed: %w", err)
	}

	today := models.DateOf(c.now())

	views := make([]models.ClientView, 0, len(records))
	expiringSoon := 0

	for _, record := range records {
		view := models.ClientView{
			ID:            record.ID,
			Name:          c.cipher.Decrypt(record.EncryptedName),
			Plate:         c.cipher.Decrypt(record.EncryptedPlate),
			Phone:         record.Phone,
			InsuranceType: record.InsuranceType,
			ExpiryDate:    record.ExpiryDate,
			Notes:         record.Notes,
		}
		view.DaysLeft, view.Status = status.Evaluate(record.ExpiryDate, today)
		view.RenewalReminderURL = calendar.RenewalReminderLink(view.Name, record.ExpiryDate, record.InsuranceType)

		if !matchesSearch(view, searchTerm) {
			continue
		}

		if view.Status != models.StatusOK {
			expiringSoon++
		}

		views = append(views, view)
	}

	return models.ListClientsResponse{
		Clients:      views,
		ExpiringSoon: expiringSoon,
	}, nil
}

// DeleteClient removes one record owned by owner.
//
// Ownership is enforced inside the delete predicate: an id belonging to a
// different agent is reported as not found, the same as an absent id.
func (c *clientService) DeleteClient(ctx context.Context, owner string, id int64) error {
	log := logger.FromContext(ctx)

	if owner == "" || id == 0 {
		log.Error().Str("owner", owner).Int64("id", id).Msg("invalid delete request")
		return ErrInvalidDataProvided
	}

	if err := c.clientRepository.DeleteClient(ctx, id, owner); err != nil {
		log.Err(err).Str("owner", owner).Int64("id", id).Msg("client record deletion ended with error")
		return fmt.Errorf("client record deletion ended with error: %w", err)
	}

	return nil
}

// matchesSearch applies the in-memory substring filter over the decrypted
// fields. Ciphertext is never searched directly.
func matchesSearch(view models.ClientView, searchTerm string) bool {
	if searchTerm == "" {
		return true
	}

	return strings.Contains(view.Name, searchTerm) || strings.Contains(view.Plate, searchTerm)
}
