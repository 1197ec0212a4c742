package service

import (
	"context"
	"errors"
	"time"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
)

var (
	ErrLabelRequired         = errors.New("label is required")
	ErrVaultPasswordRequired = errors.New("password is required")
	ErrCredentialNotFound    = errors.New("credential not found")
)

// VaultService handles saved-credential business logic. Passwords are sealed
// before they reach the repository and their strength is snapshotted so the
// audit endpoint never needs to decrypt anything.
type VaultService struct {
	repo   *repository.CredentialRepository
	sealer *crypto.Sealer
}

// NewVaultService creates a new VaultService.
func NewVaultService(repo *repository.CredentialRepository, sealer *crypto.Sealer) *VaultService {
	return &VaultService{repo: repo, sealer: sealer}
}

// Create evaluates, seals and stores a new credential for a user.
func (s *VaultService) Create(ctx context.Context, userID int64, req model.CredentialRequest) (model.CredentialResponse, error) {
	if req.Label == "" {
		return model.CredentialResponse{}, ErrLabelRequired
	}
	if req.Password == "" {
		return model.CredentialResponse{}, ErrVaultPasswordRequired
	}

	strength := crypto.Evaluate(req.Password)

	sealed, err := s.sealer.Seal(req.Password)
	if err != nil {
		return model.CredentialResponse{}, err
	}

	cred := model.Credential{
		UserID:   userID,
		Label:    req.Label,
		Username: req.Username,
		Sealed:   sealed,
		Score:    strength.Score,
		Rating:   strength.Rating,
	}

	if err := s.repo.Create(ctx, &cred); err != nil {
		return model.CredentialResponse{}, err
	}
	cred.CreatedAt = time.Now().UTC()
	cred.UpdatedAt = cred.CreatedAt

	return credentialToResponse(cred), nil
}

// Update re-evaluates, re-seals and overwrites an existing credential.
func (s *VaultService) Update(ctx context.Context, userID, credentialID int64, req model.CredentialRequest) (model.CredentialResponse, error) {
	if req.Label == "" {
		return model.CredentialResponse{}, ErrLabelRequired
	}
	if req.Password == "" {
		return model.CredentialResponse{}, ErrVaultPasswordRequired
	}

	strength := crypto.Evaluate(req.Password)

	sealed, err := s.sealer.Seal(req.Password)
	if err != nil {
		return model.CredentialResponse{}, err
	}

	cred := model.Credential{
		ID:       credentialID,
		UserID:   userID,
		Label:    req.Label,
		Username: req.Username,
		Sealed:   sealed,
		Score:    strength.Score,
		Rating:   strength.Rating,
	}

	if err := s.repo.Update(ctx, &cred); err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return model.CredentialResponse{}, ErrCredentialNotFound
		}
		return model.CredentialResponse{}, err
	}
	cred.UpdatedAt = time.Now().UTC()

	return credentialToResponse(cred), nil
}

// Reveal returns a single credential with its password decrypted.
func (s *VaultService) Reveal(ctx context.Context, userID, credentialID int64) (model.RevealResponse, error) {
	cred, err := s.repo.GetByID(ctx, userID, credentialID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return model.RevealResponse{}, ErrCredentialNotFound
		}
		return model.RevealResponse{}, err
	}

	password, err := s.sealer.Open(cred.Sealed)
	if err != nil {
		return model.RevealResponse{}, err
	}

	return model.RevealResponse{
		ID:       cred.ID,
		Label:    cred.Label,
		Username: cred.Username,
		Password: password,
	}, nil
}

// Delete soft-deletes a credential.
func (s *VaultService) Delete(ctx context.Context, userID, credentialID int64) error {
	err := s.repo.SoftDelete(ctx, userID, credentialID)
	if errors.Is(err, repository.ErrCredentialNotFound) {
		return ErrCredentialNotFound
	}
	return err
}

// List returns all non-deleted credentials for a user, without secrets.
func (s *VaultService) List(ctx context.Context, userID int64) ([]model.CredentialResponse, error) {
	creds, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return credentialsToResponse(creds), nil
}

// Audit summarizes the strength of a user's saved credentials using the
// snapshots captured at save time. Entries rated below Moderate are listed
// individually.
func (s *VaultService) Audit(ctx context.Context, userID int64) (model.AuditResponse, error) {
	creds, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return model.AuditResponse{}, err
	}

	audit := model.AuditResponse{
		Total:    len(creds),
		ByRating: make(map[crypto.Rating]int),
		Weak:     []model.CredentialResponse{},
	}

	for _, c := range creds {
		audit.ByRating[c.Rating]++
		if c.Rating == crypto.RatingVeryWeak || c.Rating == crypto.RatingWeak {
			audit.Weak = append(audit.Weak, credentialToResponse(c))
		}
	}

	return audit, nil
}

// credentialToResponse strips the sealed secret from a credential.
func credentialToResponse(c model.Credential) model.CredentialResponse {
	return model.CredentialResponse{
		ID:             c.ID,
		Label:          c.Label,
		Username:       c.Username,
		StrengthScore:  c.Score,
		StrengthRating: c.Rating,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// credentialsToResponse converts a slice of credentials for API responses.
func credentialsToResponse(creds []model.Credential) []model.CredentialResponse {
	result := make([]model.CredentialResponse, len(creds))
	for i, c := range creds {
		result[i] = credentialToResponse(c)
	}
	return result
}
