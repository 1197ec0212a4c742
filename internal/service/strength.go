package service

import (
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

// StrengthService handles password strength evaluation.
type StrengthService struct{}

// NewStrengthService creates a new StrengthService.
func NewStrengthService() *StrengthService {
	return &StrengthService{}
}

// Evaluate scores the given password. It never fails; any input, including
// the empty string, yields a well-formed report.
func (s *StrengthService) Evaluate(req model.StrengthRequest) crypto.Strength {
	return crypto.Evaluate(req.Password)
}
