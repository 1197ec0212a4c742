package service

import (
	"errors"
	"fmt"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

// Request-validation caps. These bound the transport surface; the generator
// itself corrects lengths rather than rejecting them.
const (
	maxRequestLength = 256
	maxRequestCount  = 100
)

var (
	ErrLengthTooLong = errors.New("length must be at most 256")
	ErrTooManyCount  = errors.New("count must be at most 100")
)

// GeneratorService handles password generation business logic.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces one or more passwords based on the given request, each
// with its strength report attached. A requested length below the minimum is
// raised, and the correction is reported through the response warnings.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = 16
	}
	if length > maxRequestLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	count := req.Count
	if count < 1 {
		count = 1
	}
	if count > maxRequestCount {
		return model.GenerateResponse{}, ErrTooManyCount
	}

	var warnings []string
	if length < crypto.MinLength {
		warnings = append(warnings, fmt.Sprintf(
			"requested length %d is below the minimum; using %d", length, crypto.MinLength))
	}

	opts := crypto.Options{
		Length:    length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	passwords := make([]model.GeneratedPassword, 0, count)
	for i := 0; i < count; i++ {
		password, err := crypto.Generate(opts)
		if err != nil {
			return model.GenerateResponse{}, err
		}
		passwords = append(passwords, model.GeneratedPassword{
			Password: password,
			Length:   len(password),
			Strength: crypto.Evaluate(password),
		})
	}

	return model.GenerateResponse{
		Passwords: passwords,
		Warnings:  warnings,
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
