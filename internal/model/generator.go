package model

import "github.com/passforge/passforge-go/internal/crypto"

// GenerateRequest represents a password generation request. Pointer bools
// distinguish missing (nil -> default true) from explicit false. Lowercase
// letters are always included and have no flag.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
	Count     int   `json:"count"`
}

// GeneratedPassword is a single generated password with its strength report.
type GeneratedPassword struct {
	Password string          `json:"password"`
	Length   int             `json:"length"`
	Strength crypto.Strength `json:"strength"`
}

// GenerateResponse represents a password generation response. Warnings carry
// non-fatal request corrections, such as a length raised to the minimum.
type GenerateResponse struct {
	Passwords []GeneratedPassword `json:"passwords"`
	Warnings  []string            `json:"warnings,omitempty"`
}
