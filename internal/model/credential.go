package model

import (
	"time"

	"github.com/passforge/passforge-go/internal/crypto"
)

// Credential represents a saved credential in the database. The password is
// stored sealed; Score and Rating are the strength snapshot captured when
// the password was last set.
type Credential struct {
	ID        int64
	UserID    int64
	Label     string
	Username  string
	Sealed    string
	Score     int
	Rating    crypto.Rating
	CreatedAt time.Time
	UpdatedAt time.Time
	Deleted   bool
}

// CredentialRequest represents a create or update request for a saved
// credential.
type CredentialRequest struct {
	Label    string `json:"label"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// CredentialResponse represents a saved credential without its secret.
type CredentialResponse struct {
	ID             int64         `json:"id"`
	Label          string        `json:"label"`
	Username       string        `json:"username"`
	StrengthScore  int           `json:"strength_score"`
	StrengthRating crypto.Rating `json:"strength_rating"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// RevealResponse represents a single credential with its decrypted password.
type RevealResponse struct {
	ID       int64  `json:"id"`
	Label    string `json:"label"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuditResponse summarizes the strength of every saved credential for a user.
type AuditResponse struct {
	Total    int                   `json:"total"`
	ByRating map[crypto.Rating]int `json:"by_rating"`
	Weak     []CredentialResponse  `json:"weak"`
}
