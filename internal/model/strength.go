package model

// StrengthRequest represents a strength evaluation request. Any string is
// evaluable, including the empty string.
type StrengthRequest struct {
	Password string `json:"password"`
}
