package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

func TestHandleGenerate(t *testing.T) {
	h := NewGeneratorHandler(service.NewGeneratorService())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate",
		strings.NewReader(`{"length": 20, "count": 2}`))
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (%s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp model.GenerateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Passwords) != 2 {
		t.Fatalf("expected 2 passwords, got %d", len(resp.Passwords))
	}
	for _, p := range resp.Passwords {
		if len(p.Password) != 20 {
			t.Errorf("password length = %d, want 20", len(p.Password))
		}
		if p.Strength.Rating == "" {
			t.Error("expected a strength rating on each generated password")
		}
	}
}

func TestHandleGenerate_EmptyBody(t *testing.T) {
	h := NewGeneratorHandler(service.NewGeneratorService())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp model.GenerateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Passwords) != 1 || resp.Passwords[0].Length != 16 {
		t.Errorf("expected one password of default length 16, got %+v", resp.Passwords)
	}
}

func TestHandleGenerate_ShortLengthWarns(t *testing.T) {
	h := NewGeneratorHandler(service.NewGeneratorService())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate",
		strings.NewReader(`{"length": 3}`))
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp model.GenerateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Passwords[0].Length != crypto.MinLength {
		t.Errorf("length = %d, want %d", resp.Passwords[0].Length, crypto.MinLength)
	}
	if len(resp.Warnings) == 0 {
		t.Error("expected a warning for the clamped length")
	}
}

func TestHandleGenerate_InvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"length":`},
		{"count too high", `{"count": 1000}`},
		{"length too high", `{"length": 100000}`},
	}

	h := NewGeneratorHandler(service.NewGeneratorService())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.HandleGenerate(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestHandleEvaluate(t *testing.T) {
	h := NewStrengthHandler(service.NewStrengthService())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/strength",
		strings.NewReader(`{"password": "Ab3!Ab3!Ab3!Ab3!Ab3!"}`))
	rec := httptest.NewRecorder()

	h.HandleEvaluate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var result crypto.Strength
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if result.Score != crypto.MaxScore {
		t.Errorf("score = %d, want %d", result.Score, crypto.MaxScore)
	}
	if result.Rating != crypto.RatingExcellent {
		t.Errorf("rating = %q, want %q", result.Rating, crypto.RatingExcellent)
	}
}

func TestHandleEvaluate_EmptyPassword(t *testing.T) {
	h := NewStrengthHandler(service.NewStrengthService())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/strength",
		strings.NewReader(`{"password": ""}`))
	rec := httptest.NewRecorder()

	h.HandleEvaluate(rec, req)

	// Evaluation never fails; an empty password is simply Very Weak.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var result crypto.Strength
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if result.Score != 0 || result.Rating != crypto.RatingVeryWeak {
		t.Errorf("empty password scored %d (%q), want 0 (%q)",
			result.Score, result.Rating, crypto.RatingVeryWeak)
	}
}
