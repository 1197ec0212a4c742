package crypto

import (
	"fmt"
	"math"
	"strings"
)

// Rating is a qualitative strength band. The values are the exact wording
// shown to users; color and styling are left to the caller.
type Rating string

const (
	RatingVeryWeak  Rating = "Very Weak"
	RatingWeak      Rating = "Weak"
	RatingModerate  Rating = "Moderate"
	RatingStrong    Rating = "Strong"
	RatingExcellent Rating = "Excellent"
)

// MaxScore is the highest total a password can reach: 5 points for length,
// 4 for class diversity, 5 for entropy.
const MaxScore = 14

// Strength is the result of evaluating a single password.
type Strength struct {
	Score       int      `json:"score"`
	MaxScore    int      `json:"max_score"`
	Percentage  float64  `json:"percentage"`
	Rating      Rating   `json:"rating"`
	EntropyBits float64  `json:"entropy_bits"`
	Feedback    []string `json:"feedback"`
}

// Evaluate scores a password on a 0-14 scale from its length, the character
// classes it uses, and an entropy estimate. It is a pure function: any input
// is evaluable, the empty string scores zero, and rearranging a password's
// characters never changes the result.
func Evaluate(password string) Strength {
	var score int
	var feedback []string

	switch n := len(password); {
	case n >= 20:
		score += 5
		feedback = append(feedback, "Excellent length")
	case n >= 16:
		score += 4
		feedback = append(feedback, "Very good length")
	case n >= 12:
		score += 3
		feedback = append(feedback, "Good length")
	case n >= 10:
		score += 2
		feedback = append(feedback, "Moderate length")
	case n >= 8:
		score += 1
		feedback = append(feedback, "Minimum acceptable length")
	default:
		feedback = append(feedback, "Password too short")
	}

	// One point per class present. Checked in fixed order so feedback
	// ordering is stable.
	var alphabetSize int
	for _, c := range []struct {
		chars   string
		missing string
	}{
		{lowercaseChars, "Missing lowercase letters"},
		{uppercaseChars, "Missing uppercase letters"},
		{digitChars, "Missing numbers"},
		{symbolChars, "Missing special characters"},
	} {
		if strings.ContainsAny(password, c.chars) {
			score++
			alphabetSize += len(c.chars)
		} else {
			feedback = append(feedback, c.missing)
		}
	}

	// The estimate assumes each position was drawn uniformly from the union
	// of the classes observed in the password. It scores the classes
	// present, not the process that actually produced the string.
	var entropy float64
	if alphabetSize > 0 {
		entropy = float64(len(password)) * math.Log2(float64(alphabetSize))
	}

	switch {
	case entropy >= 100:
		score += 5
		feedback = append(feedback, fmt.Sprintf("Very high entropy (%.1f bits)", entropy))
	case entropy >= 80:
		score += 4
		feedback = append(feedback, fmt.Sprintf("High entropy (%.1f bits)", entropy))
	case entropy >= 60:
		score += 3
		feedback = append(feedback, fmt.Sprintf("Good entropy (%.1f bits)", entropy))
	case entropy >= 40:
		score += 2
		feedback = append(feedback, fmt.Sprintf("Moderate entropy (%.1f bits)", entropy))
	case entropy > 0:
		score++
		feedback = append(feedback, fmt.Sprintf("Low entropy (%.1f bits)", entropy))
	}

	percentage := float64(score) / MaxScore * 100

	var rating Rating
	switch {
	case percentage >= 90:
		rating = RatingExcellent
	case percentage >= 70:
		rating = RatingStrong
	case percentage >= 50:
		rating = RatingModerate
	case percentage >= 30:
		rating = RatingWeak
	default:
		rating = RatingVeryWeak
	}

	return Strength{
		Score:       score,
		MaxScore:    MaxScore,
		Percentage:  percentage,
		Rating:      rating,
		EntropyBits: entropy,
		Feedback:    feedback,
	}
}
