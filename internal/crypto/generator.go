package crypto

import "errors"

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// MinLength is the floor every generated password is raised to.
	// Shorter requests are corrected, not rejected.
	MinLength = 8
)

// ErrNoCharacterClasses is returned if the active alphabet would be empty.
// Lowercase is always enabled, so this cannot happen with the current flag
// set; the guard stays in case the defaults ever change.
var ErrNoCharacterClasses = errors.New("no character classes enabled")

// Options configures the password generator. Lowercase letters are always
// included; the flags add further character classes.
type Options struct {
	Length    int
	Uppercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns sensible defaults: 16 characters with all classes
// enabled.
func DefaultOptions() Options {
	return Options{
		Length:    16,
		Uppercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Generate creates a cryptographically secure random password. The result
// contains at least one character from every enabled class and is exactly
// opts.Length characters long (raised to MinLength if shorter).
func Generate(opts Options) (string, error) {
	return generate(opts, cryptoSource{})
}

func generate(opts Options, src Source) (string, error) {
	length := opts.Length
	if length < MinLength {
		length = MinLength
	}

	// Fixed class order keeps the pool layout stable across calls.
	classes := []struct {
		alphabet string
		enabled  bool
	}{
		{lowercaseChars, true},
		{uppercaseChars, opts.Uppercase},
		{digitChars, opts.Numbers},
		{symbolChars, opts.Symbols},
	}

	var pool string
	password := make([]byte, 0, length)

	// One guaranteed draw per enabled class. The fill below alone would not
	// guarantee coverage at short lengths.
	for _, c := range classes {
		if !c.enabled {
			continue
		}
		pool += c.alphabet
		ch, err := randChar(src, c.alphabet)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}

	if pool == "" {
		return "", ErrNoCharacterClasses
	}

	for len(password) < length {
		ch, err := randChar(src, pool)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}

	// Mix the guaranteed characters out of their fixed leading positions.
	if err := shuffle(src, password); err != nil {
		return "", err
	}

	return string(password), nil
}

// randChar picks one character from alphabet, uniformly.
func randChar(src Source, alphabet string) (byte, error) {
	i, err := src.IntN(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}
