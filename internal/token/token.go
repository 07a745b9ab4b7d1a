package token

import (
	"fmt"
	"strings"
)

// Policy selects the word-boundary rule used when extracting tokens.
type Policy int

const (
	// AlphanumericUnderscore treats maximal runs of letters, numbers and
	// underscores as words.
	AlphanumericUnderscore Policy = iota
	// AlphabeticOnly treats maximal runs of letters as words.
	AlphabeticOnly
)

func (p Policy) String() string {
	switch p {
	case AlphabeticOnly:
		return "alphabetic"
	default:
		return "alphanumeric"
	}
}

// MarshalJSON encodes the policy by name so settings files stay readable.
func (p Policy) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

func (p *Policy) UnmarshalJSON(data []byte) error {
	parsed, err := ParsePolicy(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "alphanumeric", "alphanumeric_underscore":
		return AlphanumericUnderscore, nil
	case "alphabetic", "alphabetic_only":
		return AlphabeticOnly, nil
	}
	return AlphanumericUnderscore, fmt.Errorf("unknown word boundary policy: %q", s)
}

// Token is a word span in the original buffer. Start and End are byte
// offsets; Canonical is the lowercased form used as the counting key.
type Token struct {
	Start     int
	End       int
	Canonical string
}

// Result is the outcome of one tokenization pass.
type Result struct {
	Words             []Token
	Sentences         int
	Paragraphs        int
	Characters        int
	CharactersNoSpace int
}

// Canonicals returns the canonical word stream in text order.
func (r Result) Canonicals() []string {
	out := make([]string, len(r.Words))
	for i, w := range r.Words {
		out[i] = w.Canonical
	}
	return out
}

// Scanner tokenizes a text buffer. Implementations must be pure: the same
// text and policy always produce the same Result, scanned left to right.
type Scanner interface {
	Name() string
	Scan(text string, policy Policy) Result
}
