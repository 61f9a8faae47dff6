package validation

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxDelegateTextLength bounds the text forwarded to the completion service.
const MaxDelegateTextLength = 8000

var (
	// ErrProblemRequired is returned when the problem field is missing or blank.
	ErrProblemRequired = errors.New("problem text is required")

	// ErrTextRequired is returned when the delegated text field is missing or blank.
	ErrTextRequired = errors.New("text is required")

	// ErrTextTooLong is returned when the delegated text exceeds MaxDelegateTextLength runes.
	ErrTextTooLong = errors.New("text is too long")
)

// isBlank reports whether s holds only whitespace. U+FEFF counts as
// whitespace so a bare byte-order mark is rejected.
func isBlank(s string) bool {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	}) == ""
}

// ValidateProblem checks that a problem description has content once
// surrounding whitespace is removed. The original text is returned untouched.
func ValidateProblem(problem string) (string, error) {
	if isBlank(problem) {
		return "", ErrProblemRequired
	}
	return problem, nil
}

// ValidateText checks the text forwarded to the completion service.
func ValidateText(text string) (string, error) {
	if isBlank(text) {
		return "", ErrTextRequired
	}
	if utf8.RuneCountInString(text) > MaxDelegateTextLength {
		return "", ErrTextTooLong
	}
	return text, nil
}
