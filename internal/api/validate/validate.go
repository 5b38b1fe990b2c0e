package validate

import (
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Collect drops nil checks and returns nil when nothing failed.
func Collect(checks ...*ErrField) error {
	var errs Errs
	for _, c := range checks {
		if c != nil {
			errs = append(errs, *c)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Helpers
func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

func MinInt(field string, v, min int64) *ErrField {
	if v < min {
		return &ErrField{Field: field, Msg: "must be >= " + strconv.FormatInt(min, 10)}
	}
	return nil
}

func MaxLen(field, value string, max int) *ErrField {
	if utf8.RuneCountInString(value) > max {
		return &ErrField{Field: field, Msg: "must be at most " + strconv.Itoa(max) + " characters"}
	}
	return nil
}

func UUID(field, value string) *ErrField {
	if _, err := uuid.Parse(value); err != nil {
		return &ErrField{Field: field, Msg: "must be a valid uuid"}
	}
	return nil
}

// Email accepts an empty value; use Required alongside when it is mandatory.
func Email(field, value string) *ErrField {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || !strings.Contains(value[strings.LastIndex(value, "@"):], ".") {
		return &ErrField{Field: field, Msg: "invalid email"}
	}
	return nil
}

// Phone requires 10 to 13 digits once formatting characters are removed.
func Phone(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	if !phoneChars.MatchString(value) {
		return &ErrField{Field: field, Msg: "invalid phone"}
	}
	n := len(Digits(value))
	if n < 10 || n > 13 {
		return &ErrField{Field: field, Msg: "invalid phone"}
	}
	return nil
}

// OptionalPhone validates only when a value is present.
func OptionalPhone(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return Phone(field, value)
}

func OneOf(field, value string, allowed ...string) *ErrField {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &ErrField{Field: field, Msg: "must be one of " + strings.Join(allowed, ", ")}
}

var phoneChars = regexp.MustCompile(`^\+?[0-9 ().-]+$`)

// Digits strips everything but 0-9.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone keeps a leading + and the digits.
func NormalizePhone(s string) string {
	s = strings.TrimSpace(s)
	d := Digits(s)
	if strings.HasPrefix(s, "+") {
		return "+" + d
	}
	return d
}

// OptionalString trims s and returns nil when it is empty.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
