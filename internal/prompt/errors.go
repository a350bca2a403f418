package prompt

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	// CodeConfiguration marks input the form layer should have rejected.
	CodeConfiguration ErrorCode = "configuration"
	// CodeLookupGap marks an accepted key with no entry in its table. This is a data bug.
	CodeLookupGap ErrorCode = "lookup_gap"
)

// Error is returned by Validate, Assemble and RuleOptions.Resolve.
type Error struct {
	Code    ErrorCode
	Field   string
	Message string
}

// Sentinels for errors.Is; they match any *Error with the same code.
var (
	ErrConfiguration = &Error{Code: CodeConfiguration}
	ErrLookupGap     = &Error{Code: CodeLookupGap}
)

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && t.Field == "" && t.Message == ""
}

func configError(field, format string, args ...any) *Error {
	return &Error{Code: CodeConfiguration, Field: field, Message: fmt.Sprintf(format, args...)}
}

func lookupGap(field, key string) *Error {
	return &Error{Code: CodeLookupGap, Field: field, Message: fmt.Sprintf("no entry for %q", key)}
}

// AsError returns the first *Error in err's tree.
func AsError(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
