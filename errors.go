package setskema

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic codes (exported consts for IDE completion and type safety by
// convention). The literal strings are a stable contract with hosts.
const (
	CodeInvalidVersion          = "INVALID_VERSION"
	CodeMissingPages            = "MISSING_PAGES"
	CodeMissingRequiredField    = "MISSING_REQUIRED_FIELD"
	CodeDuplicateKey            = "DUPLICATE_KEY"
	CodeInvalidVisibilityRef    = "INVALID_VISIBILITY_REF"
	CodeCompoundFieldDotKey     = "COMPOUND_FIELD_DOT_KEY"
	CodeEmptyOptions            = "EMPTY_OPTIONS"
	CodeDuplicateOptionValue    = "DUPLICATE_OPTION_VALUE"
	CodeInvalidDefault          = "INVALID_DEFAULT"
	CodeInvalidRepeatableConfig = "INVALID_REPEATABLE_CONFIG"
	CodeInvalidPattern          = "INVALID_PATTERN"
	CodeInvalidCompoundRule     = "INVALID_COMPOUND_RULE"
)

// ValidationError is a single schema diagnostic. Path is a declaration-order
// locator such as "pages[0].sections[1].settings[2]".
type ValidationError struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrors is a collection of schema diagnostics that implements
// error. ValidateSchema returns it as data; it is never raised as a panic.
type ValidationErrors []ValidationError

// Error summarizes the first few diagnostics.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(ve)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		e := ve[i]
		// e.g. DUPLICATE_KEY at pages[2].sections[0].settings[1]
		fmt.Fprintf(b, "%s at %s", e.Code, e.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendErrors appends diagnostics to the destination, initializing the slice
// when needed.
func AppendErrors(dst ValidationErrors, more ...ValidationError) ValidationErrors {
	if dst == nil {
		dst = ValidationErrors{}
	}
	return append(dst, more...)
}

// AsValidationErrors extracts ValidationErrors from an error using errors.As.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	if err == nil {
		return nil, false
	}
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// errorAt builds a diagnostic at the given path.
func errorAt(path, code, message string) ValidationError {
	return ValidationError{Path: path, Code: code, Message: message}
}
