package deck

import (
	"fmt"
	"strings"
)

// FieldError is one structural violation found during validation, located
// by a path into the document such as "slides[2].blocks[0].value".
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// ValidationError aggregates every structural violation found in a deck
// document. Validation never stops at the first problem, so a caller can
// fix the whole document in one pass.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "deck validation failed with %d error(s):", len(e.Errors))
	for _, fe := range e.Errors {
		b.WriteString("\n- ")
		b.WriteString(fe.String())
	}
	return b.String()
}
