package textscan

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention).
// The set is closed: every decode failure carries exactly one of these.
const (
	CodeEndOfInput  = "end_of_input"
	CodeConversion  = "conversion_failure"
	CodeUnsupported = "unsupported"
	CodeIO          = "io_error"
)

// Issue represents a single decode failure.
type Issue struct {
	Code    string // One of the codes listed above.
	Message string
	Offset  int64 // Byte offset in the input text (-1 when unknown).
	Cause   error // Optional: underlying error.
	// Feature names the unsupported capability for CodeUnsupported issues
	// (for example "struct enum variants").
	Feature string
}

// Issues is a collection of decode errors that implements error. Decoding is
// fail-fast, so a decode call normally reports a single issue; the slice form
// keeps the error model uniform for callers that aggregate across lines.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		if it.Message != "" {
			fmt.Fprintf(b, "%s: %s", it.Code, it.Message)
		} else {
			b.WriteString(it.Code)
		}
		if it.Offset >= 0 {
			fmt.Fprintf(b, " at offset %d", it.Offset)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the first cause for errors.Is/As chains.
func (iss Issues) Unwrap() error {
	for _, it := range iss {
		if it.Cause != nil {
			return it.Cause
		}
	}
	return nil
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ErrEndOfInput builds the end-of-input issue: a token was required but none
// remained at the given offset.
func ErrEndOfInput(offset int64) Issues {
	return Issues{{Code: CodeEndOfInput, Message: "unexpected end of input", Offset: offset}}
}

// ErrConversion builds the conversion issue for a token that could not be
// parsed into the requested scalar kind.
func ErrConversion(tok Token, want string, cause error) Issues {
	return Issues{{
		Code:    CodeConversion,
		Message: fmt.Sprintf("cannot parse %q as %s", tok.Text, want),
		Offset:  tok.Offset,
		Cause:   cause,
	}}
}

// ErrUnsupported builds the issue for a shape the format categorically cannot
// represent.
func ErrUnsupported(feature string) Issues {
	return Issues{{
		Code:    CodeUnsupported,
		Message: "decoding " + feature + " is not supported by this format",
		Offset:  -1,
		Feature: feature,
	}}
}

func errIO(err error) Issues {
	return Issues{{Code: CodeIO, Message: err.Error(), Offset: -1, Cause: err}}
}

func hasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// IsEndOfInput reports whether err carries an end_of_input issue.
func IsEndOfInput(err error) bool { return hasCode(err, CodeEndOfInput) }

// IsConversion reports whether err carries a conversion_failure issue.
func IsConversion(err error) bool { return hasCode(err, CodeConversion) }

// IsUnsupported reports whether err carries an unsupported issue.
func IsUnsupported(err error) bool { return hasCode(err, CodeUnsupported) }
