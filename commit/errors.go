package commit

import "fmt"

// ErrorKind classifies parse failures.
type ErrorKind int

const (
	_ ErrorKind = iota

	// ErrMissingHeader means the input was empty or contained no header
	// line at all.
	ErrMissingHeader
	// ErrMalformedHeader means the first line did not match
	// "type[(scope)][!]: description".
	ErrMalformedHeader
	// ErrMissingBlankLine means content followed the header without the
	// mandatory blank line in between.
	ErrMissingBlankLine
	// ErrInvalidSeparator means a footer separator was constructed from
	// a literal that is neither ": " nor " #".
	ErrInvalidSeparator
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMissingHeader:
		return "missing header"
	case ErrMalformedHeader:
		return "malformed header"
	case ErrMissingBlankLine:
		return "missing blank line"
	case ErrInvalidSeparator:
		return "invalid footer separator"
	case 0:
		return "<INVALID>"
	default:
		return "<UNKNOWN>"
	}
}

// ParseError describes where and why recognition failed. Offset is a
// byte offset into the original input; Line and Column are 1-based.
// Context holds the offending fragment.
type ParseError struct {
	Kind    ErrorKind
	Offset  int
	Line    int
	Column  int
	Context string
	reason  string
}

func (e *ParseError) Error() string {
	msg := e.Kind.String()
	if e.reason != "" {
		msg += ": " + e.reason
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("%s at line %d, column %d", msg, e.Line, e.Column)
	}
	if e.Context != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Context)
	}
	return "commit: " + msg
}

// Is supports errors.Is matching on the error kind.
func (e *ParseError) Is(other error) bool {
	pe, ok := other.(*ParseError)
	if !ok {
		return false
	}
	return pe.Kind == 0 || pe.Kind == e.Kind
}

func headerError(offset int, context, reason string) *ParseError {
	return &ParseError{
		Kind:    ErrMalformedHeader,
		Offset:  offset,
		Line:    1,
		Column:  offset + 1,
		Context: context,
		reason:  reason,
	}
}
