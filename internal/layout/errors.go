package layout

import (
	"errors"
	"strconv"
	"strings"
)

// ErrorKind classifies layout errors.
type ErrorKind uint8

const (
	KindInvalidUnit      ErrorKind = iota + 1 // Unit not allowed for the property
	KindInvalidNumeric                        // NaN, infinite or out-of-range number
	KindInvalidEnum                           // Enumerated tag outside its range
	KindNotFound                              // Unknown or stale node, child index out of range
	KindNullHandle                            // Zero NodeID or nil receiver
	KindInvalidHierarchy                      // Self-parenting or a cycle
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidUnit:
		return "invalid unit"
	case KindInvalidNumeric:
		return "invalid numeric value"
	case KindInvalidEnum:
		return "invalid enum value"
	case KindNotFound:
		return "not found"
	case KindNullHandle:
		return "null handle"
	case KindInvalidHierarchy:
		return "invalid hierarchy"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is returned by every fallible operation in the package.
type Error struct {
	Kind     ErrorKind
	Op       string  // Operation that failed, e.g. "SetDimension"
	Property string  // Style property, when relevant
	Unit     Unit    // Offending unit for KindInvalidUnit
	Value    float64 // Offending number for KindInvalidNumeric / KindInvalidEnum
	Node     NodeID  // Offending node, when relevant
	Detail   string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("layout: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	if e.Property != "" {
		b.WriteString(e.Property)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	switch e.Kind {
	case KindInvalidUnit:
		b.WriteString(" ")
		b.WriteString(e.Unit.String())
	case KindInvalidNumeric, KindInvalidEnum:
		b.WriteString(" ")
		b.WriteString(strconv.FormatFloat(e.Value, 'g', -1, 64))
	case KindNotFound, KindNullHandle, KindInvalidHierarchy:
		if !e.Node.IsNull() {
			b.WriteString(" ")
			b.WriteString(e.Node.String())
		}
	}
	if e.Detail != "" {
		b.WriteString(" (")
		b.WriteString(e.Detail)
		b.WriteString(")")
	}
	return b.String()
}

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidUnit      = &Error{Kind: KindInvalidUnit}
	ErrInvalidNumeric   = &Error{Kind: KindInvalidNumeric}
	ErrInvalidEnum      = &Error{Kind: KindInvalidEnum}
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrNullHandle       = &Error{Kind: KindNullHandle}
	ErrInvalidHierarchy = &Error{Kind: KindInvalidHierarchy}
)

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
