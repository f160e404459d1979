package location

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per failure reason. *Error unwraps to one of these.
var (
	ErrShape            = errors.New("subscript must have one dimension")
	ErrType             = errors.New("subscript has an unsupported type")
	ErrLength           = errors.New("logical subscript length must be 1 or equal to container size")
	ErrMixedSign        = errors.New("subscript mixes negative indices with other values")
	ErrNegativeIndex    = errors.New("negative indices are not allowed")
	ErrOutOfBounds      = errors.New("subscript out of bounds")
	ErrNameNotFound     = errors.New("subscript name not found")
	ErrUnnamedContainer = errors.New("can't use character to index an unnamed vector")
	ErrInvalidSize      = errors.New("container size must be non-negative")
)

// Reason classifies a resolution failure.
type Reason int

const (
	ReasonShape Reason = iota + 1
	ReasonType
	ReasonLength
	ReasonMixedSign
	ReasonNegativeIndex
	ReasonOutOfBounds
	ReasonNameNotFound
	ReasonUnnamedContainer
)

var reasonNames = map[Reason]string{
	ReasonShape:            "shape",
	ReasonType:             "type",
	ReasonLength:           "length",
	ReasonMixedSign:        "mixed_sign",
	ReasonNegativeIndex:    "negative_index",
	ReasonOutOfBounds:      "out_of_bounds",
	ReasonNameNotFound:     "name_not_found",
	ReasonUnnamedContainer: "unnamed_container",
}

var reasonSentinels = map[Reason]error{
	ReasonShape:            ErrShape,
	ReasonType:             ErrType,
	ReasonLength:           ErrLength,
	ReasonMixedSign:        ErrMixedSign,
	ReasonNegativeIndex:    ErrNegativeIndex,
	ReasonOutOfBounds:      ErrOutOfBounds,
	ReasonNameNotFound:     ErrNameNotFound,
	ReasonUnnamedContainer: ErrUnnamedContainer,
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}

	return fmt.Sprintf("Reason(%d)", int(r))
}

// ParseReason maps a snake_case reason name back to its Reason.
func ParseReason(s string) (Reason, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for r, name := range reasonNames {
		if name == s {
			return r, true
		}
	}

	return 0, false
}

// Category groups reasons by the stage that detects them.
type Category int

const (
	CategoryStructural Category = iota + 1
	CategoryConsistency
	CategoryBounds
	CategoryLookup
)

func (c Category) String() string {
	switch c {
	case CategoryStructural:
		return "structural"
	case CategoryConsistency:
		return "consistency"
	case CategoryBounds:
		return "bounds"
	case CategoryLookup:
		return "lookup"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Category returns the detection stage of the reason.
func (r Reason) Category() Category {
	switch r {
	case ReasonShape, ReasonType, ReasonLength:
		return CategoryStructural
	case ReasonMixedSign, ReasonNegativeIndex:
		return CategoryConsistency
	case ReasonOutOfBounds:
		return CategoryBounds
	default:
		return CategoryLookup
	}
}

// Error is a resolution failure together with the context needed to
// render a diagnostic for it.
type Error struct {
	Reason Reason
	// Subscript is the subscript as supplied by the caller.
	Subscript Vector
	// Size is the container size. Meaningful for bounds, sign and length failures.
	Size int
	// Names are the container names. Meaningful for lookup failures.
	Names Vector
	// Position is the 0-based index of the first offending element, or -1.
	Position int
	// Value is the offending element for sign and bounds failures.
	// NAInteger when the element is missing.
	Value  int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Unwrap().Error()
	}

	return fmt.Sprintf("%s: %s", e.Unwrap().Error(), e.Detail)
}

func (e *Error) Unwrap() error {
	if sentinel, ok := reasonSentinels[e.Reason]; ok {
		return sentinel
	}

	return ErrType
}

// AsError extracts a *Error from err.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}

	return nil, false
}

func newShapeError(subscript Vector, detail string) *Error {
	return &Error{Reason: ReasonShape, Subscript: subscript, Position: -1, Detail: detail}
}

func newTypeError(subscript Vector, position int, detail string) *Error {
	return &Error{Reason: ReasonType, Subscript: subscript, Position: position, Detail: detail}
}

func newLengthError(subscript Vector, size int) *Error {
	return &Error{
		Reason:    ReasonLength,
		Subscript: subscript,
		Size:      size,
		Position:  -1,
		Detail:    fmt.Sprintf("the vector has size %d whereas the subscript has size %d", size, subscript.Len()),
	}
}

func newMixedSignError(subscript Vector, size, position int, value int) *Error {
	detail := "negative and positive indices cannot be mixed"
	if value == NAInteger {
		detail = "negative indices cannot be mixed with missing values"
	}

	return &Error{Reason: ReasonMixedSign, Subscript: subscript, Size: size, Position: position, Value: value, Detail: detail}
}

// HasMissing reports whether a sign failure was caused by a missing element.
func (e *Error) HasMissing() bool {
	return e.Reason == ReasonMixedSign && e.Value == NAInteger
}

func newNegativeIndexError(subscript Vector, size, position int, value int) *Error {
	return &Error{
		Reason:    ReasonNegativeIndex,
		Subscript: subscript,
		Size:      size,
		Position:  position,
		Value:     value,
		Detail:    fmt.Sprintf("location %d is negative", value),
	}
}

func newOutOfBoundsError(subscript Vector, size, position int, value int) *Error {
	return &Error{
		Reason:    ReasonOutOfBounds,
		Subscript: subscript,
		Size:      size,
		Position:  position,
		Value:     value,
		Detail:    fmt.Sprintf("location %d doesn't exist in a vector of size %d", value, size),
	}
}

func newNameNotFoundError(subscript *Character, names Vector, position int) *Error {
	return &Error{
		Reason:    ReasonNameNotFound,
		Subscript: subscript,
		Names:     names,
		Position:  position,
		Detail:    fmt.Sprintf("element %q doesn't exist", subscript.Values[position].Value),
	}
}

func newUnnamedContainerError(subscript Vector) *Error {
	return &Error{Reason: ReasonUnnamedContainer, Subscript: subscript, Position: -1}
}
