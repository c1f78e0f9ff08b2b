package domain

import "fmt"

// OutcomeKind identifies which variant of Outcome is active
type OutcomeKind int

const (
	OutcomeEmpty OutcomeKind = iota
	OutcomeInvalid
	OutcomeValid
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeEmpty:
		return "empty"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeValid:
		return "valid"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// InvalidReason classifies a rejected input
type InvalidReason int

const (
	ReasonNone InvalidReason = iota
	ReasonNotAnInteger
	ReasonNotPositive
	ReasonExceedsMaximum
)

func (r InvalidReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonNotAnInteger:
		return "not-an-integer"
	case ReasonNotPositive:
		return "not-positive"
	case ReasonExceedsMaximum:
		return "exceeds-maximum"
	default:
		return fmt.Sprintf("InvalidReason(%d)", int(r))
	}
}

// NoBound is the sentinel bound used whenever the outcome is not valid
const NoBound = 0

// Outcome is the result of validating raw input against a maximum.
// Exactly one of the variants is active, selected by Kind.
type Outcome struct {
	Kind    OutcomeKind
	Reason  InvalidReason // set when Kind == OutcomeInvalid
	Bound   int           // set when Kind == OutcomeValid
	Maximum int           // the maximum the input was checked against
}

// Empty returns the outcome for blank input
func Empty(maximum int) Outcome {
	return Outcome{Kind: OutcomeEmpty, Maximum: maximum}
}

// Invalid returns a rejection outcome
func Invalid(reason InvalidReason, maximum int) Outcome {
	return Outcome{Kind: OutcomeInvalid, Reason: reason, Maximum: maximum}
}

// Valid returns an accepted outcome carrying the bound
func Valid(bound, maximum int) Outcome {
	return Outcome{Kind: OutcomeValid, Bound: bound, Maximum: maximum}
}

// IsValid reports whether the outcome carries a bound
func (o Outcome) IsValid() bool {
	return o.Kind == OutcomeValid
}

// EffectiveBound returns the bound, or NoBound if the outcome is not valid
func (o Outcome) EffectiveBound() int {
	if o.Kind != OutcomeValid {
		return NoBound
	}
	return o.Bound
}

// Message returns the user-facing error text. Empty and valid outcomes have none.
func (o Outcome) Message() string {
	if o.Kind != OutcomeInvalid {
		return ""
	}
	switch o.Reason {
	case ReasonExceedsMaximum:
		return fmt.Sprintf("Please enter a number less than or equal to %d.", o.Maximum)
	default:
		return "Please enter a valid positive integer."
	}
}

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeValid:
		return fmt.Sprintf("valid(%d)", o.Bound)
	case OutcomeInvalid:
		return fmt.Sprintf("invalid(%s)", o.Reason)
	default:
		return o.Kind.String()
	}
}
