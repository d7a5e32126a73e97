package rules

import "errors"

// Sentinel errors reported by rule parsing and resolution. Callers match
// them with errors.Is.
var (
	// ErrInvalidRange marks a range whose bounds cannot produce any value,
	// such as a reversed or single-ended interval.
	ErrInvalidRange = errors.New("invalid color range")

	// ErrInvalidColorConfig marks a rule color that has neither a literal
	// hex value nor a complete basic+light range pair.
	ErrInvalidColorConfig = errors.New("invalid color config")

	// ErrMissingDefault marks a rule document without the mandatory
	// default and token_default entries.
	ErrMissingDefault = errors.New("missing default color config")

	// ErrAmbiguousTokenMatch marks a token scope that matched rules in
	// more than one area. Areas partition token rules, so this indicates
	// a malformed document rather than a normal resolution failure.
	ErrAmbiguousTokenMatch = errors.New("ambiguous token match")
)
