package poker

import "fmt"

// ParseError reports a malformed card token.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid card %q: %s", e.Token, e.Reason)
}

// DuplicateCardError reports a card that appears more than once where
// cards must be unique.
type DuplicateCardError struct {
	Card Card
}

func (e *DuplicateCardError) Error() string {
	return fmt.Sprintf("duplicate card %s", e.Card)
}

// InvalidInputError reports a wrong cardinality or out-of-range value passed
// to a fixed-arity operation. It indicates a caller bug.
type InvalidInputError struct {
	Op   string
	Got  int
	Want string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: got %d, want %s", e.Op, e.Got, e.Want)
}

// InsufficientDeckError reports that the remaining deck cannot cover the
// opponents' hole cards plus the board completion.
type InsufficientDeckError struct {
	Available int
	Required  int
}

func (e *InsufficientDeckError) Error() string {
	return fmt.Sprintf("insufficient deck: %d cards remaining, %d required", e.Available, e.Required)
}

// ConfigurationError reports a simulation parameter outside its supported
// bounds.
type ConfigurationError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Reason)
}
