package domain

import "errors"

var (
	// ErrConceptFormat marks a concept-phase response that could not be
	// parsed into the expected designs array.
	ErrConceptFormat = errors.New("concept response was malformed")

	ErrOrderNotFound    = errors.New("souvenir order not found")
	ErrOrderNotReady    = errors.New("souvenir order has no generated ideas")
	ErrInvalidSelection = errors.New("selected index is out of range")
)

// User-facing messages for the two failure categories surfaced by the
// generator. Wording carried over from the storefront.
const (
	MsgConceptFormat = "Sorry, our AI designer had a creative block and couldn't format the ideas correctly. Please try again!"
	MsgGeneration    = "Sorry, we couldn't generate designs at this moment. Our AI might be busy dreaming up other ideas. Please try again!"
)

// UserMessage maps a generation failure to the message shown to the
// customer. Formatting failures get the friendlier category; everything
// else gets the generic retry suggestion.
func UserMessage(err error) string {
	if errors.Is(err, ErrConceptFormat) {
		return MsgConceptFormat
	}
	return MsgGeneration
}
