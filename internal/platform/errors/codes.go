// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Dice errors
	CodeDiceInvalidFaces   Code = "DICE_INVALID_FACES"
	CodeDiceInvalidAmount  Code = "DICE_INVALID_AMOUNT"
	CodeDiceAmountTooLarge Code = "DICE_AMOUNT_TOO_LARGE"

	// Random source errors
	CodeRandomUnavailable Code = "RANDOM_UNAVAILABLE"
)

// Kind classifies an error code for callers that branch on failure category.
type Kind string

const (
	KindInvalidArgument Kind = "InvalidArgument"
	KindInternal        Kind = "Internal"
)

// Kind maps domain codes to their failure category.
func (c Code) Kind() Kind {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeDiceInvalidFaces,
		CodeDiceInvalidAmount,
		CodeDiceAmountTooLarge:
		return KindInvalidArgument

	default:
		return KindInternal
	}
}
