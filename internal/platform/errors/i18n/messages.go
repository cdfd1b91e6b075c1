package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeDiceInvalidFaces   = "DICE_INVALID_FACES"
	CodeDiceInvalidAmount  = "DICE_INVALID_AMOUNT"
	CodeDiceAmountTooLarge = "DICE_AMOUNT_TOO_LARGE"
	CodeRandomUnavailable  = "RANDOM_UNAVAILABLE"
)

var enUSMessages = map[Code]string{
	CodeDiceInvalidFaces:   "A die needs at least one face (got {{.Faces}})",
	CodeDiceInvalidAmount:  "The number of dice cannot be negative (got {{.Amount}})",
	CodeDiceAmountTooLarge: "Cannot roll {{.Amount}} dice at once; the limit is {{.Limit}}",
	CodeRandomUnavailable:  "Randomness is temporarily unavailable",
}

var ptBRMessages = map[Code]string{
	CodeDiceInvalidFaces:   "Um dado precisa de pelo menos uma face (recebido {{.Faces}})",
	CodeDiceInvalidAmount:  "A quantidade de dados não pode ser negativa (recebido {{.Amount}})",
	CodeDiceAmountTooLarge: "Não é possível rolar {{.Amount}} dados de uma vez; o limite é {{.Limit}}",
	CodeRandomUnavailable:  "Aleatoriedade temporariamente indisponível",
}
