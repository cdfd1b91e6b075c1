package domain

import (
	"context"

	"github.com/louisbranch/dieroll/internal/core/dice"
	apperrors "github.com/louisbranch/dieroll/internal/platform/errors"
	"github.com/louisbranch/dieroll/internal/platform/otel"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// DefaultMaxAmount is the largest batch a tool call accepts when no limit is configured.
const DefaultMaxAmount = 1000

// RollDiceInput represents the MCP tool input for rolling dice.
type RollDiceInput struct {
	Amount int `json:"amount" jsonschema:"number of dice to roll (zero returns no results)"`
	Faces  int `json:"faces" jsonschema:"number of faces on each die (at least 1)"`
}

// RollDiceResult represents the MCP tool output for rolling dice.
type RollDiceResult struct {
	Faces    int    `json:"faces" jsonschema:"number of faces on each die"`
	Notation string `json:"notation" jsonschema:"die notation, e.g. d6"`
	Results  []int  `json:"results" jsonschema:"individual roll results in roll order"`
	Total    int    `json:"total" jsonschema:"sum of the roll results"`
}

// DieInfoInput represents the MCP tool input for describing a die.
type DieInfoInput struct {
	Faces int `json:"faces" jsonschema:"number of faces on the die (at least 1)"`
}

// DieInfoResult describes the outcome range of a die.
type DieInfoResult struct {
	Faces    int    `json:"faces" jsonschema:"number of faces on the die"`
	Notation string `json:"notation" jsonschema:"die notation, e.g. d6"`
	Min      int    `json:"min" jsonschema:"lowest possible roll"`
	Max      int    `json:"max" jsonschema:"highest possible roll"`
}

// RollDiceTool defines the MCP tool schema for rolling dice.
func RollDiceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "roll_dice",
		Description: "Rolls a batch of identical dice and returns each result",
	}
}

// DieInfoTool defines the MCP tool schema for describing a die.
func DieInfoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "die_info",
		Description: "Describes the outcome range of an N-sided die",
	}
}

// RollDiceHandler rolls dice with src, rejecting batches above maxAmount.
// A maxAmount of zero or less applies DefaultMaxAmount.
func RollDiceHandler(src dice.Source, maxAmount int) mcp.ToolHandlerFor[RollDiceInput, RollDiceResult] {
	if maxAmount <= 0 {
		maxAmount = DefaultMaxAmount
	}
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RollDiceInput) (*mcp.CallToolResult, RollDiceResult, error) {
		_, span := otel.Tracer().Start(ctx, "mcp.roll_dice")
		defer span.End()
		span.SetAttributes(
			attribute.Int("dice.amount", input.Amount),
			attribute.Int("dice.faces", input.Faces),
		)

		if input.Amount > maxAmount {
			err := apperrors.AmountTooLarge(input.Amount, maxAmount)
			span.SetStatus(codes.Error, err.Error())
			return nil, RollDiceResult{}, clientError(err)
		}

		results, err := dice.RollWith(src, input.Amount, input.Faces)
		if err != nil {
			err = apperrors.FromDice(err, input.Amount, input.Faces)
			span.SetStatus(codes.Error, err.Error())
			return nil, RollDiceResult{}, clientError(err)
		}

		die, _ := dice.New(input.Faces)
		total := dice.Total(results)
		span.SetAttributes(attribute.Int("dice.total", total))
		return nil, RollDiceResult{
			Faces:    die.Faces(),
			Notation: die.String(),
			Results:  results,
			Total:    total,
		}, nil
	}
}

// DieInfoHandler describes a die without rolling it.
func DieInfoHandler() mcp.ToolHandlerFor[DieInfoInput, DieInfoResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input DieInfoInput) (*mcp.CallToolResult, DieInfoResult, error) {
		die, err := dice.New(input.Faces)
		if err != nil {
			return nil, DieInfoResult{}, clientError(apperrors.FromDice(err, 1, input.Faces))
		}
		return nil, DieInfoResult{
			Faces:    die.Faces(),
			Notation: die.String(),
			Min:      1,
			Max:      die.Faces(),
		}, nil
	}
}
