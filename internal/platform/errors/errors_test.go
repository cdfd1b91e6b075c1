package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/louisbranch/dieroll/internal/core/dice"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := New(CodeDiceInvalidFaces, "bad faces")
	wrapped := fmt.Errorf("roll: %w", err)

	if !stderrors.Is(wrapped, &Error{Code: CodeDiceInvalidFaces}) {
		t.Fatal("expected wrapped error to match by code")
	}
	if stderrors.Is(wrapped, &Error{Code: CodeDiceInvalidAmount}) {
		t.Fatal("expected different code not to match")
	}
}

func TestWrapUnwrapsCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(CodeRandomUnavailable, "seed source", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	if err.Error() != "seed source" {
		t.Fatalf("expected internal message, got %q", err.Error())
	}
}

func TestCodeKind(t *testing.T) {
	tests := []struct {
		code Code
		want Kind
	}{
		{CodeDiceInvalidFaces, KindInvalidArgument},
		{CodeDiceInvalidAmount, KindInvalidArgument},
		{CodeDiceAmountTooLarge, KindInvalidArgument},
		{CodeRandomUnavailable, KindInternal},
		{CodeUnknown, KindInternal},
	}
	for _, tt := range tests {
		if got := tt.code.Kind(); got != tt.want {
			t.Errorf("%s.Kind() = %s, want %s", tt.code, got, tt.want)
		}
	}
}

func TestFromDice(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode Code
	}{
		{name: "invalid faces", err: dice.ErrInvalidFaces, wantCode: CodeDiceInvalidFaces},
		{name: "invalid amount", err: dice.ErrInvalidAmount, wantCode: CodeDiceInvalidAmount},
		{name: "wrapped faces", err: fmt.Errorf("new die: %w", dice.ErrInvalidFaces), wantCode: CodeDiceInvalidFaces},
		{name: "domain error passthrough", err: AmountTooLarge(5, 1), wantCode: CodeDiceAmountTooLarge},
		{name: "unrecognized", err: stderrors.New("other"), wantCode: CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromDice(tt.err, 3, 0)
			if code := GetCode(got); code != tt.wantCode {
				t.Fatalf("GetCode() = %s, want %s", code, tt.wantCode)
			}
			if !stderrors.Is(got, tt.err) {
				t.Fatal("expected original error to remain in chain")
			}
		})
	}
}

func TestFromDiceNil(t *testing.T) {
	if err := FromDice(nil, 1, 6); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestIsInvalidArgument(t *testing.T) {
	if !IsInvalidArgument(FromDice(dice.ErrInvalidFaces, 1, 0)) {
		t.Fatal("expected invalid faces to be InvalidArgument")
	}
	if IsInvalidArgument(stderrors.New("plain")) {
		t.Fatal("expected plain error not to be InvalidArgument")
	}
}

func TestLocalizedMessage(t *testing.T) {
	err := FromDice(dice.ErrInvalidFaces, 2, -1)
	var domainErr *Error
	if !stderrors.As(err, &domainErr) {
		t.Fatalf("expected domain error, got %T", err)
	}
	if got := domainErr.LocalizedMessage("en-US"); got != "A die needs at least one face (got -1)" {
		t.Fatalf("unexpected message %q", got)
	}

	tooLarge := AmountTooLarge(5000, 1000)
	if got := tooLarge.LocalizedMessage(""); got != "Cannot roll 5000 dice at once; the limit is 1000" {
		t.Fatalf("unexpected message %q", got)
	}
}
