package random

import (
	"errors"
	"sync"
	"testing"

	"github.com/louisbranch/dieroll/internal/core/dice"
	apperrors "github.com/louisbranch/dieroll/internal/platform/errors"
)

var _ dice.Source = (*Source)(nil)

func TestNewSeedVaries(t *testing.T) {
	first, err := NewSeed()
	if err != nil {
		t.Fatalf("new seed: %v", err)
	}
	second, err := NewSeed()
	if err != nil {
		t.Fatalf("new seed: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct seeds, got %d twice", first)
	}
}

func TestNewSourceSeedError(t *testing.T) {
	seedErr := errors.New("entropy unavailable")
	src, err := newSource(func() (uint64, error) { return 0, seedErr })
	if !errors.Is(err, seedErr) {
		t.Fatalf("expected seed error, got %v", err)
	}
	if src != nil {
		t.Fatal("expected nil source on seed error")
	}
	if code := apperrors.GetCode(err); code != apperrors.CodeRandomUnavailable {
		t.Fatalf("expected code %s, got %s", apperrors.CodeRandomUnavailable, code)
	}
	var domainErr *apperrors.Error
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected domain error, got %T", err)
	}
	if got := domainErr.LocalizedMessage("en-US"); got != "Randomness is temporarily unavailable" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestNewSourceSecondSeedError(t *testing.T) {
	seedErr := errors.New("entropy unavailable")
	calls := 0
	_, err := newSource(func() (uint64, error) {
		calls++
		if calls == 2 {
			return 0, seedErr
		}
		return 7, nil
	})
	if !errors.Is(err, seedErr) {
		t.Fatalf("expected seed error, got %v", err)
	}
	if code := apperrors.GetCode(err); code != apperrors.CodeRandomUnavailable {
		t.Fatalf("expected code %s, got %s", apperrors.CodeRandomUnavailable, code)
	}
}

func TestSourceDeterministicForFixedSeed(t *testing.T) {
	fixed := func() (uint64, error) { return 42, nil }
	a, err := newSource(fixed)
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	b, err := newSource(fixed)
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	for i := 0; i < 32; i++ {
		if x, y := a.IntN(100), b.IntN(100); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestSourceIntNRange(t *testing.T) {
	src, err := NewSource()
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	for i := 0; i < 1000; i++ {
		if v := src.IntN(6); v < 0 || v >= 6 {
			t.Fatalf("IntN(6) = %d, out of range [0, 6)", v)
		}
	}
}

func TestSourceConcurrentRolls(t *testing.T) {
	src, err := NewSource()
	if err != nil {
		t.Fatalf("new source: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results, err := dice.RollWith(src, 200, 20)
			if err != nil {
				errs <- err
				return
			}
			for _, r := range results {
				if r < 1 || r > 20 {
					errs <- errors.New("roll out of range")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent roll: %v", err)
	}
}
