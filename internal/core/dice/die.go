// Package dice implements a validated N-sided die and batch rolling.
package dice

import (
	"errors"
	"strconv"
)

// DefaultFaces is the face count of a die built by Default.
const DefaultFaces = 20

// ErrInvalidFaces indicates a die was requested with fewer than one face.
var ErrInvalidFaces = errors.New("die faces must be positive")

// ErrInvalidAmount indicates a batch roll was requested with a negative amount.
var ErrInvalidAmount = errors.New("dice amount must not be negative")

// Die is an immutable die with a fixed, positive number of faces.
//
// Build a Die with New or Default. The zero value behaves like Default so
// that a face count below one can never reach sampling.
type Die struct {
	faces int
}

// New returns a die with the given number of faces.
//
// New fails with ErrInvalidFaces when faces is zero or negative.
func New(faces int) (Die, error) {
	if faces < 1 {
		return Die{}, ErrInvalidFaces
	}
	return Die{faces: faces}, nil
}

// Default returns a twenty-sided die.
func Default() Die {
	return Die{faces: DefaultFaces}
}

// Faces returns the number of faces on the die.
func (d Die) Faces() int {
	if d.faces < 1 {
		return DefaultFaces
	}
	return d.faces
}

// Roll returns a value drawn uniformly from [1, Faces()].
//
// A nil src uses the process-wide entropy source.
func (d Die) Roll(src Source) int {
	if src == nil {
		src = globalSource{}
	}
	return rollDie(src, d.Faces())
}

// String returns the die in d<faces> notation, e.g. "d6".
func (d Die) String() string {
	return "d" + strconv.Itoa(d.Faces())
}

// rollDie rolls a single die with the provided number of faces.
func rollDie(src Source, faces int) int {
	return src.IntN(faces) + 1
}
