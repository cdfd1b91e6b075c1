package dice

// Roll rolls amount dice with the given number of faces and returns each
// result in roll order.
//
// Roll uses the process-wide entropy source. See RollWith to supply one.
func Roll(amount, faces int) ([]int, error) {
	return RollWith(globalSource{}, amount, faces)
}

// RollWith rolls amount dice with the given number of faces using src.
//
// # Ordering
//
// Results[i] is the outcome of the i-th roll. Each value is independent of
// its position and lies in [1, faces].
//
// # Errors
//
//   - faces must be at least 1, otherwise ErrInvalidFaces is returned.
//   - amount must not be negative, otherwise ErrInvalidAmount is returned.
//
// Validation happens before src is consumed, so a failed call draws no
// randomness. An amount of zero returns an empty slice and no error.
//
// Example:
//
//	results, err := RollWith(src, 3, 6) // roll 3d6
//
// A nil src uses the process-wide entropy source.
func RollWith(src Source, amount, faces int) ([]int, error) {
	die, err := New(faces)
	if err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, ErrInvalidAmount
	}
	if src == nil {
		src = globalSource{}
	}

	results := make([]int, amount)
	for i := range results {
		results[i] = die.Roll(src)
	}
	return results, nil
}

// Total returns the sum of the provided roll results.
func Total(results []int) int {
	total := 0
	for _, value := range results {
		total += value
	}
	return total
}
