package sequence

import "github.com/poiesic/strsim/core"

// HammingDistance counts the positions at which a and b differ.
// The strings must contain the same number of runes.
func HammingDistance(a, b string) (int, error) {
	if err := core.ValidateEqualLength(a, b); err != nil {
		return 0, err
	}
	rb := []rune(b)
	dist := 0
	for i, r := range []rune(a) {
		if r != rb[i] {
			dist++
		}
	}
	return dist, nil
}

// Hamming returns 1 - distance/length. Two empty strings score 1.
func Hamming(a, b string) (float64, error) {
	dist, err := HammingDistance(a, b)
	if err != nil {
		return 0, err
	}
	n := len([]rune(a))
	if n == 0 {
		return 1, nil
	}
	return 1 - float64(dist)/float64(n), nil
}
