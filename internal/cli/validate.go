package cli

import (
	"errors"
	"fmt"
	"strconv"
)

// Board size policy of the shell. The engine itself sizes storage
// dynamically and happily takes a 2×2; the window below is the product
// range the interactive puzzle was published with.
const (
	minBoardSize = 12
	maxBoardSize = 128
)

// Validation sentinels, surfaced verbatim to the terminal user.
var (
	errDimensionRange = errors.New("n and m must each be at least 2")
	errDimensionOrder = errors.New("n must be less than or equal to m")
	errBoardSize      = fmt.Errorf("board size n*m must be between %d and %d", minBoardSize, maxBoardSize)
	errOddBoard       = errors.New("n*m must be an even number")
)

// parseDimension converts one argument to a board dimension.
func parseDimension(name, arg string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("could not assign a value to %s: %q", name, arg)
	}

	return v, nil
}

// validateBoard applies the shell's board policy: sane dimensions, the
// published size window, even vertex count, and the high-and-thin n ≤ m
// convention (an n×m board has the same tours as m×n, so nothing is lost).
func validateBoard(n, m int) error {
	if n < 2 || m < 2 {
		return fmt.Errorf("%d×%d: %w", n, m, errDimensionRange)
	}
	if n > m {
		return fmt.Errorf("n (%d) and m (%d): %w", n, m, errDimensionOrder)
	}
	size := n * m
	if size < minBoardSize || size > maxBoardSize {
		return fmt.Errorf("%d×%d = %d: %w", n, m, size, errBoardSize)
	}
	if size&1 == 1 {
		return fmt.Errorf("%d×%d = %d: %w", n, m, size, errOddBoard)
	}

	return nil
}
