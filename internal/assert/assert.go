package assert

import (
	"fmt"
)

// That panics with the formatted message if the condition does not hold.
func That(condition bool, format string, args ...any) {
	if !condition {
		panic(fmt.Sprintf(format, args...))
	}
}

// InBounds panics if idx is not a valid index into a sequence of length n.
func InBounds(idx, n int) {
	if idx < 0 || idx >= n {
		panic(fmt.Sprintf("index out of range [%d] with length %d", idx, n))
	}
}
