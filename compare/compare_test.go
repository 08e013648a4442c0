package compare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hermanconnor/dsa-go/compare"
)

func TestOrdered(t *testing.T) {
	assert.Negative(t, compare.Ordered(1, 2), "1 sorts before 2")
	assert.Positive(t, compare.Ordered(2, 1), "2 sorts after 1")
	assert.Zero(t, compare.Ordered(7, 7), "equal keys compare to zero")

	assert.Negative(t, compare.Ordered("apple", "banana"))
	assert.Zero(t, compare.Ordered(3.5, 3.5))
}

func TestReverse(t *testing.T) {
	desc := compare.Reverse(compare.Ordered[int])

	assert.Positive(t, desc(1, 2), "reversed order flips the sign")
	assert.Negative(t, desc(2, 1))
	assert.Zero(t, desc(4, 4), "equality is unaffected")
}
