package hashtable_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermanconnor/dsa-go/hashtable"
)

// TestNewDefaults verifies the zero-option constructor.
func TestNewDefaults(t *testing.T) {
	ht, err := hashtable.New[int]()
	require.NoError(t, err)
	assert.Equal(t, 0, ht.Len())
	assert.Empty(t, ht.Keys())
}

// TestNewOptionViolations verifies invalid options fail construction.
func TestNewOptionViolations(t *testing.T) {
	_, err := hashtable.New[int](hashtable.WithCapacity(-1))
	assert.ErrorIs(t, err, hashtable.ErrOptionViolation)

	_, err = hashtable.New[int](hashtable.WithMaxLoadFactor(0))
	assert.ErrorIs(t, err, hashtable.ErrOptionViolation)

	_, err = hashtable.New[int](hashtable.WithMaxLoadFactor(-0.5))
	assert.ErrorIs(t, err, hashtable.ErrOptionViolation)
}

// TestSetGet covers insert, hit, miss and the zero value.
func TestSetGet(t *testing.T) {
	ht, err := hashtable.New[string]()
	require.NoError(t, err)

	ht.Set("name", "gopher")
	ht.Set("color", "blue")

	v, ok := ht.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "gopher", v)

	v, ok = ht.Get("ghost")
	assert.False(t, ok)
	assert.Equal(t, "", v, "misses return the zero value")
	assert.Equal(t, 2, ht.Len())
}

// TestSetOverwrite verifies replacing a value keeps one entry.
func TestSetOverwrite(t *testing.T) {
	ht, err := hashtable.New[int]()
	require.NoError(t, err)

	ht.Set("k", 1)
	ht.Set("k", 2)

	v, ok := ht.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, ht.Len())
}

// TestDelete covers present, absent and re-insert after delete.
func TestDelete(t *testing.T) {
	ht, err := hashtable.New[int]()
	require.NoError(t, err)

	ht.Set("a", 1)
	ht.Set("b", 2)

	assert.True(t, ht.Delete("a"))
	assert.False(t, ht.Delete("a"), "double delete reports absence")
	assert.Equal(t, 1, ht.Len())

	_, ok := ht.Get("a")
	assert.False(t, ok)

	ht.Set("a", 3)
	v, ok := ht.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

// TestKeys verifies the full key set comes back, order ignored.
func TestKeys(t *testing.T) {
	ht, err := hashtable.New[int]()
	require.NoError(t, err)

	want := []string{"alpha", "bravo", "charlie", "delta"}
	for i, k := range want {
		ht.Set(k, i)
	}

	assert.ElementsMatch(t, want, ht.Keys())
}

// TestGrowth pushes far past the initial capacity and verifies every
// entry survives the rehashes.
func TestGrowth(t *testing.T) {
	ht, err := hashtable.New[int](hashtable.WithCapacity(2))
	require.NoError(t, err)

	const n = 10_000
	for i := 0; i < n; i++ {
		ht.Set(fmt.Sprintf("key-%d", i), i)
	}
	require.Equal(t, n, ht.Len())
	assert.LessOrEqual(t, ht.LoadFactor(), 0.75, "resize must keep the load bounded")

	for i := 0; i < n; i++ {
		v, ok := ht.Get(fmt.Sprintf("key-%d", i))
		require.True(t, ok, "key-%d lost in a rehash", i)
		require.Equal(t, i, v)
	}
}

// TestHighLoadFactor verifies load factors above 1 defer resizing.
func TestHighLoadFactor(t *testing.T) {
	ht, err := hashtable.New[int](
		hashtable.WithCapacity(4),
		hashtable.WithMaxLoadFactor(8),
	)
	require.NoError(t, err)

	for i := 0; i < 32; i++ {
		ht.Set(fmt.Sprintf("k%d", i), i)
	}
	assert.Equal(t, 32, ht.Len())
	assert.Greater(t, ht.LoadFactor(), 1.0, "chains must be carrying the load")

	for i := 0; i < 32; i++ {
		v, ok := ht.Get(fmt.Sprintf("k%d", i))
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

// TestSeedsSpreadDifferently verifies the seed actually feeds the hash:
// the same keys must land in different bucket patterns under different
// seeds, observable through Keys iteration order.
func TestSeedsSpreadDifferently(t *testing.T) {
	build := func(seed uint32) []string {
		ht, err := hashtable.New[int](hashtable.WithSeed(seed))
		require.NoError(t, err)
		for i := 0; i < 64; i++ {
			ht.Set(fmt.Sprintf("key-%d", i), i)
		}
		return ht.Keys()
	}

	a, b := build(1), build(2)
	assert.ElementsMatch(t, a, b, "both tables hold the same keys")
	assert.NotEqual(t, a, b, "different seeds should shuffle bucket order")
}

// TestEmptyKey verifies "" is an ordinary key.
func TestEmptyKey(t *testing.T) {
	ht, err := hashtable.New[int]()
	require.NoError(t, err)

	ht.Set("", 7)
	v, ok := ht.Get("")
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.True(t, ht.Delete(""))
}

// TestStructValues verifies the value type parameter is unconstrained.
func TestStructValues(t *testing.T) {
	type point struct{ x, y int }
	ht, err := hashtable.New[point]()
	require.NoError(t, err)

	ht.Set("origin", point{0, 0})
	ht.Set("unit", point{1, 1})

	v, ok := ht.Get("unit")
	assert.True(t, ok)
	assert.Equal(t, point{1, 1}, v)
}
