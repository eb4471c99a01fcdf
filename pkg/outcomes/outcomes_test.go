package outcomes_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parv0888/concordium-base/pkg/model/tpkg"
	"github.com/parv0888/concordium-base/pkg/outcomes"
)

func TestOutcomesFromList(t *testing.T) {
	h1, h2 := tpkg.RandomHash(), tpkg.RandomHash()

	o := outcomes.FromList([]outcomes.Pair[string]{
		{Hash: h1, Result: "r1"},
		{Hash: h2, Result: "r2"},
	})
	require.Equal(t, 2, o.Len())

	result, exists := o.At(h1)
	require.True(t, exists)
	require.Equal(t, "r1", result)

	result, exists = o.At(h2)
	require.True(t, exists)
	require.Equal(t, "r2", result)

	_, exists = o.At(tpkg.RandomHash())
	require.False(t, exists)

	result, exists = o.ByIndex(1)
	require.True(t, exists)
	require.Equal(t, "r2", result)
	_, exists = o.ByIndex(2)
	require.False(t, exists)
}

func TestOutcomesSetAt(t *testing.T) {
	h1, h2 := tpkg.RandomHash(), tpkg.RandomHash()

	o := outcomes.FromList([]outcomes.Pair[string]{
		{Hash: h1, Result: "r1"},
		{Hash: h2, Result: "r2"},
	})

	require.True(t, o.SetAt(h1, "r3"))
	result, _ := o.At(h1)
	require.Equal(t, "r3", result)

	// h2 is unaffected and unknown hashes are a no-op
	result, _ = o.At(h2)
	require.Equal(t, "r2", result)
	require.False(t, o.SetAt(tpkg.RandomHash(), "r4"))
	require.Equal(t, 2, o.Len())
}

func TestOutcomesDuplicateHash(t *testing.T) {
	h1 := tpkg.RandomHash()

	// a duplicate keeps both results in the value sequence but the index
	// points at the last-written position
	o := outcomes.FromList([]outcomes.Pair[string]{
		{Hash: h1, Result: "first"},
		{Hash: h1, Result: "second"},
	})
	require.Equal(t, 2, o.Len())

	result, exists := o.At(h1)
	require.True(t, exists)
	require.Equal(t, "second", result)

	result, _ = o.ByIndex(0)
	require.Equal(t, "first", result)
}

func TestOutcomesSpecials(t *testing.T) {
	o := outcomes.New[string]()
	require.Empty(t, o.Specials())

	first := outcomes.SpecialTransactionOutcome{Kind: outcomes.SpecialOutcomeBakingReward, Amount: 100}
	second := outcomes.SpecialTransactionOutcome{Kind: outcomes.SpecialOutcomeMint, Amount: 7}

	o.AppendSpecial(first)
	o.AppendSpecial(second)

	require.Equal(t, []outcomes.SpecialTransactionOutcome{first, second}, o.Specials())
}
