package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryEmptyBoundariesAreSentinels(t *testing.T) {
	t.Parallel()

	r := NewRegistry(3)

	front := r.Front()
	back := r.Back()
	assert.True(t, front.Sentinel())
	assert.True(t, back.Sentinel())
	assert.Equal(t, ClientID(0), front.ID())
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.IDs())
}

func TestRegistryInsertPreservesOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry(10)
	for _, id := range []ClientID{30, 10, 20} {
		require.NoError(t, r.Insert(id))
	}

	assert.Equal(t, []ClientID{30, 10, 20}, r.IDs())
	assert.Equal(t, ClientID(30), r.Front().ID())
	assert.Equal(t, ClientID(20), r.Back().ID())
	assert.Equal(t, ClientID(10), r.Front().Next().ID())
	assert.Equal(t, ClientID(10), r.Back().Prev().ID())
	assert.True(t, r.Back().Next().Sentinel())
	assert.True(t, r.Front().Prev().Sentinel())
}

func TestRegistryInsertDuplicateIsRejected(t *testing.T) {
	t.Parallel()

	r := NewRegistry(10)
	require.NoError(t, r.Insert(7))

	err := r.Insert(7)
	require.ErrorIs(t, err, ErrClientExists)
	assert.True(t, r.Contains(7))
	assert.Equal(t, 1, r.Len())
}

func TestRegistryRemove(t *testing.T) {
	t.Parallel()

	r := NewRegistry(10)
	for _, id := range []ClientID{1, 2, 3} {
		require.NoError(t, r.Insert(id))
	}

	require.NoError(t, r.Remove(2))
	assert.False(t, r.Contains(2))
	assert.Equal(t, []ClientID{1, 3}, r.IDs())

	require.ErrorIs(t, r.Remove(2), ErrClientNotRegistered)
	require.ErrorIs(t, r.Remove(99), ErrClientNotRegistered)
	assert.Equal(t, []ClientID{1, 3}, r.IDs())
}

func TestRegistryRemoveElementRefusesSentinels(t *testing.T) {
	t.Parallel()

	r := NewRegistry(10)
	require.ErrorIs(t, r.RemoveElement(r.Front()), ErrSentinel)
	require.ErrorIs(t, r.RemoveElement(r.Back()), ErrSentinel)

	require.NoError(t, r.Insert(5))
	require.NoError(t, r.RemoveElement(r.Front()))
	assert.Equal(t, 0, r.Len())

	other := NewRegistry(10)
	require.NoError(t, other.Insert(5))
	require.ErrorIs(t, r.RemoveElement(other.Front()), ErrClientNotRegistered)
}

func TestRegistryFullTracksCapacity(t *testing.T) {
	t.Parallel()

	r := NewRegistry(2)
	require.NoError(t, r.Insert(1))
	assert.False(t, r.Full())
	require.NoError(t, r.Insert(2))
	assert.True(t, r.Full())
	assert.Equal(t, 2, r.Cap())

	require.NoError(t, r.Remove(1))
	assert.False(t, r.Full())
}

func TestRegistryDefaultCapacity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultRegistryCapacity, NewRegistry(0).Cap())
	assert.Equal(t, DefaultRegistryCapacity, NewRegistry(-4).Cap())
}

func TestRegistryRoundTripReturnsToEmpty(t *testing.T) {
	t.Parallel()

	const n = DefaultRegistryCapacity
	r := NewRegistry(n)
	ids := make([]ClientID, 0, n)
	for i := 1; i <= n; i++ {
		id := ClientID(1000 + i)
		ids = append(ids, id)
		require.NoError(t, r.Insert(id))
	}
	require.True(t, r.Full())

	rng := rand.New(rand.NewSource(42))
	rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	for _, id := range ids {
		require.NoError(t, r.Remove(id))
	}

	assert.Equal(t, 0, r.Len())
	assert.True(t, r.Front().Sentinel())
	assert.True(t, r.Back().Sentinel())
}

func TestRegistryReusesFreedSlots(t *testing.T) {
	t.Parallel()

	r := NewRegistry(4)
	for round := 0; round < 50; round++ {
		require.NoError(t, r.Insert(1))
		require.NoError(t, r.Insert(2))
		require.NoError(t, r.Remove(1))
		require.NoError(t, r.Remove(2))
	}

	assert.LessOrEqual(t, len(r.nodes), 4)
	assert.Equal(t, 0, r.Len())
}

func TestRegistryMembershipMatchesConnectDisconnectSequence(t *testing.T) {
	t.Parallel()

	const capacity = 8
	r := NewRegistry(capacity)
	want := map[ClientID]bool{}
	rng := rand.New(rand.NewSource(7))

	for step := 0; step < 500; step++ {
		id := ClientID(rng.Intn(12) + 1)
		if rng.Intn(2) == 0 {
			if !r.Contains(id) && !r.Full() {
				require.NoError(t, r.Insert(id))
				want[id] = true
			}
		} else if r.Contains(id) {
			require.NoError(t, r.Remove(id))
			delete(want, id)
		}

		require.LessOrEqual(t, r.Len(), capacity)
		require.Len(t, want, r.Len())
		for id := range want {
			require.True(t, r.Contains(id))
		}
	}
}
