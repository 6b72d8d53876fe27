package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(0))
	assert.Equal(t, 0, Clamp(-5))
	assert.Equal(t, 1, Clamp(1))
	assert.Equal(t, MaxLevel, Clamp(MaxLevel))
	assert.Equal(t, MaxLevel, Clamp(MaxLevel+100))
}

func TestMachineOpenSimple(t *testing.T) {
	table := Table{
		1: {ID: 1, Kind: Ordered, Level: 1},
	}
	m := NewMachine()

	transitions := m.Change(table, 1, 1)
	require.Len(t, transitions, 1)
	assert.True(t, transitions[0].Open)
	assert.Equal(t, Ordered, transitions[0].Kind)
	assert.False(t, transitions[0].Dummy)
	assert.Equal(t, 1, m.Level())
}

func TestMachineOpenBridgesParentGap(t *testing.T) {
	// list 2's parent is list 1, but list 1 is absent from the table: the
	// machine must synthesize a dummy unordered level at level 1 before
	// opening list 2's own level.
	table := Table{
		2: {ID: 2, ParentID: 1, Kind: Ordered, Level: 2},
	}
	m := NewMachine()

	transitions := m.Change(table, 2, 2)
	require.Len(t, transitions, 2)
	assert.True(t, transitions[0].Dummy)
	assert.Equal(t, Unordered, transitions[0].Kind)
	assert.False(t, transitions[1].Dummy)
	assert.Equal(t, Ordered, transitions[1].Kind)
	assert.Equal(t, 2, m.Level())
}

func TestMachineCloseDown(t *testing.T) {
	table := Table{
		1: {ID: 1, Kind: Unordered, Level: 1},
		2: {ID: 2, ParentID: 1, Kind: Ordered, Level: 2},
	}
	m := NewMachine()
	m.Change(table, 2, 2)

	transitions := m.Change(table, 0, 0)
	require.Len(t, transitions, 2)
	assert.False(t, transitions[0].Open)
	assert.False(t, transitions[1].Open)
	assert.Equal(t, 0, m.Level())
}

func TestMachineNoChangeSameLevel(t *testing.T) {
	table := Table{1: {ID: 1, Kind: Ordered, Level: 1}}
	m := NewMachine()
	m.Change(table, 1, 1)

	transitions := m.Change(table, 1, 1)
	assert.Nil(t, transitions)
}

func TestMachineResetDropsStackWithoutTransitions(t *testing.T) {
	table := Table{1: {ID: 1, Kind: Ordered, Level: 1}}
	m := NewMachine()
	m.Change(table, 1, 1)

	m.Reset()
	assert.Equal(t, 0, m.Level())
}

func TestMachineUnknownListSynthesizesDummyChain(t *testing.T) {
	// list id not present in the table at all: every bridged level is a
	// dummy unordered level, since there is no element to resolve.
	m := NewMachine()
	transitions := m.Change(Table{}, 3, 99)

	require.Len(t, transitions, 3)
	for _, tr := range transitions {
		assert.True(t, tr.Open)
		assert.True(t, tr.Dummy)
		assert.Equal(t, Unordered, tr.Kind)
	}
	assert.Equal(t, 3, m.Level())
}
