package astar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepper_ReachesSamePathAsSearch(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	g, h := demoGraph()
	want, err := Search[string](context.Background(), g, "A", "E", h)
	require.NoError(t, err)

	stepper := NewStepper[string](context.Background(), g, "A", "E", h, WithWorkers(2))
	defer stepper.Close()

	// --- Act ---
	var last StepSnapshot[string]
	for i := 0; i < 20 && !stepper.Done(); i++ {
		last, err = stepper.Step()
		require.NoError(t, err)
	}

	// --- Assert ---
	require.True(t, last.Done)
	require.True(t, last.Found)
	assert.Equal(t, want.Path, last.Path)
	assert.Equal(t, want.TotalCost, last.Cost)
	assert.Equal(t, "E", last.Current)
	assert.Equal(t, want.ExpandedNodes, last.StepIndex)
}

func TestStepper_FirstStepExpandsStart(t *testing.T) {
	t.Parallel()

	g, h := demoGraph()
	stepper := NewStepper[string](context.Background(), g, "A", "E", h)
	defer stepper.Close()

	snapshot, err := stepper.Step()

	require.NoError(t, err)
	assert.Equal(t, "A", snapshot.Current)
	assert.Equal(t, 1, snapshot.StepIndex)
	assert.False(t, snapshot.Done)
	assert.Equal(t, map[string]bool{"A": true}, snapshot.Closed)
	assert.Equal(t, map[string]bool{"B": true, "C": true}, snapshot.Open)
	assert.Equal(t, map[string]string{"B": "A", "C": "A"}, snapshot.CameFrom)
}

func TestStepper_ExhaustedSearchStaysDone(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	g := mapGraph{}
	g.connect("A", "B", 1)
	stepper := NewStepper[string](context.Background(), g, "A", "Z", zeroHeuristic)
	defer stepper.Close()

	// --- Act ---
	var snapshots []StepSnapshot[string]
	for i := 0; i < 4; i++ {
		snapshot, err := stepper.Step()
		require.NoError(t, err)
		snapshots = append(snapshots, snapshot)
	}

	// --- Assert ---
	assert.False(t, snapshots[0].Done)
	assert.False(t, snapshots[1].Done)
	assert.True(t, snapshots[2].Done)
	assert.False(t, snapshots[2].Found)
	assert.Nil(t, snapshots[2].Path)
	assert.Equal(t, snapshots[2], snapshots[3])
	assert.Equal(t, 2, snapshots[3].StepIndex)
}

func TestStepper_ClosedContext(t *testing.T) {
	t.Parallel()

	g, h := demoGraph()
	stepper := NewStepper[string](context.Background(), g, "A", "E", h)
	stepper.Close()

	snapshot, err := stepper.Step()

	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, snapshot.Done)
	assert.True(t, stepper.Done())
}
