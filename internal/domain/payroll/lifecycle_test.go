package payroll

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	active := Cycle{ID: "c1", Status: CycleStatusActive}
	completed := Cycle{ID: "c1", Status: CycleStatusCompleted}

	tests := []struct {
		name       string
		cycle      Cycle
		event      Event
		hasDetails bool
		want       CycleStatus
		wantErr    error
		conflict   bool
	}{
		{name: "Calculate fresh cycle", cycle: active, event: EventCalculate, want: CycleStatusActive},
		{name: "Calculate twice", cycle: active, event: EventCalculate, hasDetails: true, wantErr: ErrCycleAlreadyCalculated, conflict: true},
		{name: "Adjust active cycle", cycle: active, event: EventAdjust, hasDetails: true, want: CycleStatusActive},
		{name: "Finalize calculated cycle", cycle: active, event: EventFinalize, hasDetails: true, want: CycleStatusCompleted},
		{name: "Finalize uncalculated cycle", cycle: active, event: EventFinalize, wantErr: ErrCycleNotCalculated},
		{name: "Adjust completed cycle", cycle: completed, event: EventAdjust, hasDetails: true, wantErr: ErrCycleAlreadyCompleted, conflict: true},
		{name: "Calculate completed cycle", cycle: completed, event: EventCalculate, hasDetails: true, wantErr: ErrCycleAlreadyCompleted},
		{name: "Finalize completed cycle", cycle: completed, event: EventFinalize, hasDetails: true, wantErr: ErrCycleAlreadyCompleted},
		{name: "Unknown event", cycle: active, event: Event("archive"), hasDetails: true, wantErr: ErrInvalidTransition},
		{name: "Unknown status", cycle: Cycle{ID: "c1", Status: "draft"}, event: EventCalculate, wantErr: ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.cycle, tt.event, tt.hasDetails)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.cycle.Status, got)

			var conflict *ConflictError
			var state *StateError
			if tt.conflict {
				assert.True(t, errors.As(err, &conflict))
			} else {
				assert.True(t, errors.As(err, &state))
			}
		})
	}
}

func TestDependency(t *testing.T) {
	conflict := &ConflictError{Err: ErrCycleOverlap}
	assert.Same(t, conflict, Dependency("op", conflict))

	assert.ErrorIs(t, Dependency("op", ErrCycleNotFound), ErrCycleNotFound)
	assert.Nil(t, Dependency("op", nil))

	raw := errors.New("connection refused")
	err := Dependency("list payroll details", raw)
	var dep *DependencyError
	require.True(t, errors.As(err, &dep))
	assert.Equal(t, "list payroll details", dep.Op)
	assert.ErrorIs(t, err, raw)
}
