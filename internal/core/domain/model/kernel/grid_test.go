package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name    string
		width   kernel.Coordinate
		height  kernel.Coordinate
		wantErr bool
	}{
		{name: "valid square grid", width: 10, height: 10},
		{name: "valid rectangular grid", width: 3, height: 7},
		{name: "single cell grid", width: 1, height: 1},
		{name: "zero width", width: 0, height: 5, wantErr: true},
		{name: "zero height", width: 5, height: 0, wantErr: true},
		{name: "negative dimensions", width: -1, height: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := kernel.NewGrid(tt.width, tt.height)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.width, grid.Width())
			assert.Equal(t, tt.height, grid.Height())
			require.NoError(t, grid.Validate())
		})
	}
}

func TestGrid_Validate(t *testing.T) {
	t.Run("zero value grid is invalid", func(t *testing.T) {
		var grid kernel.Grid

		err := grid.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGridIsNotConstructed, err)
	})
}

func TestGrid_CheckBounds(t *testing.T) {
	grid, err := kernel.NewGrid(10, 5)
	require.NoError(t, err)

	tests := []struct {
		name    string
		x       kernel.Coordinate
		y       kernel.Coordinate
		inBound bool
	}{
		{name: "origin", x: 0, y: 0, inBound: true},
		{name: "interior cell", x: 4, y: 3, inBound: true},
		{name: "max corner", x: 9, y: 4, inBound: true},
		{name: "x equals width", x: 10, y: 0, inBound: false},
		{name: "y equals height", x: 0, y: 5, inBound: false},
		{name: "far outside", x: 100, y: 100, inBound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, locErr := kernel.NewLocation(tt.x, tt.y)
			require.NoError(t, locErr)

			boundsErr := grid.CheckBounds(loc)
			contains, containsErr := grid.Contains(loc)
			require.NoError(t, containsErr)

			if tt.inBound {
				require.NoError(t, boundsErr)
				assert.True(t, contains)
			} else {
				require.ErrorIs(t, boundsErr, errs.ErrValueIsOutOfRange)
				assert.False(t, contains)
			}
		})
	}

	t.Run("zero value location is rejected", func(t *testing.T) {
		var loc kernel.Location

		err := grid.CheckBounds(loc)

		require.Error(t, err)

		_, err = grid.Contains(loc)
		require.Error(t, err)
	})

	t.Run("zero value grid is rejected", func(t *testing.T) {
		var zeroGrid kernel.Grid
		loc, locErr := kernel.NewLocation(0, 0)
		require.NoError(t, locErr)

		err := zeroGrid.CheckBounds(loc)

		require.Error(t, err)
	})
}

func TestGrid_String(t *testing.T) {
	grid, err := kernel.NewGrid(10, 5)
	require.NoError(t, err)

	assert.Equal(t, "Grid(10x5)", grid.String())
}
