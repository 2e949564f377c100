package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntensityScale(t *testing.T) {
	scale := IntensityScale()
	require.Len(t, scale, 10)

	t.Run("ordered lowest first", func(t *testing.T) {
		for i, lvl := range scale {
			assert.Equal(t, i+1, lvl.Level)
			assert.NotEmpty(t, lvl.Label)
			assert.NotEmpty(t, lvl.Color)
		}
	})

	t.Run("returns a copy", func(t *testing.T) {
		scale[0].Color = "#FFFFFF"
		assert.Equal(t, "#0000A6", IntensityScale()[0].Color)
	})
}

func TestClampIntensity(t *testing.T) {
	tests := []struct {
		name     string
		observed int
		expected int
	}{
		{"below range", 0, 1},
		{"negative", -4, 1},
		{"lowest", 1, 1},
		{"in range", 6, 6},
		{"highest", 10, 10},
		{"above range", 12, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampIntensity(tt.observed))
		})
	}
}

func TestColorForIntensity(t *testing.T) {
	assert.Equal(t, "#0000A6", ColorForIntensity(1))
	assert.Equal(t, "#FF9C01", ColorForIntensity(7))
	assert.Equal(t, "#90001F", ColorForIntensity(10))

	t.Run("clamps out-of-range input", func(t *testing.T) {
		assert.Equal(t, ColorForIntensity(1), ColorForIntensity(-2))
		assert.Equal(t, ColorForIntensity(10), ColorForIntensity(15))
	})
}

func TestClassifyResidual(t *testing.T) {
	assert.Equal(t, ResidualZero, ClassifyResidual(0))
	assert.Equal(t, ResidualOne, ClassifyResidual(1))
	assert.Equal(t, ResidualTwoPlus, ClassifyResidual(2))
	assert.Equal(t, ResidualTwoPlus, ClassifyResidual(9))
}

func TestResidualClasses(t *testing.T) {
	classes := ResidualClasses()
	require.Len(t, classes, 3)
	assert.Equal(t, ResidualZero, classes[0].Bucket)
	assert.Equal(t, "#00A600", classes[0].Color)
	assert.Equal(t, ResidualOne, classes[1].Bucket)
	assert.Equal(t, "#FF9A00", classes[1].Color)
	assert.Equal(t, ResidualTwoPlus, classes[2].Bucket)
	assert.Equal(t, "#C00000", classes[2].Color)

	for _, c := range classes {
		assert.Equal(t, c.Color, ColorForResidual(c.Bucket))
	}
}

func TestMarkerSize(t *testing.T) {
	t.Run("base size below the growth threshold", func(t *testing.T) {
		assert.Equal(t, 6, MarkerSize(1))
		assert.Equal(t, 6, MarkerSize(2))
		assert.Equal(t, 6, MarkerSize(3))
	})

	t.Run("grows two pixels per step", func(t *testing.T) {
		assert.Equal(t, 8, MarkerSize(4))
		assert.Equal(t, 10, MarkerSize(5))
		assert.Equal(t, 14, MarkerSize(7))
	})

	t.Run("saturates at intensity 8", func(t *testing.T) {
		assert.Equal(t, 16, MarkerSize(8))
		assert.Equal(t, 16, MarkerSize(10))
		assert.Equal(t, 16, MarkerSize(14))
	})

	t.Run("monotonically non-decreasing", func(t *testing.T) {
		prev := MarkerSize(0)
		for i := 1; i <= 15; i++ {
			size := MarkerSize(i)
			assert.GreaterOrEqual(t, size, prev, "intensity %d", i)
			prev = size
		}
	})
}
