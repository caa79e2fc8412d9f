//go:build !opencl

package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCLUnavailableWithoutBuildTag(t *testing.T) {
	c, err := newOpenCLJumpFlood(32, 32)
	require.ErrorIs(t, err, errOpenCLUnavailable)
	assert.Nil(t, c)
}

func TestPreferOpenCLFallsBackToHostClassifiers(t *testing.T) {
	tests := []struct {
		name   string
		budget int64
		want   string
	}{
		{"host grids", 0, ModeJumpFlood},
		{"grids over budget", 1, ModeBruteForce},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(32, 32)
			cfg.PreferOpenCL = true
			cfg.GridBudget = tt.budget

			c := selectClassifier(cfg, nil, nil)
			assert.Equal(t, tt.want, c.Name())
			c.Close()

			e := New(cfg, nil, nil)
			defer e.Close()
			assert.Equal(t, tt.want, e.Mode())
		})
	}
}
