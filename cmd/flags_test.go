package cmd

import (
	"testing"

	"github.com/jsphweid/autochart/chart"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartFlagDefaultsFollowOptions(t *testing.T) {
	d := chart.DefaultOptions()
	for _, cmd := range []*cobra.Command{generateCmd, batchCmd, watchCmd} {
		grid := cmd.Flags().Lookup("grid")
		require.NotNil(t, grid, cmd.Name())
		assert.Equal(t, d.Grid.String(), grid.DefValue, cmd.Name())
		assert.Equal(t, "16", cmd.Flags().Lookup("notes-per-turn").DefValue, cmd.Name())
	}
}

func TestChartFlagsSetToDefaultsMatchUnset(t *testing.T) {
	parse := func(args ...string) chart.Options {
		var f chartFlags
		cmd := &cobra.Command{Use: "x"}
		addChartFlags(cmd, &f)
		require.NoError(t, cmd.Flags().Parse(args))
		o, err := f.options(cmd)
		require.NoError(t, err)
		return o
	}

	d := chart.DefaultOptions()
	assert.Equal(t, d, parse())
	assert.Equal(t, d, parse("--grid", d.Grid.String()))
	assert.NotEqual(t, d.Grid, parse("--grid", "1/16").Grid)
}
