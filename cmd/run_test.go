package cmd

import (
	"path/filepath"
	"testing"

	"github.com/gnames/cc0photos/internal/iotesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetRunCmd_Flags verifies flags of the run command.
func TestGetRunCmd_Flags(t *testing.T) {
	cmd := getRunCmd()
	assert.Equal(t, "run", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	tests := []struct {
		name      string
		shorthand string
	}{
		{"stages", "s"},
		{"chunk-size", "c"},
		{"out", "o"},
		{"taxa", ""},
		{"vernaculars", ""},
		{"observations", ""},
		{"media", ""},
		{"match-canonical", "m"},
		{"quiet", "q"},
	}
	for _, v := range tests {
		flag := cmd.Flags().Lookup(v.name)
		require.NotNil(t, flag, v.name)
		assert.Equal(t, v.shorthand, flag.Shorthand, v.name)
		assert.NotEmpty(t, flag.Usage, v.name)
	}
}

func TestFlagOptions(t *testing.T) {
	cmd := getRunCmd()
	var flags runFlags
	require.NoError(t, cmd.ParseFlags([]string{
		"-c", "10", "--media", "m.csv", "-q",
	}))
	flags.chunkSize, _ = cmd.Flags().GetInt("chunk-size")
	flags.media, _ = cmd.Flags().GetString("media")
	flags.quiet, _ = cmd.Flags().GetBool("quiet")

	opts := flagOptions(cmd, flags)
	assert.Len(t, opts, 3, "only changed flags and quiet")
}

// TestRunCmd_EndToEnd runs all stages through the command line.
func TestRunCmd_EndToEnd(t *testing.T) {
	iotesting.SetupTempHome(t)
	tc := iotesting.GetTestConfig(t)

	root := getRootCmd()
	root.SetArgs([]string{
		"run", "-q", "-c", "1", "-o", tc.Output.Dir,
		"--taxa", tc.Input.Taxa,
		"--vernaculars", tc.Input.Vernaculars,
		"--observations", tc.Input.Observations,
		"--media", tc.Input.Media,
	})
	require.NoError(t, root.Execute())

	assert.Equal(t, iotesting.FinalCSV, iotesting.ReadFile(t, tc.FinalPath()))
}

// TestRunCmd_UnknownStage verifies that a wrong stage name fails.
func TestRunCmd_UnknownStage(t *testing.T) {
	home := iotesting.SetupTempHome(t)

	root := getRootCmd()
	root.SetArgs([]string{
		"run", "-q", "-o", filepath.Join(home, "out"), "--stages", "photos",
	})
	err := root.Execute()
	require.Error(t, err)
}
