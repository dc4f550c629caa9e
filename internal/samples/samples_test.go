package samples

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"

	"github.com/Neev4n/vfs-terminal-go/pkg/shell"
)

func TestWrite(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()

	locations, err := Write(ctx, fs, "mem://localhost/test_scripts")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"mem://localhost/test_scripts/test_basic.txt",
		"mem://localhost/test_scripts/test_errors.txt",
		"mem://localhost/test_scripts/test_quotes.txt",
	}, locations)

	data, err := fs.DownloadWithURL(ctx, locations[0])
	require.NoError(t, err)
	assert.Equal(t, Scripts["test_basic.txt"], string(data))
}

func TestSamplesReplay(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()

	locations, err := Write(ctx, fs, "mem://localhost/replay")
	require.NoError(t, err)

	tests := []struct {
		location  string
		state     shell.State
		processed int
		cwd       string
	}{
		{location: locations[0], state: shell.Running, processed: 5, cwd: "/vfs"},
		{location: locations[1], state: shell.Aborted, processed: 2, cwd: "/vfs"},
		{location: locations[2], state: shell.Running, processed: 4, cwd: "/vfs"},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			interp := shell.NewInterpreter(shell.NewSession("/vfs"), &shell.Transcript{})
			result := shell.Replay(ctx, interp, shell.NewScriptLoader(fs), tt.location)

			assert.Equal(t, tt.state, result.State)
			assert.Equal(t, tt.processed, result.LinesProcessed)
			assert.Equal(t, tt.cwd, interp.Session().Cwd())
		})
	}
}
