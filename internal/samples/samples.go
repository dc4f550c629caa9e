// Package samples writes the demo startup scripts shipped with the terminal.
package samples

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// Scripts maps file name to script body.
var Scripts = map[string]string{
	"test_basic.txt": `# Test script 1 - basic commands
ls
cd test_directory
ls
cd ..
ls
`,
	"test_quotes.txt": `# Test script 2 - quoted arguments
ls -l
cd "directory with spaces"
ls
cd ..
`,
	"test_errors.txt": `# Test script 3 - error handling
ls
unknown_command
ls  # not reached: the previous line aborts the script
`,
}

// Write uploads every sample script under dir, a local path or afs URL, and
// returns their URLs in name order.
func Write(ctx context.Context, fs afs.Service, dir string) ([]string, error) {
	names := make([]string, 0, len(Scripts))
	for name := range Scripts {
		names = append(names, name)
	}
	sort.Strings(names)

	dir = url.Normalize(dir, file.Scheme)

	locations := make([]string, 0, len(names))
	for _, name := range names {
		location := url.Join(dir, name)
		if err := fs.Upload(ctx, location, file.DefaultFileOsMode, strings.NewReader(Scripts[name])); err != nil {
			return nil, fmt.Errorf("failed to write sample %s: %w", location, err)
		}
		locations = append(locations, location)
	}
	return locations, nil
}
