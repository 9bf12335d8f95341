package session_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerproject/eiger/internal/config"
	"github.com/eigerproject/eiger/internal/diagnostics"
)

// TestFunctional runs every testdata/*.ei program that has a .want file and
// compares the program output, followed by the tagged error if one stopped
// it.
func TestFunctional(t *testing.T) {
	testFiles, err := filepath.Glob(filepath.Join("testdata", "*"+config.SourceFileExt))
	require.NoError(t, err)

	var ran int
	for _, testFile := range testFiles {
		wantFile := strings.TrimSuffix(testFile, config.SourceFileExt) + ".want"
		wantBytes, err := os.ReadFile(wantFile)
		if err != nil {
			continue
		}
		ran++

		name := filepath.Base(testFile)
		t.Run(strings.TrimSuffix(name, config.SourceFileExt), func(t *testing.T) {
			src, err := os.ReadFile(testFile)
			require.NoError(t, err)

			var out bytes.Buffer
			s := newSession(t, &out, "")
			_, err = s.Execute(string(src), name)

			got := out.String()
			if err != nil {
				var de *diagnostics.Error
				require.True(t, errors.As(err, &de), "unexpected error %v", err)
				got += de.Tagged()
			}
			assert.Equal(t, strings.TrimSpace(string(wantBytes)), strings.TrimSpace(got))
		})
	}

	if ran == 0 {
		t.Skip("No test files with .want found")
	}
}
