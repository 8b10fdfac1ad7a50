package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"precheck/internal/domain"
	"precheck/internal/testutil"
)

func TestInitCommand_WritesConfig(t *testing.T) {
	// Setup
	dir := t.TempDir()
	path := filepath.Join(dir, domain.ConfigFileName)
	c := newTestContainer(testutil.NewMockCommandRunner())
	c.ConfigLoader = &testutil.MockConfigLoader{FilePath: path}

	// Execute
	stdout, _, err := execute(t, c, "init")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[[steps]]")
}

func TestInitCommand_ExistingConfigIsAnError(t *testing.T) {
	// Setup
	dir := t.TempDir()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("# keep\n"), 0o600))
	c := newTestContainer(testutil.NewMockCommandRunner())
	c.ConfigLoader = &testutil.MockConfigLoader{FilePath: path}

	// Execute
	_, _, err := execute(t, c, "init")

	// Assert
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}
