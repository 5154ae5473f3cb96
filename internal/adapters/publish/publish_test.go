package publish_test

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/ports/mocks"
)

// stateWith builds an export state over a temp cache directory containing one
// file per entry of contents.
func stateWith(t *testing.T, contents map[string]string) *domain.ExportState {
	t.Helper()
	dir := t.TempDir()
	files := make([]string, 0, len(contents))
	for name, data := range contents {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0o600))
		files = append(files, name)
	}
	return &domain.ExportState{
		CacheDir: dir,
		Files:    files,
		Metadata: make(domain.ServiceMetadata),
	}
}

func permissiveLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

// readZip returns the archive's entries as name to content.
func readZip(t *testing.T, path string) map[string]string {
	t.Helper()
	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close() //nolint:errcheck // read-only archive

	entries := make(map[string]string, len(r.File))
	for _, f := range r.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		entries[f.Name] = string(data)
	}
	return entries
}
