package configstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "data", "bot_config.json"), zap.NewNop())
}

func TestFileStoreLoadMissing(t *testing.T) {
	s := newTestFileStore(t)

	doc, res := s.Load(context.Background())

	assert.NotNil(t, doc)
	assert.Empty(t, doc)
	assert.Equal(t, LoadMissing, res.Status)
	assert.NoError(t, res.Err)
}

func TestFileStoreSaveCreatesDirAndRoundTrips(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	doc := Document{KeyPrefix: "?"}
	doc.SetToken("a.b.c", time.Unix(1700000000, 0))

	require.NoError(t, s.Save(ctx, doc))

	raw, err := os.ReadFile(s.Path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  ")
	assert.Contains(t, string(raw), `"discord_token": "a.b.c"`)

	got, res := s.Load(ctx)
	assert.Equal(t, LoadOK, res.Status)
	assert.Equal(t, "a.b.c", got.Token())
	assert.Equal(t, "1700000000", got.LastUpdated())
	assert.Equal(t, "?", got.Prefix())
}

func TestFileStoreKeepsIntegers(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path), 0o755))
	require.NoError(t, os.WriteFile(s.Path, []byte(`{"max_scripts": 120, "custom": {"a": 1}}`), 0o600))

	doc, res := s.Load(ctx)
	require.Equal(t, LoadOK, res.Status)
	assert.Equal(t, 120, doc.MaxScripts())

	doc.SetToken("a.b.c", time.Unix(1, 0))
	require.NoError(t, s.Save(ctx, doc))

	raw, err := os.ReadFile(s.Path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"max_scripts": 120`)
	assert.Contains(t, string(raw), `"custom"`)
}

func TestFileStoreLoadCorrupt(t *testing.T) {
	for _, body := range []string{"{not json", "[1, 2]", "null", `"text"`, `{"a": 1} trailing`} {
		s := newTestFileStore(t)

		require.NoError(t, os.MkdirAll(filepath.Dir(s.Path), 0o755))
		require.NoError(t, os.WriteFile(s.Path, []byte(body), 0o600))

		doc, res := s.Load(context.Background())

		assert.NotNil(t, doc, body)
		assert.Empty(t, doc, body)
		assert.Equal(t, LoadCorrupt, res.Status, body)
		assert.Error(t, res.Err, body)
	}
}

func TestFileStoreLoadUnreadable(t *testing.T) {
	s := newTestFileStore(t)

	// a directory where the file should be cannot be read as a file
	require.NoError(t, os.MkdirAll(s.Path, 0o755))

	doc, res := s.Load(context.Background())

	assert.Empty(t, doc)
	assert.Equal(t, LoadUnreadable, res.Status)
	assert.Error(t, res.Err)
}

func TestFileStoreSaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	// parent "directory" is a regular file
	s := NewFileStore(filepath.Join(blocker, "bot_config.json"), zap.NewNop())

	err := s.Save(context.Background(), Document{})
	assert.Error(t, err)
}

func TestFileStoreSaveCanceled(t *testing.T) {
	s := newTestFileStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Save(ctx, Document{}), context.Canceled)

	_, err := os.Stat(s.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreDeletedBetweenLoads(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, Document{KeyDiscordToken: "a.b.c"}))
	require.NoError(t, os.Remove(s.Path))

	doc, res := s.Load(ctx)
	assert.Equal(t, LoadMissing, res.Status)
	assert.False(t, doc.HasToken())
}

func TestFileStoreLogsLoadFailureOnce(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewFileStore(filepath.Join(t.TempDir(), "bot_config.json"), zap.New(core))

	require.NoError(t, os.WriteFile(s.Path, []byte("{broken"), 0o600))

	_, res := s.Load(context.Background())
	require.Equal(t, LoadCorrupt, res.Status)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "corrupt", entries[0].ContextMap()["status"])

	// a missing file is not worth a log line
	require.NoError(t, os.Remove(s.Path))
	_, res = s.Load(context.Background())
	require.Equal(t, LoadMissing, res.Status)
	assert.Len(t, logs.All(), 1)
}
