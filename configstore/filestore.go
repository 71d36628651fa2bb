package configstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

// Same as jsoniter.ConfigCompatibleWithStandardLibrary, but numbers decode to
// json.Number so integers written by hand are not turned into floats.
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// FileStore keeps the document in a single JSON file.
//
// There is no locking between Load and Save, concurrent writers race and the
// last one wins. Each save replaces the file atomically.
type FileStore struct {
	Path   string
	Logger *zap.Logger
}

func NewFileStore(path string, logger *zap.Logger) *FileStore {
	return &FileStore{
		Path:   path,
		Logger: logger,
	}
}

func (s *FileStore) Load(ctx context.Context) (Document, LoadResult) {
	data, err := os.ReadFile(s.Path)

	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, LoadResult{Status: LoadMissing}
		}

		s.Logger.Error("Error loading bot config, treating it as empty", zap.String("path", s.Path), zap.Stringer("status", LoadUnreadable), zap.Error(err))
		return Document{}, LoadResult{Status: LoadUnreadable, Err: err}
	}

	var doc Document

	err = json.Unmarshal(data, &doc)

	if err == nil && doc == nil {
		// "null" decodes cleanly into a nil map
		err = errors.New("document is not a JSON object")
	}

	if err != nil {
		s.Logger.Error("Error loading bot config, treating it as empty", zap.String("path", s.Path), zap.Stringer("status", LoadCorrupt), zap.Error(err))
		return Document{}, LoadResult{Status: LoadCorrupt, Err: err}
	}

	return doc, LoadResult{Status: LoadOK}
}

func (s *FileStore) Save(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.save(doc)

	if err != nil {
		s.Logger.Error("Error saving bot config", zap.String("path", s.Path), zap.Error(err))
		return err
	}

	return nil
}

func (s *FileStore) save(doc Document) error {
	if doc == nil {
		doc = Document{}
	}

	err := os.MkdirAll(filepath.Dir(s.Path), 0o755)

	if err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")

	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	err = renameio.WriteFile(s.Path, data, 0o600)

	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}
