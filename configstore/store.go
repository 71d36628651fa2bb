// Package configstore persists the bot configuration document.
//
// Stores fail soft: a document that cannot be read is reported as empty, and
// it is up to the caller to decide whether a failed save is surfaced.
package configstore

import "context"

type LoadStatus int

const (
	// LoadOK means the document was read and parsed
	LoadOK LoadStatus = iota
	// LoadMissing means nothing has been saved yet
	LoadMissing
	// LoadUnreadable means the backing file exists but could not be read
	LoadUnreadable
	// LoadCorrupt means the backing file is not a JSON object
	LoadCorrupt
)

func (s LoadStatus) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadMissing:
		return "missing"
	case LoadUnreadable:
		return "unreadable"
	case LoadCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// LoadResult describes how a document was obtained. Err is set for
// LoadUnreadable and LoadCorrupt.
type LoadResult struct {
	Status LoadStatus
	Err    error
}

// Store loads and saves the configuration document.
//
// Load never fails: the returned Document is always non-nil and is empty
// whenever the result status is anything other than LoadOK.
type Store interface {
	Load(ctx context.Context) (Document, LoadResult)
	Save(ctx context.Context, doc Document) error
}
