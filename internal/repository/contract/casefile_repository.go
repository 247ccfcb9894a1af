package contract

import (
	"context"
	"errors"

	"complaint-assistant-be/internal/entity"
)

// Case-file errors the service layer maps to user-facing conditions.
var (
	// ErrCaseFileNotFound reports a load or delete against a file that is
	// not on disk (e.g. already deleted from another tab).
	ErrCaseFileNotFound = errors.New("case file not found")

	// ErrCaseFileCorrupt reports a file whose top-level JSON is neither an
	// object nor an array, or whose turns are missing required keys.
	ErrCaseFileCorrupt = errors.New("case file corrupt")

	// ErrInvalidFileName reports a file, folder, or customer name that is
	// not a plain path component. Names carrying separators or ".." would
	// otherwise resolve outside the agent's directory.
	ErrInvalidFileName = errors.New("invalid file name")
)

// CaseFileRepository persists one JSON file per saved case under a per-agent
// folder. Last writer wins; there is no cross-process locking.
type CaseFileRepository interface {
	// Save writes the case and returns the new file name. When replaceFile
	// is non-empty the previous file of the same case is removed after the
	// new one is written.
	Save(ctx context.Context, folder, replaceFile string, c *entity.SavedCase) (string, error)

	// Load decodes a saved case. Legacy bare-array files are accepted with
	// defaulted metadata.
	Load(ctx context.Context, folder, file string) (*entity.SavedCase, error)

	// Delete removes a saved case. Returns ErrCaseFileNotFound when the
	// file is already gone.
	Delete(ctx context.Context, folder, file string) error

	// List returns saved file names, newest first.
	List(ctx context.Context, folder string) ([]string, error)
}
