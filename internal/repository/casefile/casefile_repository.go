package casefile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"complaint-assistant-be/internal/constant"
	"complaint-assistant-be/internal/entity"
	"complaint-assistant-be/internal/repository/contract"
)

// kst is the timezone used for saved-case filenames.
var kst = time.FixedZone("KST", 9*60*60)

// Repository stores one JSON file per saved case under
// {basePath}/{agentName}_{agentCode}/. Directories are created on first use.
type Repository struct {
	basePath string
	now      func() time.Time
}

var _ contract.CaseFileRepository = (*Repository)(nil)

type Option func(*Repository)

// WithClock overrides the clock used for filename timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

func NewRepository(basePath string, opts ...Option) *Repository {
	r := &Repository{
		basePath: basePath,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Filename renders "<customer>_<yymmdd-hhmmss>.json" in KST.
func Filename(customerName string, at time.Time) string {
	return fmt.Sprintf("%s_%s.json", customerName, at.In(kst).Format("060102-150405"))
}

func (r *Repository) folderPath(folder string) string {
	return filepath.Join(r.basePath, folder)
}

// checkName rejects anything that is not a single plain path component, so
// client-supplied names can never resolve outside the agent's directory.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", contract.ErrInvalidFileName, name)
	}
	return nil
}

func (r *Repository) Save(_ context.Context, folder, replaceFile string, c *entity.SavedCase) (string, error) {
	if err := checkName(folder); err != nil {
		return "", err
	}
	name := c.CustomerName
	if name == "" {
		name = constant.DefaultCustomerName
	}
	if err := checkName(name); err != nil {
		return "", err
	}
	if replaceFile != "" {
		if err := checkName(replaceFile); err != nil {
			return "", err
		}
	}

	dir := r.folderPath(folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create case folder: %w", err)
	}

	file := Filename(name, r.now())

	// Keep Korean text readable in the file: no HTML escaping.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(c); err != nil {
		return "", fmt.Errorf("encode case: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, file), buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write case file: %w", err)
	}

	// Remove the previous file of the same case only after the new one is
	// on disk, so an interruption can duplicate a case but never lose it.
	if replaceFile != "" && replaceFile != file {
		if err := os.Remove(filepath.Join(dir, replaceFile)); err != nil && !os.IsNotExist(err) {
			return file, fmt.Errorf("remove previous case file: %w", err)
		}
	}

	return file, nil
}

func (r *Repository) Load(_ context.Context, folder, file string) (*entity.SavedCase, error) {
	if err := checkName(folder); err != nil {
		return nil, err
	}
	if err := checkName(file); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(filepath.Join(r.folderPath(folder), file))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", contract.ErrCaseFileNotFound, file)
		}
		return nil, fmt.Errorf("read case file: %w", err)
	}
	return decodeCase(raw, file)
}

func (r *Repository) Delete(_ context.Context, folder, file string) error {
	if err := checkName(folder); err != nil {
		return err
	}
	if err := checkName(file); err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(r.folderPath(folder), file)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", contract.ErrCaseFileNotFound, file)
		}
		return fmt.Errorf("delete case file: %w", err)
	}
	return nil
}

func (r *Repository) List(_ context.Context, folder string) ([]string, error) {
	if err := checkName(folder); err != nil {
		return nil, err
	}

	dir := r.folderPath(folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create case folder: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list case folder: %w", err)
	}

	type fileInfo struct {
		name    string
		modTime time.Time
	}
	files := make([]fileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, fileInfo{name: e.Name(), modTime: info.ModTime()})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.After(files[j].modTime)
	})

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.name
	}
	return names, nil
}
