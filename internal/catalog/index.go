package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/openinstructions/catalogbuild/internal/logfields"
)

// Entry is the projection of one valid instruction file into the catalog
// index. Entries are owned by the Index once appended and never mutated.
type Entry struct {
	Path           string `json:"path"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Version        string `json:"version"`
	CatalogVersion string `json:"catalog_version"`
}

// Index is the aggregate record summarizing all valid instruction files
// for one build run. Version is the build tool's catalog format version,
// not derived from any input. Every category key present in Projects has
// at least one entry.
type Index struct {
	Version   string             `json:"version"`
	Projects  map[string][]Entry `json:"projects"`
	UpdatedAt string             `json:"updated_at"`
}

// ToJSON serializes the index pretty-printed with two-space indentation.
func (i *Index) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal catalog index: %w", err)
	}
	return data, nil
}

// EntryCount returns the total number of entries across all categories.
func (i *Index) EntryCount() int {
	n := 0
	for _, entries := range i.Projects {
		n += len(entries)
	}
	return n
}

// CategoryKey derives the grouping key for an instruction file path.
//
// The key is the path segment directly under root ("project_types/cli/..."
// maps to "cli"). A file sitting immediately under root, or a path too
// short to carry a category at all, has no key: ok is false and the file
// is excluded from indexing. That exclusion is policy, not an error.
//
// Paths that do not start with root keep the historical behavior of
// taking the second segment, so relative and pre-joined paths index the
// same way.
func CategoryKey(root, filePath string) (key string, ok bool) {
	segments := splitPath(filePath)

	if root != "" {
		rootSegments := splitPath(root)
		if len(segments) > len(rootSegments) && segmentsHavePrefix(segments, rootSegments) {
			rest := segments[len(rootSegments):]
			if len(rest) < 2 {
				return "", false
			}
			return rest[0], true
		}
	}

	if len(segments) < 3 {
		return "", false
	}
	return segments[1], true
}

func segmentsHavePrefix(segments, prefix []string) bool {
	for i, p := range prefix {
		if segments[i] != p {
			return false
		}
	}
	return true
}

func splitPath(p string) []string {
	cleaned := path.Clean(strings.ReplaceAll(p, "\\", "/"))
	cleaned = strings.Trim(cleaned, "/")
	if cleaned == "" || cleaned == "." {
		return nil
	}
	return strings.Split(cleaned, "/")
}

// Indexer folds validated instruction files into a catalog Index.
type Indexer struct {
	root          string
	formatVersion string
	log           *slog.Logger
	now           func() time.Time
}

// NewIndexer creates an Indexer for files under root, stamping indexes
// with formatVersion. A nil logger falls back to slog.Default.
func NewIndexer(root, formatVersion string, log *slog.Logger) *Indexer {
	if log == nil {
		log = slog.Default()
	}
	return &Indexer{
		root:          root,
		formatVersion: formatVersion,
		log:           log,
		now:           time.Now,
	}
}

// WithClock overrides the timestamp source (tests).
func (x *Indexer) WithClock(now func() time.Time) *Indexer {
	x.now = now
	return x
}

// BuildIndex folds the supplied files into one Index. Files whose path
// carries no category key are skipped silently (logged at debug); files
// with an empty document are skipped as processing errors. A failure on
// one file never aborts the build; the returned index reflects only the
// files that processed cleanly. Entry order within a category preserves
// the order files were supplied in. UpdatedAt is stamped exactly once,
// after all entries are collected.
func (x *Indexer) BuildIndex(files []ValidFile) *Index {
	index := &Index{
		Version:  x.formatVersion,
		Projects: make(map[string][]Entry),
	}

	for _, file := range files {
		if len(file.Doc) == 0 {
			x.log.Error("Skipping instruction file during indexing",
				logfields.Path(file.Path), logfields.Reason(ReasonEmptyDocument))
			continue
		}

		category, ok := CategoryKey(x.root, file.Path)
		if !ok {
			x.log.Debug("Path carries no category key, excluding from index", logfields.Path(file.Path))
			continue
		}

		index.Projects[category] = append(index.Projects[category], Entry{
			Path:           file.Path,
			Title:          file.Doc.stringField("title", "Untitled"),
			Description:    file.Doc.stringField("description", ""),
			Version:        file.Doc.stringField(FieldVersion, "0.0.0"),
			CatalogVersion: file.Doc.stringField(FieldCatalogVersion, "0.0.0"),
		})
	}

	index.UpdatedAt = x.now().UTC().Format(time.RFC3339)

	x.log.Info("Catalog index built",
		slog.Int("categories", len(index.Projects)),
		slog.Int("entries", index.EntryCount()))
	return index
}
