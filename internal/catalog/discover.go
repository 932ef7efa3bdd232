package catalog

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/openinstructions/catalogbuild/internal/logfields"
)

// InstructionExtensions are the recognized instruction file extensions.
var InstructionExtensions = []string{".yaml", ".yml"}

// SchemaExtensions are the recognized auxiliary schema file extensions.
var SchemaExtensions = []string{".yaml", ".yml", ".json"}

// Discoverer walks input roots for candidate files.
type Discoverer struct {
	log *slog.Logger
}

// NewDiscoverer creates a Discoverer. A nil logger falls back to slog.Default.
func NewDiscoverer(log *slog.Logger) *Discoverer {
	if log == nil {
		log = slog.Default()
	}
	return &Discoverer{log: log}
}

// Instructions returns every instruction file under root, recursively.
// A missing root is not an error; it yields an empty result. No ordering
// is guaranteed beyond what the directory walk yields.
func (d *Discoverer) Instructions(root string) ([]string, error) {
	paths, err := d.walk(root, InstructionExtensions)
	if err != nil {
		return nil, err
	}
	d.log.Info("Found instruction files", logfields.Count(len(paths)), logfields.Path(root))
	return paths, nil
}

// Schemas returns every auxiliary schema file under root, recursively.
func (d *Discoverer) Schemas(root string) ([]string, error) {
	paths, err := d.walk(root, SchemaExtensions)
	if err != nil {
		return nil, err
	}
	if len(paths) > 0 {
		d.log.Info("Found schema files", logfields.Count(len(paths)), logfields.Path(root))
	}
	return paths, nil
}

func (d *Discoverer) walk(root string, extensions []string) ([]string, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		d.log.Debug("Input root not found, skipping", logfields.Path(root))
		return nil, nil
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if hasExtension(path, extensions) {
			paths = append(paths, filepath.ToSlash(path))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
