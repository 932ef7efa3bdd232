// Package stage materializes build outputs: it owns the distributable
// directory, the serialized catalog index, and verbatim copies of source
// files. Failures here are environment errors, the only fatal class in
// the build.
package stage

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/openinstructions/catalogbuild/internal/catalog"
	cberrors "github.com/openinstructions/catalogbuild/internal/errors"
	"github.com/openinstructions/catalogbuild/internal/logfields"
)

// IndexFileName is the serialized catalog index inside the dist directory.
const IndexFileName = "catalog.json"

// Stager owns the output directory for one build run.
type Stager struct {
	dist string
	log  *slog.Logger
}

// NewStager creates a Stager writing into dist. A nil logger falls back
// to slog.Default.
func NewStager(dist string, log *slog.Logger) *Stager {
	if log == nil {
		log = slog.Default()
	}
	return &Stager{dist: dist, log: log}
}

// Dist returns the output directory path.
func (s *Stager) Dist() string {
	return s.dist
}

// PrepareOutput destroys and recreates the output directory. Every build
// starts from an empty dist; no state is retained between runs.
func (s *Stager) PrepareOutput() error {
	if err := os.RemoveAll(s.dist); err != nil {
		return cberrors.OutputSetupError(s.dist, err)
	}
	if err := os.MkdirAll(s.dist, 0o750); err != nil {
		return cberrors.OutputSetupError(s.dist, err)
	}
	s.log.Info("Created output directory", logfields.Path(s.dist))
	return nil
}

// WriteIndex serializes the catalog index to catalog.json.
func (s *Stager) WriteIndex(index *catalog.Index) error {
	data, err := index.ToJSON()
	if err != nil {
		return cberrors.StageWriteError(IndexFileName, err)
	}
	return s.WriteFile(IndexFileName, data)
}

// WriteFile writes content to a path relative to the dist root, creating
// parent directories as needed. The path must stay under dist.
func (s *Stager) WriteFile(relativePath string, content []byte) error {
	fullPath, err := s.resolve(relativePath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		return cberrors.StageWriteError(relativePath, err)
	}
	// #nosec G306 -- staged files are public site assets
	if err := os.WriteFile(fullPath, content, 0o644); err != nil {
		return cberrors.StageWriteError(relativePath, err)
	}
	return nil
}

// CopyFiles copies each source file into dist, preserving its relative
// path. Source paths are expected to be relative to the working
// directory, the same shape discovery produces.
func (s *Stager) CopyFiles(paths []string) error {
	for _, path := range paths {
		if err := s.copyFile(path); err != nil {
			return err
		}
	}
	if len(paths) > 0 {
		s.log.Info("Copied files to output directory", logfields.Count(len(paths)), logfields.Path(s.dist))
	}
	return nil
}

func (s *Stager) copyFile(path string) error {
	fullPath, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		return cberrors.StageWriteError(path, err)
	}

	src, err := os.Open(filepath.Clean(path))
	if err != nil {
		return cberrors.StageWriteError(path, err)
	}
	defer func() {
		_ = src.Close()
	}()

	// #nosec G304 -- fullPath is validated to stay under dist.
	dst, err := os.Create(fullPath)
	if err != nil {
		return cberrors.StageWriteError(path, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return cberrors.StageWriteError(path, err)
	}
	if err := dst.Close(); err != nil {
		return cberrors.StageWriteError(path, err)
	}
	return nil
}

// resolve maps a relative path into the dist directory, rejecting
// absolute paths and traversal out of the root.
func (s *Stager) resolve(relativePath string) (string, error) {
	if relativePath == "" {
		return "", cberrors.StageWriteError(relativePath, errors.New("empty path"))
	}

	cleanRel := filepath.Clean(filepath.FromSlash(relativePath))
	if filepath.IsAbs(cleanRel) || strings.HasPrefix(cleanRel, "..") {
		return "", cberrors.StageWriteError(relativePath, errors.New("path escapes output directory"))
	}

	fullPath := filepath.Join(s.dist, cleanRel)
	rel, err := filepath.Rel(s.dist, fullPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", cberrors.StageWriteError(relativePath, fmt.Errorf("path escapes output directory"))
	}
	return fullPath, nil
}
