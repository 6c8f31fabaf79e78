// Package archive orchestrates the INFO/GAME archive pair: reading
// asset payloads out of the GAME blob per TOC entry, and rebuilding
// both files after edits.
package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/relicpack/relic/alz"
	"github.com/relicpack/relic/toc"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "archive: " + string(e) }

// Config holds the tunables for a pack/unpack cycle.
type Config struct {
	compress bool
}

// Option configures a Config.
type Option func(*Config)

// WithCompression toggles whether Pack ALZ-compresses payloads before
// writing them to the data blob. Defaults to false: payloads are
// assumed to already be in their on-disk (possibly ALZ-compressed)
// form, matching the reference toolchain's separate compress/decompress
// pipeline stage.
func WithCompression(enabled bool) Option {
	return func(c *Config) { c.compress = enabled }
}

func newConfig(opts []Option) Config {
	var c Config
	for _, o := range opts {
		o(&c)
	}
	return c
}

// Archive couples a parsed TOC with an open data blob.
type Archive struct {
	TOC  *toc.TOC
	blob *os.File
}

// Open parses infoPath and opens gamePath for reading.
func Open(infoPath, gamePath string) (*Archive, error) {
	infoData, err := os.ReadFile(infoPath)
	if err != nil {
		return nil, fmt.Errorf("archive: reading %s: %w", infoPath, err)
	}
	t, err := toc.Parse(infoData)
	if err != nil {
		return nil, fmt.Errorf("archive: parsing %s: %w", infoPath, err)
	}
	blob, err := os.Open(gamePath)
	if err != nil {
		return nil, fmt.Errorf("archive: opening %s: %w", gamePath, err)
	}
	return &Archive{TOC: t, blob: blob}, nil
}

// Close releases the underlying data blob handle.
func (a *Archive) Close() error {
	if a.blob == nil {
		return nil
	}
	return a.blob.Close()
}

// ReadPayload reads an entry's payload from the data blob. Entries with
// BlockCount == 0 return an empty slice without performing I/O.
func (a *Archive) ReadPayload(e toc.FileEntry) ([]byte, error) {
	if e.BlockCount == 0 {
		return nil, nil
	}
	buf := make([]byte, e.Size)
	off := int64(e.BlockOffset) * toc.BlockSize
	if _, err := a.blob.ReadAt(buf, off); err != nil && err != io.EOF {
		return nil, fmt.Errorf("archive: reading payload %q: %w", e.Name, err)
	}
	return buf, nil
}

// Unpack reads every entry's payload out of the archive and writes it
// to outputDir, mirroring entry.Name as a relative path.
func Unpack(infoPath, gamePath, outputDir string) error {
	a, err := Open(infoPath, gamePath)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("archive: creating %s: %w", outputDir, err)
	}
	for _, e := range a.TOC.Entries {
		data, err := a.ReadPayload(e)
		if err != nil {
			return err
		}
		outPath := filepath.Join(outputDir, e.Name)
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return fmt.Errorf("archive: creating %s: %w", filepath.Dir(outPath), err)
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("archive: writing %s: %w", outPath, err)
		}
	}
	return nil
}

// Pack rebuilds INFO.DAT and GAME.DAT under outputDir from originalDir
// (the unmodified extraction) and editedDir (a possibly-partial
// override tree: any file present there replaces the original; any
// file absent is taken unchanged from originalDir). An entry found in
// neither directory is a hard failure.
func Pack(infoPath, originalDir, editedDir, outputDir string, opts ...Option) error {
	cfg := newConfig(opts)

	infoData, err := os.ReadFile(infoPath)
	if err != nil {
		return fmt.Errorf("archive: reading %s: %w", infoPath, err)
	}
	t, err := toc.Parse(infoData)
	if err != nil {
		return fmt.Errorf("archive: parsing %s: %w", infoPath, err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("archive: creating %s: %w", outputDir, err)
	}

	payloads := make([][]byte, len(t.Entries))
	for i := range t.Entries {
		e := &t.Entries[i]
		editedPath := filepath.Join(editedDir, e.Name)
		originalPath := filepath.Join(originalDir, e.Name)

		path := editedPath
		if _, err := os.Stat(editedPath); err != nil {
			if _, err := os.Stat(originalPath); err != nil {
				return Error(fmt.Sprintf("%s: original payload does not exist", e.Name))
			}
			path = originalPath
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("archive: reading %s: %w", path, err)
		}
		if cfg.compress {
			data = alz.Compress(data)
		}
		payloads[i] = data
		e.UpdateInfo(data)
	}

	t.RecalculateOffsets()

	newInfoPath := filepath.Join(outputDir, "INFO.DAT")
	if err := os.WriteFile(newInfoPath, t.Bytes(), 0o644); err != nil {
		return fmt.Errorf("archive: writing %s: %w", newInfoPath, err)
	}

	newGamePath := filepath.Join(outputDir, "GAME.DAT")
	gameFile, err := os.Create(newGamePath)
	if err != nil {
		return fmt.Errorf("archive: creating %s: %w", newGamePath, err)
	}
	defer gameFile.Close()

	for i, e := range t.Entries {
		if e.BlockCount == 0 {
			continue
		}
		if _, err := gameFile.WriteAt(payloads[i], int64(e.BlockOffset)*toc.BlockSize); err != nil {
			return fmt.Errorf("archive: writing payload %q: %w", e.Name, err)
		}
	}
	return nil
}
