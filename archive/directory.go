package archive

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/relicpack/relic/alz"
)

// walkFiles returns every regular file under dir, as paths relative to
// dir, sorted lexicographically.
func walkFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// CompressDir ALZ-compresses every file under inputDir into the
// mirrored path under outputDir.
func CompressDir(inputDir, outputDir string) error {
	return transformDir(inputDir, outputDir, alz.Compress)
}

// DecompressDir ALZ-decompresses every file under inputDir into the
// mirrored path under outputDir. Files that aren't ALZ-framed pass
// through unchanged, per alz.Decompress's contract.
func DecompressDir(inputDir, outputDir string) error {
	return transformDir(inputDir, outputDir, alz.Decompress)
}

func transformDir(inputDir, outputDir string, transform func([]byte) []byte) error {
	files, err := walkFiles(inputDir)
	if err != nil {
		return fmt.Errorf("archive: walking %s: %w", inputDir, err)
	}
	for _, rel := range files {
		data, err := os.ReadFile(filepath.Join(inputDir, rel))
		if err != nil {
			return fmt.Errorf("archive: reading %s: %w", rel, err)
		}
		out := transform(data)
		outPath := filepath.Join(outputDir, rel)
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return fmt.Errorf("archive: creating %s: %w", filepath.Dir(outPath), err)
		}
		if err := os.WriteFile(outPath, out, 0o644); err != nil {
			return fmt.Errorf("archive: writing %s: %w", outPath, err)
		}
	}
	return nil
}
