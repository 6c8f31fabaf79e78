package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/relicpack/relic/toc"
	"github.com/stretchr/testify/assert"
)

func writeFixtureArchive(t *testing.T, dir string, payloads map[string][]byte) (infoPath, gamePath string) {
	t.Helper()

	names := make([]string, 0, len(payloads))
	for name := range payloads {
		names = append(names, name)
	}
	entries := make([]toc.FileEntry, len(names))
	for i, name := range names {
		var e toc.FileEntry
		e.Name = name
		e.UpdateInfo(payloads[name])
		entries[i] = e
	}
	tc := &toc.TOC{
		Header:  toc.FileEntry{FileCount: uint32(len(entries))},
		Entries: entries,
	}
	tc.RecalculateOffsets()

	infoPath = filepath.Join(dir, "INFO.DAT")
	assert.NoError(t, os.WriteFile(infoPath, tc.Bytes(), 0o644))

	gamePath = filepath.Join(dir, "GAME.DAT")
	f, err := os.Create(gamePath)
	assert.NoError(t, err)
	defer f.Close()
	for i, name := range names {
		e := tc.Entries[i]
		if e.BlockCount == 0 {
			continue
		}
		_, err := f.WriteAt(payloads[name], int64(e.BlockOffset)*toc.BlockSize)
		assert.NoError(t, err)
	}
	return infoPath, gamePath
}

func TestUnpackThenPackNoOpRoundTrip(t *testing.T) {
	dir := t.TempDir()
	payloads := map[string][]byte{
		"a.twx": {1, 2, 3, 4, 5},
		"b.twx": make([]byte, 3000),
	}
	infoPath, gamePath := writeFixtureArchive(t, dir, payloads)

	extractDir := filepath.Join(dir, "extracted")
	assert.NoError(t, Unpack(infoPath, gamePath, extractDir))

	for name, want := range payloads {
		got, err := os.ReadFile(filepath.Join(extractDir, name))
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	outDir := filepath.Join(dir, "repacked")
	editedDir := filepath.Join(dir, "edited") // empty: everything comes from original
	assert.NoError(t, Pack(infoPath, extractDir, editedDir, outDir))

	origInfo, err := os.ReadFile(infoPath)
	assert.NoError(t, err)
	newInfo, err := os.ReadFile(filepath.Join(outDir, "INFO.DAT"))
	assert.NoError(t, err)
	assert.Equal(t, origInfo, newInfo)

	a, err := Open(filepath.Join(outDir, "INFO.DAT"), filepath.Join(outDir, "GAME.DAT"))
	assert.NoError(t, err)
	defer a.Close()
	for _, e := range a.TOC.Entries {
		got, err := a.ReadPayload(e)
		assert.NoError(t, err)
		assert.Equal(t, payloads[e.Name], got)
	}
}

func TestPackPrefersEditedOverOriginal(t *testing.T) {
	dir := t.TempDir()
	payloads := map[string][]byte{"tex.twx": {9, 9, 9}}
	infoPath, gamePath := writeFixtureArchive(t, dir, payloads)

	extractDir := filepath.Join(dir, "extracted")
	assert.NoError(t, Unpack(infoPath, gamePath, extractDir))

	editedDir := filepath.Join(dir, "edited")
	assert.NoError(t, os.MkdirAll(editedDir, 0o755))
	edited := []byte{1, 2, 3, 4}
	assert.NoError(t, os.WriteFile(filepath.Join(editedDir, "tex.twx"), edited, 0o644))

	outDir := filepath.Join(dir, "repacked")
	assert.NoError(t, Pack(infoPath, extractDir, editedDir, outDir))

	a, err := Open(filepath.Join(outDir, "INFO.DAT"), filepath.Join(outDir, "GAME.DAT"))
	assert.NoError(t, err)
	defer a.Close()
	got, err := a.ReadPayload(a.TOC.Entries[0])
	assert.NoError(t, err)
	assert.Equal(t, edited, got)
}

func TestPackFailsWhenOriginalMissing(t *testing.T) {
	dir := t.TempDir()
	payloads := map[string][]byte{"tex.twx": {1}}
	infoPath, _ := writeFixtureArchive(t, dir, payloads)

	// Neither edited nor original directory has the payload.
	err := Pack(infoPath, filepath.Join(dir, "nope"), filepath.Join(dir, "also-nope"), filepath.Join(dir, "out"))
	assert.Error(t, err)
}

func TestZeroBlockEntrySkipsIO(t *testing.T) {
	dir := t.TempDir()
	infoPath, gamePath := writeFixtureArchive(t, dir, map[string][]byte{})
	var e toc.FileEntry
	e.BlockCount = 0

	a, err := Open(infoPath, gamePath)
	assert.NoError(t, err)
	defer a.Close()

	got, err := a.ReadPayload(e)
	assert.NoError(t, err)
	assert.Nil(t, got)
}
