package cartridge

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/cespare/xxhash"
)

// LoadROM reads a ROM image from disk, transparently extracting the
// first entry of a .7z archive if the path has that extension. Plain
// ROM files (.gb, .gbc, .bin, or no recognized extension) are returned
// as-is.
func LoadROM(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cartridge: reading %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".7z") {
		return extract7z(path, data)
	}

	return data, nil
}

func extract7z(path string, raw []byte) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cartridge: opening archive %s: %w", path, err)
	}
	defer file.Close()

	r, err := sevenzip.NewReader(file, int64(len(raw)))
	if err != nil {
		return nil, fmt.Errorf("cartridge: reading archive %s: %w", path, err)
	}
	if len(r.File) == 0 {
		return nil, fmt.Errorf("cartridge: archive %s is empty", path)
	}

	entry, err := r.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("cartridge: extracting %s from archive: %w", r.File[0].Name, err)
	}
	defer entry.Close()

	data, err := io.ReadAll(entry)
	if err != nil {
		return nil, fmt.Errorf("cartridge: reading extracted entry: %w", err)
	}
	return data, nil
}

// Fingerprint returns a short hex digest of the ROM's contents, logged
// alongside the header so bug reports can be correlated to an exact
// ROM revision.
func Fingerprint(rom []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(rom))
}
