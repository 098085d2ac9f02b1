package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
)

// NextName returns the first prefixN.lvl, counting from 1, that fsys does
// not already hold.
func NextName(fsys fs.FS, prefix string) string {
	for n := 1; ; n++ {
		name := prefix + strconv.Itoa(n) + ".lvl"
		if _, err := fs.Stat(fsys, name); errors.Is(err, fs.ErrNotExist) {
			return name
		}
	}
}

// SaveFile writes l to p, replacing any existing file.
func SaveFile(p string, l *Level) error {
	if err := os.WriteFile(p, Encode(l), 0o644); err != nil {
		return fmt.Errorf("save level %s: %w", p, err)
	}
	return nil
}
