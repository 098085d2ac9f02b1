package leveldata

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
)

// Header is written at the top of every level file.
const Header = "# type width height x y"

// Parse reads records from r. Blank lines, comments and malformed lines are
// skipped; only read errors are returned.
func Parse(r io.Reader) (*Level, error) {
	lvl := &Level{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec, ok := parseRecord(strings.Fields(line))
		if !ok {
			lvl.Skipped++
			continue
		}
		lvl.Records = append(lvl.Records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return lvl, nil
}

// ParseString parses a level held in memory.
func ParseString(s string) (*Level, error) {
	return Parse(strings.NewReader(s))
}

func parseRecord(fields []string) (Record, bool) {
	if len(fields) != 5 || len(fields[0]) != 1 {
		return Record{}, false
	}
	kind := Kind(fields[0][0])
	if !kind.Valid() {
		return Record{}, false
	}
	w, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || w <= 0 {
		return Record{}, false
	}
	h, err := strconv.ParseFloat(fields[2], 64)
	if err != nil || h <= 0 {
		return Record{}, false
	}
	x, err := strconv.Atoi(fields[3])
	if err != nil {
		return Record{}, false
	}
	y, err := strconv.Atoi(fields[4])
	if err != nil {
		return Record{}, false
	}
	return Record{Kind: kind, Width: w, Height: h, X: x, Y: y}, true
}

// Encode renders a level in the text format.
func Encode(l *Level) []byte {
	var buf bytes.Buffer
	buf.WriteString(Header)
	buf.WriteByte('\n')
	for _, r := range l.Records {
		fmt.Fprintf(&buf, "%c %s %s %d %d\n", r.Kind,
			strconv.FormatFloat(r.Width, 'f', -1, 64),
			strconv.FormatFloat(r.Height, 'f', -1, 64),
			r.X, r.Y)
	}
	return buf.Bytes()
}

// Write encodes l to w.
func Write(w io.Writer, l *Level) error {
	if _, err := w.Write(Encode(l)); err != nil {
		return fmt.Errorf("write level %s: %w", l.Name, err)
	}
	return nil
}

// LoadFile parses the level at p inside fsys. The level is named after the
// file stem.
func LoadFile(fsys fs.FS, p string) (*Level, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", p, err)
	}
	defer f.Close()

	lvl, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", p, err)
	}
	lvl.Name = strings.TrimSuffix(path.Base(p), path.Ext(p))
	return lvl, nil
}

// LoadAll loads every *.lvl file in dir, sorted by name.
func LoadAll(fsys fs.FS, dir string) ([]*Level, error) {
	pattern := path.Join(dir, "*.lvl")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoLevels)
	}
	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	for _, m := range matches {
		lvl, err := LoadFile(fsys, m)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}
