package main

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"sortedhash/internal/logutil"
	"sortedhash/internal/sortedmap"
)

// loadPath reads key=value lines from path, or from stdin when path is "-".
func loadPath(cmd *cobra.Command, path string) (*sortedmap.Map, error) {
	capacity, _ := cmd.Flags().GetInt("capacity")

	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	m, err := loadMap(r, capacity)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	slog.Debug("loaded", "path", path, "entries", m.Len(), "buckets", m.Cap())
	return m, nil
}

// maxLineSize bounds a single key=value line.
var maxLineSize = 16 << 20

// loadMap parses one key=value pair per line into a new map. Blank lines
// and lines starting with # are skipped. Everything after the first = is
// the value.
func loadMap(r io.Reader, capacity int) (*sortedmap.Map, error) {
	m, err := sortedmap.New(capacity)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			m.Close()
			return nil, errors.Errorf("line %d: missing '='", n)
		}
		if err := m.Set(key, value); err != nil {
			m.Close()
			return nil, errors.Wrapf(err, "line %d", n)
		}
		logutil.Trace("loaded line", "line", n, "key", key)
	}
	if err := scanner.Err(); err != nil {
		m.Close()
		return nil, errors.Wrapf(err, "line %d", n+1)
	}
	return m, nil
}
