package storage

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tair/stockdesk/internal/inventory/domain"
	"github.com/tair/stockdesk/pkg/logger"
)

// FileStore reads and writes the primary inventory file. The format is one
// item per line, `id,name,quantity,price`, no header and no quoting, with
// the price carrying exactly two fraction digits.
//
// Known limitation carried over from the legacy format: commas embedded in
// names are stripped before writing, so a name containing a comma does not
// round-trip.
type FileStore struct {
	path string
}

// NewFileStore creates a file store bound to the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file path the store is bound to
func (s *FileStore) Path() string {
	return s.path
}

// Save rewrites the whole file from the given items. Failures surface to
// the caller; the in-memory store stays the source of truth for the session.
func (s *FileStore) Save(items []domain.Item) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", s.path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, item := range items {
		name := strings.ReplaceAll(item.Name, ",", "")
		fmt.Fprintf(w, "%s,%s,%d,%s\n", item.ID, name, item.Quantity, item.Price.StringFixed(2))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// Load reads the bound file. A missing file yields an empty inventory, not
// an error. Lines must split into exactly four fields; malformed lines are
// skipped one by one with a diagnostic and never abort the whole file.
func (s *FileStore) Load() ([]domain.Item, error) {
	return s.read(s.path, false)
}

// LoadLenient reads a file accepting four or more fields per line, ignoring
// trailing extras such as an exported total column. Used by import.
func (s *FileStore) LoadLenient(path string) ([]domain.Item, error) {
	return s.read(path, true)
}

func (s *FileStore) read(path string, lenient bool) ([]domain.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Item{}, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	items := []domain.Item{}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		item, err := parseLine(line, lenient)
		if err != nil {
			logger.Logger.Warn().
				Str("file", path).
				Int("line", lineNo).
				Err(err).
				Msg("Skipping malformed line")
			continue
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return items, nil
}

// parseLine splits a raw line into an item. Strict mode demands exactly
// four fields; lenient mode accepts extras and ignores them.
func parseLine(line string, lenient bool) (domain.Item, error) {
	fields := strings.Split(line, ",")
	if lenient {
		if len(fields) < 4 {
			return domain.Item{}, fmt.Errorf("expected at least 4 fields, got %d", len(fields))
		}
	} else if len(fields) != 4 {
		return domain.Item{}, fmt.Errorf("expected 4 fields, got %d", len(fields))
	}

	id := strings.TrimSpace(fields[0])
	name := strings.TrimSpace(fields[1])
	if id == "" || name == "" {
		return domain.Item{}, fmt.Errorf("empty id or name")
	}

	qty, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil || qty < 0 {
		return domain.Item{}, fmt.Errorf("invalid quantity %q", fields[2])
	}

	price, err := decimal.NewFromString(strings.TrimSpace(fields[3]))
	if err != nil || price.IsNegative() {
		return domain.Item{}, fmt.Errorf("invalid price %q", fields[3])
	}

	return domain.Item{ID: id, Name: name, Quantity: qty, Price: price}, nil
}
