package filter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Provider resolves filter tables by wavelet family name.
// Implementations must be safe for concurrent use. Returned tables belong
// to the caller.
type Provider interface {
	Table(family string) (*Table, error)
}

// MemoryProvider is an in-memory table registry.
type MemoryProvider struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

// NewMemoryProvider creates an empty registry.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{tables: make(map[string]*Table)}
}

// Register validates a copy of t and stores it under family, replacing any
// previous table.
func (m *MemoryProvider) Register(family string, t *Table) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("family %q: %w", family, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[family] = t.Clone()
	return nil
}

// Table returns a copy of the table registered for family.
func (m *MemoryProvider) Table(family string) (*Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tables[family]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTableNotFound, family)
	}
	return t.Clone(), nil
}

// Families returns the registered family names in sorted order.
func (m *MemoryProvider) Families() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.tables))
	for name := range m.tables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DirProvider loads tables from CSV files named "<family>Tables.csv" in a
// directory. Each row holds an abscissa, a scaling sample and a wavelet
// sample. An optional header row names the columns supp, phi and psi in any
// order.
type DirProvider struct {
	dir string
}

// NewDirProvider creates a provider reading from dir.
func NewDirProvider(dir string) *DirProvider {
	return &DirProvider{dir: dir}
}

// Path returns the file a family's table is read from.
func (d *DirProvider) Path(family string) string {
	return filepath.Join(d.dir, family+tableFileSuffix)
}

// Table reads and validates the family's table file.
func (d *DirProvider) Table(family string) (*Table, error) {
	if family == "" || family != filepath.Base(family) {
		return nil, fmt.Errorf("%w: invalid family name %q", ErrTableNotFound, family)
	}

	path := d.Path(family)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTableNotFound, path)
		}
		return nil, fmt.Errorf("failed to open table file: %w", err)
	}
	defer func() { _ = f.Close() }()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ReadCSV parses a table in the DirProvider file format.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = tableColumns
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrInvalidTable)
	}

	// Column order: supp, phi, psi unless a header says otherwise.
	order := [tableColumns]int{0, 1, 2}
	if _, err := strconv.ParseFloat(records[0][0], 64); err != nil {
		order, err = headerOrder(records[0])
		if err != nil {
			return nil, err
		}
		records = records[1:]
	}

	t := &Table{
		Support: make([]float64, len(records)),
		Phi:     make([]float64, len(records)),
		Psi:     make([]float64, len(records)),
	}
	cols := [tableColumns][]float64{t.Support, t.Phi, t.Psi}

	for i, rec := range records {
		for c, dst := range cols {
			v, err := strconv.ParseFloat(rec[order[c]], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %w", ErrInvalidTable, i+1, err)
			}
			dst[i] = v
		}
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// headerOrder maps the supp, phi and psi columns to their header positions.
func headerOrder(header []string) ([tableColumns]int, error) {
	var order [tableColumns]int
	seen := [tableColumns]bool{}
	for pos, name := range header {
		var c int
		switch strings.ToLower(strings.TrimSpace(name)) {
		case columnSupport:
			c = 0
		case columnPhi:
			c = 1
		case columnPsi:
			c = 2
		default:
			return order, fmt.Errorf("%w: unknown column %q", ErrInvalidTable, name)
		}
		if seen[c] {
			return order, fmt.Errorf("%w: duplicate column %q", ErrInvalidTable, name)
		}
		seen[c] = true
		order[c] = pos
	}
	return order, nil
}

// WriteCSV writes t in the DirProvider file format, header included.
func WriteCSV(w io.Writer, t *Table) error {
	if err := t.Validate(); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{columnSupport, columnPhi, columnPsi}); err != nil {
		return err
	}
	for i := range t.Support {
		rec := []string{
			strconv.FormatFloat(t.Support[i], 'g', -1, 64),
			strconv.FormatFloat(t.Phi[i], 'g', -1, 64),
			strconv.FormatFloat(t.Psi[i], 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// cachedProvider memoizes successful lookups of another provider.
// Concurrent lookups of one family share a single load; loads of different
// families run independently.
type cachedProvider struct {
	next   Provider
	loads  singleflight.Group
	mu     sync.RWMutex
	tables map[string]*Table
}

// Cached wraps p so each family's table is loaded at most once after a
// successful lookup. Failed lookups are retried on the next call.
func Cached(p Provider) Provider {
	return &cachedProvider{next: p, tables: make(map[string]*Table)}
}

func (c *cachedProvider) Table(family string) (*Table, error) {
	if t, ok := c.lookup(family); ok {
		return t.Clone(), nil
	}

	v, err, _ := c.loads.Do(family, func() (any, error) {
		if t, ok := c.lookup(family); ok {
			return t, nil
		}
		t, err := c.next.Table(family)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.tables[family] = t
		c.mu.Unlock()
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Table).Clone(), nil
}

func (c *cachedProvider) lookup(family string) (*Table, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tables[family]
	return t, ok
}
