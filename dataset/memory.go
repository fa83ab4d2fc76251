package dataset

import "github.com/katalvlaran/dpgraph/core"

// MemoryTable is a Table backed by columns already loaded into memory,
// useful for tests and small embedded pipelines that never touch a file
// or database.
type MemoryTable struct {
	columns []Column
	values  map[string]core.Value
	numRows int64
}

var _ Table = (*MemoryTable)(nil)

// NewMemoryTable builds a MemoryTable from columns and their matching
// values, keyed by column name.
func NewMemoryTable(numRows int64, columns []Column, values map[string]core.Value) *MemoryTable {
	return &MemoryTable{columns: columns, values: values, numRows: numRows}
}

func (t *MemoryTable) Columns() []Column {
	return t.columns
}

func (t *MemoryTable) Column(name string) (core.Value, error) {
	v, ok := t.values[name]
	if !ok {
		return core.Value{}, core.Errorf(core.InvalidParameter, "dataset: unknown column %q", name)
	}
	return v, nil
}

func (t *MemoryTable) NumRows() (int64, error) {
	return t.numRows, nil
}

// MemoryDataset is a Dataset backed by MemoryTables held in a map.
type MemoryDataset struct {
	id     string
	tables map[string]Table
}

var _ Dataset = (*MemoryDataset)(nil)

// NewMemoryDataset builds a MemoryDataset identified by id over tables.
func NewMemoryDataset(id string, tables map[string]Table) *MemoryDataset {
	return &MemoryDataset{id: id, tables: tables}
}

func (d *MemoryDataset) ID() string {
	return d.id
}

func (d *MemoryDataset) Table(name string) (Table, error) {
	t, ok := d.tables[name]
	if !ok {
		return nil, core.Errorf(core.InvalidParameter, "dataset: unknown table %q", name)
	}
	return t, nil
}

func (d *MemoryDataset) Tables() []string {
	names := make([]string, 0, len(d.tables))
	for name := range d.tables {
		names = append(names, name)
	}
	return names
}
