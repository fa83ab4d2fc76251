package dataset

import "github.com/katalvlaran/dpgraph/core"

// Column describes one named column of a Table: its declared type and,
// when known ahead of load, its public bounds and row count.
type Column struct {
	Name     string
	DataType core.DataType
	NumRows  *int64
	Lower    []float64
	Upper    []float64
}

// Table is a named, column-oriented data source a graph Source node can
// draw from. Implementations own their own storage (CSV file, in-memory
// slice, database cursor); dataset does not prescribe one.
type Table interface {
	// Columns lists every column this table exposes, in a stable order.
	Columns() []Column

	// Column loads the named column as a core.Value, or an error if the
	// name is unknown or the underlying load fails.
	Column(name string) (core.Value, error)

	// NumRows reports the table's row count.
	NumRows() (int64, error)
}

// Dataset groups one or more named Tables under a single provenance id,
// the unit a DatasetID on core.ValueProperties refers back to.
type Dataset interface {
	// ID is the provenance identifier threaded through
	// core.ValueProperties.DatasetID by every transform applied to data
	// drawn from this Dataset.
	ID() string

	// Table returns the named table, or an error if it does not exist.
	Table(name string) (Table, error)

	// Tables lists every table name this Dataset exposes.
	Tables() []string
}
