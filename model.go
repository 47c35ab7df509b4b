package qsql

// Modeler is implemented by types that map to a table.
type Modeler interface {
	TableName() string
}
