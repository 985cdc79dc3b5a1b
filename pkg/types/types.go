package types

// Row is one projected table row: a flat mapping of column name to string
// value. Column presence follows the table contracts in internal/tables; a
// column a row cannot provide is absent, never empty-but-present.
type Row map[string]string

// HealthStatus represents array health status values
type HealthStatus int

const (
	HealthStatusUnknown  HealthStatus = 0
	HealthStatusOK       HealthStatus = 1
	HealthStatusWarning  HealthStatus = 2
	HealthStatusCritical HealthStatus = 3
)
