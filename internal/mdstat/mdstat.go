// Package mdstat parses the kernel's /proc/mdstat report into a structured
// form. Parsing is a single synchronous pass over the normalized line
// sequence; structural problems in the input never fail the parse, they are
// returned as Diagnostic values alongside the (possibly partial) report.
package mdstat

// Path is the well-known location of the kernel's md status report.
const Path = "/proc/mdstat"

// Device describes one assembled md array block from the report. All fields
// are kept as the raw tokens the kernel printed; interpretation (progress
// expansion, member slots, counts) happens in the projection layer.
type Device struct {
	Name             string   // device identifier, e.g. "md0"
	Status           string   // operational state, e.g. "active"
	RaidLevel        string   // e.g. "raid1"
	Members          []string // raw member tokens, e.g. "sda1[0]" or "sdb1[1](F)"
	UsableSize       string   // two-token capacity, e.g. "2048000 blocks"
	HealthyCount     string   // live/total members, e.g. "2/2"
	MemberStatusMask string   // bracketed per-slot status, e.g. "[UU]"
	Extra            string   // unrecognized middle tokens of the config line
	Recovery         string   // raw "recovery =" annotation, if present
	Resync           string   // raw "resync =" annotation, if present
	CheckArray       string   // raw "check =" annotation, if present
	Bitmap           string   // raw "bitmap:" annotation, if present
}

// Report is the result of one parse. It is never mutated after Parse returns
// and carries no state between calls.
type Report struct {
	Personalities string // header remainder, e.g. "[raid1] [raid6]"
	Devices       []Device
	UnusedDevices string // trailer remainder, commonly "<none>"
}

// Diagnostic records a recoverable structural problem found while parsing.
// Nothing a Diagnostic describes aborts the parse; the offending line,
// device, or annotation is skipped and parsing continues.
type Diagnostic struct {
	// Line is the index into the normalized line sequence the problem was
	// found at, or -1 when the problem is not tied to a source line.
	Line    int
	Message string
}
