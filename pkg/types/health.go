package types

// HealthResponse represents the JSON health response
type HealthResponse struct {
	Status        string        `json:"status"`
	Service       string        `json:"service"`
	Version       string        `json:"version"`
	Timestamp     string        `json:"timestamp"`
	SystemInfo    SystemInfo    `json:"system_info"`
	ArraySummary  ArraySummary  `json:"array_summary"`
	Arrays        []ArrayHealth `json:"arrays"`
	Personalities []string      `json:"personalities,omitempty"`
	UnusedDevices string        `json:"unused_devices,omitempty"`
}

// SystemInfo represents system information in JSON
type SystemInfo struct {
	Platform       string `json:"platform"`
	OS             string `json:"os"`
	Hostname       string `json:"hostname,omitempty"`
	KernelVersion  string `json:"kernel_version,omitempty"`
	MdstatPresent  bool   `json:"mdstat_present"`
	MdadmAvailable bool   `json:"mdadm_available"`
	MdadmPath      string `json:"mdadm_path,omitempty"`
}

// ArraySummary provides a summary of md array health
type ArraySummary struct {
	TotalArrays    int `json:"total_arrays"`
	ActiveArrays   int `json:"active_arrays"`
	DegradedArrays int `json:"degraded_arrays"`
	FailedArrays   int `json:"failed_arrays"`
	UnknownArrays  int `json:"unknown_arrays"`
}

// ArrayHealth represents individual md array health in JSON
type ArrayHealth struct {
	Name          string         `json:"name"`
	Status        string         `json:"status"`
	RaidLevel     string         `json:"raid_level"`
	HealthyDrives string         `json:"healthy_drives"`
	UsableSize    string         `json:"usable_size"`
	StatusCode    int            `json:"status_code"`
	Sync          []SyncActivity `json:"sync,omitempty"`
	Bitmap        string         `json:"bitmap,omitempty"`
}

// SyncActivity represents one in-flight maintenance operation on an array.
// An array can report recovery, resync, and check activity at the same time.
type SyncActivity struct {
	Action   string `json:"action"`
	Progress string `json:"progress"`
	Finish   string `json:"finish"`
	Speed    string `json:"speed"`
}
