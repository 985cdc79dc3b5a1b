package health

import (
	"strings"
	"time"

	"mdstat-exporter/internal/mdstat"
	"mdstat-exporter/internal/system"
	"mdstat-exporter/internal/utils"
	"mdstat-exporter/pkg/types"
)

const (
	serviceVersion = "1.0.0"
	serviceName    = "mdstat-exporter"
)

// Service provides health data collection functionality
type Service struct {
	path    string
	sysInfo *system.SystemInfo
}

// New creates a new health service
func New(path string, sysInfo *system.SystemInfo) *Service {
	return &Service{
		path:    path,
		sysInfo: sysInfo,
	}
}

// GetHealthData collects current health information for JSON response. Each
// call performs a fresh parse of the mdstat report.
func (s *Service) GetHealthData() *types.HealthResponse {
	report, _ := mdstat.ParseFile(s.path)

	arrays := make([]types.ArrayHealth, len(report.Devices))
	totalArrays := len(report.Devices)
	activeArrays := 0
	degradedArrays := 0
	failedArrays := 0
	unknownArrays := 0

	for i, dev := range report.Devices {
		statusCode := utils.RaidStateValue(dev.Status)

		arrays[i] = types.ArrayHealth{
			Name:          dev.Name,
			Status:        dev.Status,
			RaidLevel:     dev.RaidLevel,
			HealthyDrives: dev.HealthyCount,
			UsableSize:    dev.UsableSize,
			StatusCode:    statusCode,
			Sync:          syncActivities(dev),
			Bitmap:        dev.Bitmap,
		}

		// Count health statuses
		switch statusCode {
		case 1:
			activeArrays++
		case 2:
			degradedArrays++
		case 3:
			failedArrays++
		default:
			unknownArrays++
		}
	}

	// Build system info
	systemInfo := types.SystemInfo{
		Platform:       string(s.sysInfo.Platform),
		OS:             s.sysInfo.OS,
		Hostname:       s.sysInfo.Hostname,
		KernelVersion:  s.sysInfo.KernelVersion,
		MdstatPresent:  s.sysInfo.MdstatPresent,
		MdadmAvailable: s.sysInfo.HasMdadm,
		MdadmPath:      s.sysInfo.MdadmPath,
	}

	// Build summary
	arraySummary := types.ArraySummary{
		TotalArrays:    totalArrays,
		ActiveArrays:   activeArrays,
		DegradedArrays: degradedArrays,
		FailedArrays:   failedArrays,
		UnknownArrays:  unknownArrays,
	}

	// Build response
	response := &types.HealthResponse{
		Status:        "ok",
		Service:       serviceName,
		Version:       serviceVersion,
		Timestamp:     time.Now().Format(time.RFC3339),
		SystemInfo:    systemInfo,
		ArraySummary:  arraySummary,
		Arrays:        arrays,
		Personalities: personalityNames(report.Personalities),
		UnusedDevices: report.UnusedDevices,
	}

	return response
}

// syncActivities expands every in-flight maintenance annotation on a device.
// Recovery, resync, and check are reported independently: the kernel grammar
// does not promise they are mutually exclusive.
func syncActivities(dev mdstat.Device) []types.SyncActivity {
	var activities []types.SyncActivity

	add := func(action, raw string) {
		if raw == "" {
			return
		}
		progress, ok := mdstat.ParseProgress(raw)
		if !ok {
			return
		}
		activities = append(activities, types.SyncActivity{
			Action:   action,
			Progress: progress.Progress,
			Finish:   progress.Finish,
			Speed:    progress.Speed,
		})
	}

	add("recovery", dev.Recovery)
	add("resync", dev.Resync)
	add("check", dev.CheckArray)

	return activities
}

// personalityNames strips the surrounding brackets from each personality
// token in the header remainder.
func personalityNames(personalities string) []string {
	fields := strings.Fields(personalities)
	names := make([]string, 0, len(fields))
	for _, token := range fields {
		names = append(names, strings.Trim(token, "[]"))
	}
	return names
}
