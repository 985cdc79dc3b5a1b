package system

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/host"

	"mdstat-exporter/internal/utils"
)

// SystemInfo holds detected system information
type SystemInfo struct {
	OS            string
	Platform      Platform
	Hostname      string
	KernelVersion string
	MdstatPresent bool
	HasMdadm      bool
	MdadmPath     string
	MdadmVersion  string
}

// Platform represents the detected platform type
type Platform string

const (
	PlatformLinux   Platform = "linux"
	PlatformMacOS   Platform = "macos"
	PlatformUnknown Platform = "unknown"
)

// Detector handles system detection
type Detector struct {
	info       *SystemInfo
	mdstatPath string
	log        zerolog.Logger
}

// New creates a new system detector probing the given mdstat path
func New(mdstatPath string, log zerolog.Logger) *Detector {
	return &Detector{
		mdstatPath: mdstatPath,
		log:        log.With().Str("component", "system").Logger(),
	}
}

// Detect performs one-time system detection
func (d *Detector) Detect() *SystemInfo {
	if d.info != nil {
		return d.info // Return cached info if already detected
	}

	info := &SystemInfo{
		OS: runtime.GOOS,
	}

	// Determine platform
	switch info.OS {
	case "linux":
		info.Platform = PlatformLinux
	case "darwin":
		info.Platform = PlatformMacOS
	default:
		info.Platform = PlatformUnknown
	}

	if hi, err := host.Info(); err == nil {
		info.Hostname = hi.Hostname
		info.KernelVersion = hi.KernelVersion
	}

	if _, err := os.Stat(d.mdstatPath); err == nil {
		info.MdstatPresent = true
	}

	d.detectMdadm(info)
	d.logDetectedCapabilities(info)

	// Cache the info
	d.info = info
	return info
}

// GetInfo returns the cached system info (must call Detect first)
func (d *Detector) GetInfo() *SystemInfo {
	if d.info == nil {
		d.log.Warn().Msg("GetInfo called before Detect")
		return d.Detect()
	}
	return d.info
}

// detectMdadm detects mdadm availability
func (d *Detector) detectMdadm(info *SystemInfo) {
	path, err := exec.LookPath("mdadm")
	if err != nil {
		return
	}

	info.HasMdadm = true
	info.MdadmPath = path

	if version, err := utils.GetToolVersion("mdadm", "--version"); err == nil {
		info.MdadmVersion = version
	} else {
		info.MdadmVersion = "unknown"
	}
}

// logDetectedCapabilities logs the detected system capabilities
func (d *Detector) logDetectedCapabilities(info *SystemInfo) {
	d.log.Info().
		Str("platform", string(info.Platform)).
		Str("kernel", info.KernelVersion).
		Bool("mdstat_present", info.MdstatPresent).
		Bool("mdadm_available", info.HasMdadm).
		Str("mdadm_version", info.MdadmVersion).
		Msg("system detection complete")
}

// IsLinux returns true if running on Linux
func (info *SystemInfo) IsLinux() bool {
	return info.Platform == PlatformLinux
}

// CanMonitorRAID returns true if the md status report is readable
func (info *SystemInfo) CanMonitorRAID() bool {
	return info.MdstatPresent
}
