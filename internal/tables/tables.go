// Package tables projects parsed mdstat reports into three flat tabular
// views: md_devices, md_drives, and md_personalities. Column names are a
// fixed contract other surfaces depend on.
package tables

import (
	"fmt"
	"strconv"
	"strings"

	"mdstat-exporter/internal/mdstat"
	"mdstat-exporter/pkg/types"

	"github.com/rs/zerolog"
)

// Provider generates the md_* table views. Every generator call re-reads and
// re-parses the source path from scratch: no caching, no state shared between
// calls, so concurrent callers are safe. Diagnostics from the parse and the
// projection are logged at warn level; generators always return a (possibly
// empty) row set and never fail.
type Provider struct {
	path string
	log  zerolog.Logger
}

// NewProvider creates a provider reading the report at path.
func NewProvider(path string, log zerolog.Logger) *Provider {
	return &Provider{
		path: path,
		log:  log.With().Str("component", "tables").Logger(),
	}
}

// Devices generates the md_devices view.
func (p *Provider) Devices() []types.Row {
	report, diags := mdstat.ParseFile(p.path)
	rows, projDiags := DeviceRows(report)
	p.logDiagnostics(append(diags, projDiags...))
	return rows
}

// Drives generates the md_drives view.
func (p *Provider) Drives() []types.Row {
	report, diags := mdstat.ParseFile(p.path)
	rows, projDiags := DriveRows(report)
	p.logDiagnostics(append(diags, projDiags...))
	return rows
}

// Personalities generates the md_personalities view.
func (p *Provider) Personalities() []types.Row {
	report, diags := mdstat.ParseFile(p.path)
	p.logDiagnostics(diags)
	return PersonalityRows(report)
}

func (p *Provider) logDiagnostics(diags []mdstat.Diagnostic) {
	for _, d := range diags {
		p.log.Warn().Int("line", d.Line).Msg(d.Message)
	}
}

// DeviceRows builds one row per parsed device: identity, status, level,
// capacity, and health columns, the expanded progress and bitmap annotations
// when present, and the report-level unused-devices string on every row.
func DeviceRows(report *mdstat.Report) ([]types.Row, []mdstat.Diagnostic) {
	rows := make([]types.Row, 0, len(report.Devices))
	var diags []mdstat.Diagnostic

	for _, dev := range report.Devices {
		r := types.Row{
			"device_name":    dev.Name,
			"status":         dev.Status,
			"raid_level":     dev.RaidLevel,
			"healthy_drives": dev.HealthyCount,
			"usable_size":    dev.UsableSize,
			"other":          strings.TrimSpace(dev.Extra),
		}

		expand := func(raw, prefix string) {
			if raw == "" {
				return
			}
			pr, ok := mdstat.ParseProgress(raw)
			if !ok {
				diags = append(diags, mdstat.Diagnostic{Line: -1, Message: "unexpected recovery/resync line format: " + raw})
				return
			}
			r[prefix+"_progress"] = pr.Progress
			r[prefix+"_finish"] = pr.Finish
			r[prefix+"_speed"] = pr.Speed
		}
		expand(dev.Recovery, "discovery")
		expand(dev.Resync, "resync")
		expand(dev.CheckArray, "check_array")

		if dev.Bitmap != "" {
			bm, ok := mdstat.ParseBitmap(dev.Bitmap)
			if !ok {
				diags = append(diags, mdstat.Diagnostic{Line: -1, Message: "unexpected bitmap line structure: " + dev.Bitmap})
			} else {
				r["bitmap_on_mem"] = bm.OnMem
				r["bitmap_chunk_size"] = bm.ChunkSize
				if bm.ExternalFile != "" {
					r["bitmap_external_file"] = bm.ExternalFile
				}
			}
		}

		r["unused_devices"] = report.UnusedDevices
		rows = append(rows, r)
	}

	return rows, diags
}

// DriveRows builds one row per member token per device. Members without a
// parseable bracketed slot index are skipped; members whose slot falls
// outside the status mask keep their row but omit the status column.
func DriveRows(report *mdstat.Report) ([]types.Row, []mdstat.Diagnostic) {
	var rows []types.Row
	var diags []mdstat.Diagnostic

	for _, dev := range report.Devices {
		for _, member := range dev.Members {
			slot, ok := memberSlot(member)
			if !ok {
				diags = append(diags, mdstat.Diagnostic{Line: -1, Message: "unexpected member token format: " + member})
				continue
			}

			r := types.Row{
				"md_device_name": dev.Name,
				"drive_name":     member,
				"slot":           strconv.Itoa(slot),
			}

			// Mask layout is "[UU_]": slot i lives at mask[i+1], so valid
			// slots are 0 through len(mask)-3 inclusive.
			mask := dev.MemberStatusMask
			if slot >= 0 && slot < len(mask)-2 {
				if mask[slot+1] == 'U' {
					r["status"] = "1"
				} else {
					r["status"] = "0"
				}
			} else {
				diags = append(diags, mdstat.Diagnostic{
					Line:    -1,
					Message: fmt.Sprintf("member slot %d out of range for status mask %q on %s", slot, mask, dev.Name),
				})
			}

			rows = append(rows, r)
		}
	}

	return rows, diags
}

// PersonalityRows builds one row per enabled personality token with the
// surrounding brackets stripped.
func PersonalityRows(report *mdstat.Report) []types.Row {
	fields := strings.Fields(report.Personalities)
	rows := make([]types.Row, 0, len(fields))
	for _, token := range fields {
		rows = append(rows, types.Row{"name": strings.Trim(token, "[]")})
	}
	return rows
}

// memberSlot extracts the bracketed slot index from a member token such as
// "sda1[0]" or "sdb1[1](F)".
func memberSlot(member string) (int, bool) {
	start := strings.IndexByte(member, '[')
	if start < 0 {
		return 0, false
	}
	end := strings.IndexByte(member[start:], ']')
	if end < 0 {
		return 0, false
	}
	slot, err := strconv.Atoi(member[start+1 : start+end])
	if err != nil {
		return 0, false
	}
	return slot, true
}
