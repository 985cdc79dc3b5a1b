package mdstat

import (
	"fmt"
	"strings"
)

const (
	headerPrefix  = "Personalities :"
	trailerPrefix = "unused devices:"
)

// cursor walks the normalized line sequence. Every lookahead goes through
// peek so the parser can never read past the end of input.
type cursor struct {
	lines []string
	n     int
}

func (c *cursor) done() bool {
	return c.n >= len(c.lines)
}

func (c *cursor) current() string {
	return c.lines[c.n]
}

// peek returns the line after the current one without consuming it.
func (c *cursor) peek() (string, bool) {
	if c.n+1 < len(c.lines) {
		return c.lines[c.n+1], true
	}
	return "", false
}

// ParseFile reads and parses the report at path. An unreadable path yields an
// empty report with no diagnostics.
func ParseFile(path string) (*Report, []Diagnostic) {
	return Parse(ReadLines(path))
}

// Parse consumes a normalized line sequence and builds the structured report.
// The returned diagnostics describe every unit of input that had to be
// skipped; they never indicate a failed parse.
func Parse(lines []string) (*Report, []Diagnostic) {
	report := &Report{}
	var diags []Diagnostic

	if len(lines) == 0 {
		return report, diags
	}

	cur := &cursor{lines: lines}

	if rest, ok := strings.CutPrefix(cur.current(), headerPrefix); ok {
		report.Personalities = strings.TrimSpace(rest)
		cur.n++
	} else {
		diags = append(diags, Diagnostic{Line: 0, Message: "mdstat personalities not found at line 0: " + cur.current()})
	}

	for !cur.done() {
		line := cur.current()

		var firstTwo string
		if len(line) >= 2 {
			firstTwo = line[:2]
		}

		switch firstTwo {
		case "md":
			if dev, ok := parseDeviceBlock(cur, &diags); ok {
				report.Devices = append(report.Devices, dev)
			}
		case "un":
			if rest, ok := strings.CutPrefix(line, trailerPrefix); ok {
				report.UnusedDevices = strings.TrimSpace(rest)
			} else {
				diags = append(diags, Diagnostic{Line: cur.n, Message: "unexpected mdstat trailer line: " + line})
			}
		default:
			diags = append(diags, Diagnostic{Line: cur.n, Message: "unexpected mdstat line: " + line})
		}

		cur.n++
	}

	return report, diags
}

// parseDeviceBlock handles one device block starting at the cursor's current
// line. It advances the cursor over the config line and any annotation lines
// it consumes, leaving it on the last line of the block. A false return means
// the block was malformed and no device should be recorded.
func parseDeviceBlock(cur *cursor, diags *[]Diagnostic) (Device, bool) {
	line := cur.current()

	name, settings, found := strings.Cut(line, ":")
	if !found {
		*diags = append(*diags, Diagnostic{Line: cur.n, Message: "unexpected md device line structure: " + line})
		return Device{}, false
	}

	dev := Device{Name: strings.TrimSpace(name)}

	fields := strings.Fields(settings)
	if len(fields) >= 2 {
		dev.Status = fields[0]
		dev.RaidLevel = fields[1]
		dev.Members = append(dev.Members, fields[2:]...)
	}

	// The line after the device line is always the config line. A device
	// block cut off at end of input is abandoned rather than read past.
	config, ok := cur.peek()
	if !ok {
		*diags = append(*diags, Diagnostic{Line: cur.n, Message: "md device block truncated at end of input: " + dev.Name})
		return Device{}, false
	}

	tokens := strings.Fields(config)
	if len(tokens) < 4 {
		*diags = append(*diags, Diagnostic{Line: cur.n + 1, Message: "unexpected md device config: " + config})
	} else {
		dev.UsableSize = tokens[0] + " " + tokens[1]
		dev.HealthyCount = strings.Trim(tokens[len(tokens)-2], "[]")
		dev.MemberStatusMask = tokens[len(tokens)-1]
		if len(tokens) > 4 {
			dev.Extra = " " + strings.Join(tokens[2:len(tokens)-2], " ")
		}
	}
	cur.n++

	// Annotation lines follow in any number; the first line that matches no
	// annotation belongs to the next block or the trailer and stays put.
	for {
		next, ok := cur.peek()
		if !ok {
			break
		}
		kind, value, matched := matchAnnotation(next)
		if !matched {
			break
		}
		switch kind {
		case annRecovery:
			dev.Recovery = value
		case annResync:
			dev.Resync = value
		case annCheck:
			dev.CheckArray = value
		case annBitmap:
			dev.Bitmap = value
		}
		cur.n++
	}

	if dev.MemberStatusMask != "" && len(dev.Members) != len(dev.MemberStatusMask)-2 {
		*diags = append(*diags, Diagnostic{
			Line:    -1,
			Message: fmt.Sprintf("md device %s has %d members but status mask %s", dev.Name, len(dev.Members), dev.MemberStatusMask),
		})
	}

	return dev, true
}

type annotationKind int

const (
	annRecovery annotationKind = iota
	annResync
	annCheck
	annBitmap
)

// annotationMarkers in match priority order. Markers are substring-matched,
// not anchored: the kernel indents and decorates these lines freely.
var annotationMarkers = []struct {
	kind   annotationKind
	marker string
}{
	{annRecovery, "recovery ="},
	{annResync, "resync ="},
	{annCheck, "check ="},
	{annBitmap, "bitmap:"},
}

// matchAnnotation reports which annotation, if any, the line carries and the
// trimmed value after the matched marker.
func matchAnnotation(line string) (annotationKind, string, bool) {
	for _, m := range annotationMarkers {
		if i := strings.Index(line, m.marker); i >= 0 {
			return m.kind, strings.TrimSpace(line[i+len(m.marker):]), true
		}
	}
	return 0, "", false
}
