package mdstat

import "strings"

// Progress holds the expanded fields of a recovery/resync/check annotation
// such as "12.3% (123456/987654) finish=45.6min speed=9999K/sec".
type Progress struct {
	Progress string // percent and fraction, e.g. "12.3% (123456/987654)"
	Finish   string // estimated time to completion, e.g. "45.6min"
	Speed    string // throughput, e.g. "9999K/sec"
}

// ParseProgress expands a raw progress annotation. The format is exactly four
// whitespace-separated tokens; anything else yields no fields at all rather
// than a partial result.
func ParseProgress(raw string) (Progress, bool) {
	tokens := strings.Fields(raw)
	if len(tokens) != 4 {
		return Progress{}, false
	}
	return Progress{
		Progress: tokens[0] + " " + tokens[1],
		Finish:   strings.TrimPrefix(tokens[2], "finish="),
		Speed:    strings.TrimPrefix(tokens[3], "speed="),
	}, true
}

// Bitmap holds the expanded fields of a write-intent bitmap annotation such
// as "1/1 pages [4KB], 65536KB chunk, file: /bitmap.bin".
type Bitmap struct {
	OnMem        string // resident page descriptor, e.g. "1/1 pages [4KB]"
	ChunkSize    string // chunk descriptor, e.g. "65536KB chunk"
	ExternalFile string // backing file path, empty when the bitmap is internal
}

// ParseBitmap expands a raw bitmap annotation. At least the page and chunk
// parts must be present; the backing file is optional.
func ParseBitmap(raw string) (Bitmap, bool) {
	parts := strings.Split(raw, ",")
	if len(parts) < 2 {
		return Bitmap{}, false
	}
	b := Bitmap{
		OnMem:     strings.TrimSpace(parts[0]),
		ChunkSize: strings.TrimSpace(parts[1]),
	}
	if len(parts) > 2 {
		if i := strings.Index(parts[2], "file:"); i >= 0 {
			b.ExternalFile = strings.TrimSpace(parts[2][i+len("file:"):])
		}
	}
	return b, true
}
