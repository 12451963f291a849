// Package summary writes the human-readable per-run record emitted after a
// successful backup.
package summary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const fileDateLayout = "01-02-2006"

// Report holds the facts recorded after a successful run. Size and the two
// free-space figures are best effort; negative size renders as N/A, as does
// either free-space value when its Known flag is false.
type Report struct {
	Identity    string
	BackupPath  string
	SizeBytes   int64
	WorkingFree Space
	ArchiveFree Space
	When        time.Time
}

type Space struct {
	Bytes uint64
	Known bool
}

// FileName returns the summary file name for the given day.
func FileName(day time.Time) string {
	return "backup_summary_" + day.Format(fileDateLayout) + ".txt"
}

// Write renders the report into dir. The file is replaced if a run already
// happened today.
func Write(dir string, r Report) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "=== backup summary %s ===\n", r.When.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "system: %s\n", r.Identity)
	fmt.Fprintf(&b, "backup: %s\n", r.BackupPath)
	fmt.Fprintf(&b, "size: %s\n", formatSize(r.SizeBytes))
	fmt.Fprintf(&b, "free space (working): %s\n", formatSpace(r.WorkingFree))
	fmt.Fprintf(&b, "free space (archive): %s\n", formatSpace(r.ArchiveFree))

	path := filepath.Join(dir, FileName(r.When))
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing summary %s: %w", path, err)
	}
	return path, nil
}

func formatSize(n int64) string {
	if n < 0 {
		return "N/A"
	}
	return formatBytes(uint64(n))
}

func formatSpace(s Space) string {
	if !s.Known {
		return "N/A"
	}
	return formatBytes(s.Bytes)
}

func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB (%d bytes)", float64(n)/float64(div), "KMGTPE"[exp], n)
}
