package artifact

import (
	"testing"
	"time"
)

func TestName(t *testing.T) {
	day := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	if got := Name("sys", day); got != "sys_backup_06-01-2024.img" {
		t.Fatalf("Name() = %q", got)
	}
}

func TestParseStamp(t *testing.T) {
	cases := []struct {
		name     string
		identity string
		ok       bool
	}{
		{"sys_backup_06-01-2024.img", "sys", true},
		{"sys_backup_12-31-2023.img", "sys", true},
		{"other_backup_06-01-2024.img", "sys", false},
		{"sys_backup_06-01-2024.img.tmp", "sys", false},
		{"sys_backup_2024-06-01.img", "sys", false},
		{"sys_backup_.img", "sys", false},
		{"backup_06-01-2024.log", "sys", false},
	}

	for _, tc := range cases {
		stamp, ok := parseStamp(tc.name, tc.identity)
		if ok != tc.ok {
			t.Fatalf("parseStamp(%q, %q) ok = %v, want %v", tc.name, tc.identity, ok, tc.ok)
		}
		if ok && stamp.IsZero() {
			t.Fatalf("parseStamp(%q, %q) returned zero time", tc.name, tc.identity)
		}
	}
}
