package rotation

import (
	"testing"

	"github.com/rmarek/img-rotator/internal/artifact"
)

func TestDetect(t *testing.T) {
	w := &artifact.Artifact{Name: "sys_backup_06-01-2024.img"}
	a := &artifact.Artifact{Name: "sys_backup_05-01-2024.img"}

	cases := []struct {
		name     string
		working  *artifact.Artifact
		archive  *artifact.Artifact
		want     State
		wantName string
	}{
		{"neither", nil, nil, Neither, "neither"},
		{"working only", w, nil, WorkingOnly, "working-only"},
		{"archive only", nil, a, ArchiveOnly, "archive-only"},
		{"both", w, a, Both, "both"},
	}

	for _, tc := range cases {
		if got := Detect(tc.working, tc.archive); got != tc.want {
			t.Fatalf("%s: Detect() = %v, want %v", tc.name, got, tc.want)
		}
		if got := tc.want.String(); got != tc.wantName {
			t.Fatalf("%s: String() = %q, want %q", tc.name, got, tc.wantName)
		}
	}
}
