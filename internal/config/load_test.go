package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const minimal = `
system:
  identity: sys
  sourceDevice: /dev/mmcblk0
  workingDir: /mnt/work
  archiveDir: /mnt/arch
`

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimal))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Rotation.Cooldown != 300*time.Second {
		t.Fatalf("cooldown = %v", cfg.Rotation.Cooldown)
	}
	if cfg.Rotation.MinFreeSpace != 10<<30 {
		t.Fatalf("minFreeSpace = %d", cfg.Rotation.MinFreeSpace)
	}
	if cfg.Rotation.RetentionDays != 30 {
		t.Fatalf("retentionDays = %d", cfg.Rotation.RetentionDays)
	}
	if cfg.Schedule.Reload.Mode != "auto" {
		t.Fatalf("reload mode = %q", cfg.Schedule.Reload.Mode)
	}
	if cfg.LogDir() != filepath.Join("/mnt/work", "backup_logs") {
		t.Fatalf("log dir = %q", cfg.LogDir())
	}
}

func TestLoadExplicitValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimal+`
rotation:
  retentionDays: 14
  cooldown: 5s
  minFreeSpace: 1073741824
schedule:
  cron: "0 3 * * *"
logging:
  level: debug
`))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Rotation.RetentionDays != 14 || cfg.Rotation.Cooldown != 5*time.Second {
		t.Fatalf("rotation = %+v", cfg.Rotation)
	}
	if cfg.Rotation.MinFreeSpace != 1<<30 {
		t.Fatalf("minFreeSpace = %d", cfg.Rotation.MinFreeSpace)
	}
	if cfg.Schedule.Cron != "0 3 * * *" {
		t.Fatalf("cron = %q", cfg.Schedule.Cron)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level = %q", cfg.Logging.Level)
	}
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("BACKUP_IDENTITY", "host42")

	cfg, err := Load(writeConfig(t, `
system:
  identity: $(BACKUP_IDENTITY)
  sourceDevice: /dev/sda
  workingDir: /mnt/work
  archiveDir: /mnt/arch
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.System.Identity != "host42" {
		t.Fatalf("identity = %q", cfg.System.Identity)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing identity", `
system:
  sourceDevice: /dev/sda
  workingDir: /mnt/work
  archiveDir: /mnt/arch
`},
		{"same working and archive", `
system:
  identity: sys
  sourceDevice: /dev/sda
  workingDir: /mnt/same
  archiveDir: /mnt/same
`},
		{"negative retention", minimal + `
rotation:
  retentionDays: -1
`},
		{"bad reload mode", minimal + `
schedule:
  reload:
    mode: magic
`},
	}

	for _, tc := range cases {
		if _, err := Load(writeConfig(t, tc.body)); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error")
	}
}
