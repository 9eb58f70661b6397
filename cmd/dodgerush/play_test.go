package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckConfigPath(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.yaml")
	if err := os.WriteFile(valid, []byte("player:\n  max_speed: 600\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("player: [\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"no flag", "", false},
		{"valid file", valid, false},
		{"missing file", filepath.Join(dir, "missing.yaml"), true},
		{"invalid yaml", broken, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkConfigPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkConfigPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
