package userdata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsCloudConfig(t *testing.T) {
	tests := []struct {
		name string
		data string
		want bool
	}{
		{"cloud-config", "#cloud-config\npackages: [git]\n", true},
		{"cloud-config with CRLF", "#cloud-config\r\nruncmd: []\r\n", true},
		{"shell script", "#!/bin/bash\necho hi\n", false},
		{"header not first", "\n#cloud-config\n", false},
		{"header only", "#cloud-config", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCloudConfig([]byte(tt.data)); got != tt.want {
				t.Errorf("IsCloudConfig() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name: "valid cloud-config",
			data: "#cloud-config\npackages:\n  - nginx\nruncmd:\n  - systemctl start nginx\n",
		},
		{
			name: "header only",
			data: "#cloud-config\n",
		},
		{
			name: "shell script passes through",
			data: "#!/bin/sh\nthis: is [not yaml\n",
		},
		{
			name:    "empty",
			data:    "  \n\t",
			wantErr: "empty",
		},
		{
			name:    "broken yaml",
			data:    "#cloud-config\npackages: [nginx\n",
			wantErr: "failed to parse",
		},
		{
			name:    "not a mapping",
			data:    "#cloud-config\n- one\n- two\n",
			wantErr: "mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.data))
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	content := "#cloud-config\nhostname: test\n"
	if err := os.WriteFile(good, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(good)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != content {
		t.Errorf("Load() = %q, want %q", got, content)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("#cloud-config\n- x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), bad) {
		t.Errorf("Load() should fail naming the file, got: %v", err)
	}

	if _, err := Load(filepath.Join(dir, "missing")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}
