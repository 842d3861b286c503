package utils

import (
	"path/filepath"
	"testing"
)

func TestGetAbsolutePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		baseDir string
		want    string
	}{
		{
			name:    "absolute path is returned as-is",
			path:    "/etc/hostsmith/data",
			baseDir: "/opt",
			want:    "/etc/hostsmith/data",
		},
		{
			name:    "relative path is joined with base",
			path:    "data",
			baseDir: "/etc/hostsmith",
			want:    filepath.Join("/etc/hostsmith", "data"),
		},
		{
			name:    "relative path with dot segments is cleaned",
			path:    "./data/../extensions",
			baseDir: "/etc/hostsmith",
			want:    filepath.Join("/etc/hostsmith", "extensions"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetAbsolutePath(tt.path, tt.baseDir); got != tt.want {
				t.Errorf("GetAbsolutePath(%q, %q) = %q, want %q", tt.path, tt.baseDir, got, tt.want)
			}
		})
	}
}
