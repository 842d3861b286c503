package utils

import "testing"

func TestIsValidExclusionDomain(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		want   bool
	}{
		{
			name:   "plain domain",
			domain: "hulu.com",
			want:   true,
		},
		{
			name:   "subdomain",
			domain: "tracking.hulu.com",
			want:   true,
		},
		{
			name:   "empty string",
			domain: "",
			want:   false,
		},
		{
			name:   "www prefix",
			domain: "www.facebook.com",
			want:   false,
		},
		{
			name:   "www with digits",
			domain: "www2.example.com",
			want:   false,
		},
		{
			name:   "http scheme",
			domain: "http://example.com",
			want:   false,
		},
		{
			name:   "https scheme",
			domain: "https://example.com",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidExclusionDomain(tt.domain); got != tt.want {
				t.Errorf("IsValidExclusionDomain(%q) = %v, want %v", tt.domain, got, tt.want)
			}
		})
	}
}
