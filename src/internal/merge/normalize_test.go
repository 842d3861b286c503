package merge

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		rule         *ParsedRule
		targetIP     string
		keepComments bool
		wantHostname string
		wantLine     string
	}{
		{
			name:         "plain rule",
			rule:         &ParsedRule{IP: "127.0.0.1", Hostname: "ads.example.com"},
			targetIP:     "0.0.0.0",
			wantHostname: "ads.example.com",
			wantLine:     "0.0.0.0 ads.example.com\n",
		},
		{
			name:         "suffix dropped without keepComments",
			rule:         &ParsedRule{IP: "0.0.0.0", Hostname: "ads.example.com", Suffix: " # tracker"},
			targetIP:     "0.0.0.0",
			keepComments: false,
			wantHostname: "ads.example.com",
			wantLine:     "0.0.0.0 ads.example.com\n",
		},
		{
			name:         "suffix kept as comment with keepComments",
			rule:         &ParsedRule{IP: "0.0.0.0", Hostname: "ads.example.com", Suffix: " # tracker"},
			targetIP:     "0.0.0.0",
			keepComments: true,
			wantHostname: "ads.example.com",
			wantLine:     "0.0.0.0 ads.example.com # # tracker\n",
		},
		{
			name:         "hostname is lowercased and trimmed",
			rule:         &ParsedRule{IP: "0.0.0.0", Hostname: " ADS.Example.COM "},
			targetIP:     "0.0.0.0",
			wantHostname: "ads.example.com",
			wantLine:     "0.0.0.0 ads.example.com\n",
		},
		{
			name:         "custom target IP is substituted verbatim",
			rule:         &ParsedRule{IP: "0.0.0.0", Hostname: "ads.example.com"},
			targetIP:     "127.0.0.1",
			wantHostname: "ads.example.com",
			wantLine:     "127.0.0.1 ads.example.com\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hostname, line := Normalize(tt.rule, tt.targetIP, tt.keepComments)
			if hostname != tt.wantHostname {
				t.Errorf("hostname = %q, want %q", hostname, tt.wantHostname)
			}
			if line != tt.wantLine {
				t.Errorf("line = %q, want %q", line, tt.wantLine)
			}
		})
	}
}
