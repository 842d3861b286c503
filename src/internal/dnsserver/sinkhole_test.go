package dnsserver

import (
	"net"
	"testing"

	"github.com/miekg/dns"
)

type captureWriter struct {
	msg *dns.Msg
}

func (w *captureWriter) LocalAddr() net.Addr       { return &net.UDPAddr{IP: net.IPv4zero, Port: 53} }
func (w *captureWriter) RemoteAddr() net.Addr      { return &net.UDPAddr{IP: net.IPv4zero, Port: 5353} }
func (w *captureWriter) WriteMsg(m *dns.Msg) error { w.msg = m; return nil }
func (w *captureWriter) Write(b []byte) (int, error) {
	return len(b), nil
}
func (w *captureWriter) Close() error        { return nil }
func (w *captureWriter) TsigStatus() error   { return nil }
func (w *captureWriter) TsigTimersOnly(bool) {}
func (w *captureWriter) Hijack()             {}

func newTestSinkhole(t *testing.T, targetIP string, hostnames ...string) *Sinkhole {
	t.Helper()
	s, err := NewSinkhole("127.0.0.1", 5353, targetIP)
	if err != nil {
		t.Fatalf("failed to create sinkhole: %v", err)
	}
	set := make(map[string]struct{}, len(hostnames))
	for _, hostname := range hostnames {
		set[hostname] = struct{}{}
	}
	s.SetHostnames(set)
	return s
}

func query(s *Sinkhole, name string, qtype uint16) *dns.Msg {
	req := new(dns.Msg)
	req.SetQuestion(dns.Fqdn(name), qtype)
	w := &captureWriter{}
	s.ServeDNS(w, req)
	return w.msg
}

func TestServeDNS_BlockedA(t *testing.T) {
	s := newTestSinkhole(t, "0.0.0.0", "ads.example.com")

	resp := query(s, "ads.example.com", dns.TypeA)
	if resp.Rcode != dns.RcodeSuccess {
		t.Fatalf("expected NOERROR for blocked hostname, got %s", dns.RcodeToString[resp.Rcode])
	}
	if len(resp.Answer) != 1 {
		t.Fatalf("expected 1 answer, got %d", len(resp.Answer))
	}
	a, ok := resp.Answer[0].(*dns.A)
	if !ok {
		t.Fatalf("expected A record, got %T", resp.Answer[0])
	}
	if !a.A.Equal(net.ParseIP("0.0.0.0")) {
		t.Errorf("expected answer 0.0.0.0, got %s", a.A)
	}
}

func TestServeDNS_BlockedAAAAWithIPv4TargetIsEmptyNoError(t *testing.T) {
	s := newTestSinkhole(t, "0.0.0.0", "ads.example.com")

	resp := query(s, "ads.example.com", dns.TypeAAAA)
	if resp.Rcode != dns.RcodeSuccess {
		t.Fatalf("expected NOERROR, got %s", dns.RcodeToString[resp.Rcode])
	}
	if len(resp.Answer) != 0 {
		t.Errorf("expected empty answer section, got %v", resp.Answer)
	}
}

func TestServeDNS_IPv6Target(t *testing.T) {
	s := newTestSinkhole(t, "::1", "ads.example.com")

	resp := query(s, "ads.example.com", dns.TypeAAAA)
	if len(resp.Answer) != 1 {
		t.Fatalf("expected 1 answer, got %d", len(resp.Answer))
	}
	aaaa, ok := resp.Answer[0].(*dns.AAAA)
	if !ok {
		t.Fatalf("expected AAAA record, got %T", resp.Answer[0])
	}
	if !aaaa.AAAA.Equal(net.ParseIP("::1")) {
		t.Errorf("expected answer ::1, got %s", aaaa.AAAA)
	}

	resp = query(s, "ads.example.com", dns.TypeA)
	if len(resp.Answer) != 0 {
		t.Errorf("expected empty A answer for IPv6 target, got %v", resp.Answer)
	}
}

func TestServeDNS_UnblockedRefused(t *testing.T) {
	s := newTestSinkhole(t, "0.0.0.0", "ads.example.com")

	resp := query(s, "example.org", dns.TypeA)
	if resp.Rcode != dns.RcodeRefused {
		t.Errorf("expected REFUSED for unblocked hostname, got %s", dns.RcodeToString[resp.Rcode])
	}
}

func TestServeDNS_CaseInsensitiveLookup(t *testing.T) {
	s := newTestSinkhole(t, "0.0.0.0", "ads.example.com")

	resp := query(s, "ADS.Example.COM", dns.TypeA)
	if resp.Rcode != dns.RcodeSuccess {
		t.Errorf("expected NOERROR for mixed-case query, got %s", dns.RcodeToString[resp.Rcode])
	}
	if len(resp.Answer) != 1 {
		t.Errorf("expected 1 answer for mixed-case query, got %d", len(resp.Answer))
	}
}

func TestSetHostnames_ReplacesSet(t *testing.T) {
	s := newTestSinkhole(t, "0.0.0.0", "old.example.com")

	s.SetHostnames(map[string]struct{}{"new.example.com": {}})

	if resp := query(s, "old.example.com", dns.TypeA); resp.Rcode != dns.RcodeRefused {
		t.Errorf("expected old hostname to be refused after replacement, got %s", dns.RcodeToString[resp.Rcode])
	}
	if resp := query(s, "new.example.com", dns.TypeA); resp.Rcode != dns.RcodeSuccess {
		t.Errorf("expected new hostname to be sinkholed, got %s", dns.RcodeToString[resp.Rcode])
	}
}

func TestNewSinkhole_ListenAddrForms(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want string
	}{
		{"ipv4", "127.0.0.1", "127.0.0.1:15353"},
		{"bracketed ipv6", "[::1]", "[::1]:15353"},
		{"bracketed dual-stack", "[::]", "[::]:15353"},
		{"bare ipv6", "::1", "[::1]:15353"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSinkhole(tt.addr, 15353, "0.0.0.0")
			if err != nil {
				t.Fatalf("failed to create sinkhole: %v", err)
			}
			if s.listenAddr != tt.want {
				t.Errorf("expected listen address %q, got %q", tt.want, s.listenAddr)
			}
		})
	}
}

func TestNewSinkhole_InvalidTargetIP(t *testing.T) {
	if _, err := NewSinkhole("127.0.0.1", 5353, "not-an-ip"); err == nil {
		t.Error("expected error for invalid target IP, got nil")
	}
}
