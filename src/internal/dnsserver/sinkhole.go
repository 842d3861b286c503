package dnsserver

import (
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/hostsmith/hostsmith/src/internal/errors"
	"github.com/hostsmith/hostsmith/src/internal/log"
	"github.com/miekg/dns"
)

const (
	networkUDP = "udp"
	networkTCP = "tcp"

	// answerTTL is the TTL of sinkhole answers. Blocked sets only change on
	// rebuild, so a short-but-not-tiny TTL keeps resolver churn down.
	answerTTL = 300 * time.Second
)

// Sinkhole is a DNS server that answers queries for blocked hostnames with
// the configured target IP and refuses everything else. It is not a
// recursive resolver.
type Sinkhole struct {
	listenAddr string
	targetIP   net.IP

	mu        sync.RWMutex
	hostnames map[string]struct{}

	udpServer *dns.Server
	tcpServer *dns.Server
	wg        sync.WaitGroup
}

// NewSinkhole creates a sinkhole listening on addr:port that maps every
// blocked hostname to targetIP. IPv6 listen addresses may arrive in the
// config's bracketed form ("[::1]"); JoinHostPort adds its own brackets.
func NewSinkhole(addr string, port uint16, targetIP string) (*Sinkhole, error) {
	ip := net.ParseIP(targetIP)
	if ip == nil {
		return nil, errors.NewDNSError(fmt.Sprintf("invalid sinkhole target IP \"%s\"", targetIP), nil)
	}

	listenAddr := net.JoinHostPort(strings.Trim(addr, "[]"), fmt.Sprintf("%d", port))
	return &Sinkhole{
		listenAddr: listenAddr,
		targetIP:   ip,
		hostnames:  make(map[string]struct{}),
	}, nil
}

// SetHostnames replaces the blocked hostname set. Safe to call while the
// server is running; in-flight queries see either the old or the new set.
func (s *Sinkhole) SetHostnames(hostnames map[string]struct{}) {
	set := make(map[string]struct{}, len(hostnames))
	for hostname := range hostnames {
		set[strings.ToLower(hostname)] = struct{}{}
	}

	s.mu.Lock()
	s.hostnames = set
	s.mu.Unlock()

	log.Infof("DNS sinkhole now serving %d blocked hostnames", len(set))
}

// Start begins serving on UDP and TCP. It returns once both listeners are
// accepting queries.
func (s *Sinkhole) Start() error {
	s.udpServer = &dns.Server{Addr: s.listenAddr, Net: networkUDP, Handler: s}
	s.tcpServer = &dns.Server{Addr: s.listenAddr, Net: networkTCP, Handler: s}

	started := make(chan error, 2)
	s.udpServer.NotifyStartedFunc = func() { started <- nil }
	s.tcpServer.NotifyStartedFunc = func() { started <- nil }

	s.wg.Add(2)
	go s.serve(s.udpServer, started)
	go s.serve(s.tcpServer, started)

	for i := 0; i < 2; i++ {
		if err := <-started; err != nil {
			s.Stop()
			return err
		}
	}

	log.Infof("DNS sinkhole started on %s (UDP/TCP)", s.listenAddr)
	return nil
}

// Stop shuts down both listeners and waits for the serve goroutines.
func (s *Sinkhole) Stop() {
	if s.udpServer != nil {
		_ = s.udpServer.Shutdown()
	}
	if s.tcpServer != nil {
		_ = s.tcpServer.Shutdown()
	}
	s.wg.Wait()
	log.Infof("DNS sinkhole stopped")
}

func (s *Sinkhole) serve(server *dns.Server, started chan<- error) {
	defer s.wg.Done()
	if err := server.ListenAndServe(); err != nil {
		log.Errorf("DNS listener on %s (%s) failed: %v", server.Addr, server.Net, err)
		select {
		case started <- errors.NewDNSError(fmt.Sprintf("failed to serve DNS on %s (%s)", server.Addr, server.Net), err):
		default:
		}
	}
}

// ServeDNS implements dns.Handler.
func (s *Sinkhole) ServeDNS(w dns.ResponseWriter, r *dns.Msg) {
	msg := new(dns.Msg)
	msg.SetReply(r)

	if len(r.Question) != 1 {
		msg.Rcode = dns.RcodeRefused
		s.write(w, msg)
		return
	}

	question := r.Question[0]
	hostname := strings.ToLower(strings.TrimSuffix(question.Name, "."))

	if !s.isBlocked(hostname) {
		msg.Rcode = dns.RcodeRefused
		s.write(w, msg)
		return
	}

	log.Debugf("Sinkholing %s query for %s", dns.TypeToString[question.Qtype], hostname)

	switch question.Qtype {
	case dns.TypeA:
		if ipv4 := s.targetIP.To4(); ipv4 != nil {
			msg.Answer = append(msg.Answer, &dns.A{
				Hdr: s.answerHeader(question.Name, dns.TypeA),
				A:   ipv4,
			})
		}
	case dns.TypeAAAA:
		if s.targetIP.To4() == nil {
			msg.Answer = append(msg.Answer, &dns.AAAA{
				Hdr:  s.answerHeader(question.Name, dns.TypeAAAA),
				AAAA: s.targetIP,
			})
		}
	}

	// Blocked hostnames always get NOERROR, even when the answer section is
	// empty for the query type, so clients do not fall back to another
	// resolver.
	s.write(w, msg)
}

func (s *Sinkhole) isBlocked(hostname string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.hostnames[hostname]
	return ok
}

func (s *Sinkhole) answerHeader(name string, qtype uint16) dns.RR_Header {
	return dns.RR_Header{
		Name:   name,
		Rrtype: qtype,
		Class:  dns.ClassINET,
		Ttl:    uint32(answerTTL.Seconds()),
	}
}

func (s *Sinkhole) write(w dns.ResponseWriter, msg *dns.Msg) {
	if err := w.WriteMsg(msg); err != nil {
		log.Warnf("Failed to write DNS response: %v", err)
	}
}
