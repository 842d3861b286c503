// Package dnsserver implements a DNS sinkhole that answers queries for the
// merged blocked hostnames with the configured target IP.
package dnsserver
