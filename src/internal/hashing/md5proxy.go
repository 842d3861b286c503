package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
	"io"
)

type ChecksumProvider interface {
	GetChecksum() (string, error)
}

// ChecksumWriterProxy is a proxy that calculates the MD5 checksum of data as it's written.
type ChecksumWriterProxy struct {
	writer      io.Writer
	checksum    hash.Hash
	checksumErr error
}

// NewMD5WriterProxy creates a new instance of ChecksumWriterProxy.
func NewMD5WriterProxy(writer io.Writer) *ChecksumWriterProxy {
	return &ChecksumWriterProxy{
		writer:   writer,
		checksum: md5.New(),
	}
}

// Write writes data to the underlying writer and updates the MD5 checksum.
func (p *ChecksumWriterProxy) Write(buf []byte) (int, error) {
	n, err := p.writer.Write(buf)
	if n > 0 {
		if _, checksumErr := p.checksum.Write(buf[:n]); checksumErr != nil {
			return n, checksumErr
		}
	}
	return n, err
}

// GetChecksum returns the calculated MD5 checksum as a hex string.
func (p *ChecksumWriterProxy) GetChecksum() (string, error) {
	if p.checksumErr == nil {
		return hex.EncodeToString(p.checksum.Sum(nil)), nil
	}
	return "", p.checksumErr
}
