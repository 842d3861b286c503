// Package hashing provides MD5 checksum calculation utilities.
//
// This package implements a transparent proxy for calculating MD5 checksums
// of data streams. It's primarily used for detecting changes in the generated
// hosts artifact to avoid unnecessary file rewrites.
//
// # Components
//
//   - ChecksumWriterProxy: Calculates MD5 while writing to an io.Writer
//   - ChecksumProvider: Interface for types that provide checksums
//
// # Example Usage
//
// Calculating checksum while rendering the hosts artifact:
//
//	var buf bytes.Buffer
//	proxy := hashing.NewMD5WriterProxy(&buf)
//	_, _ = proxy.Write(artifact)
//
//	checksum, _ := proxy.GetChecksum()
//	fmt.Printf("Rendered %d bytes, MD5: %s\n", buf.Len(), checksum)
//
// The proxy pattern allows checksum calculation without changing existing
// code that works with io.Writer interfaces. The checksum is computed
// incrementally as data is written, making it memory-efficient for large
// artifacts.
package hashing
