package builder

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"

	"github.com/hostsmith/hostsmith/src/internal/errors"
	"github.com/hostsmith/hostsmith/src/internal/hashing"
	"github.com/hostsmith/hostsmith/src/internal/log"
	"github.com/hostsmith/hostsmith/src/internal/utils"
)

// writeArtifact writes the rendered artifact chunks to path. The checksum of
// the previous build is kept in a sibling .md5 file; when the new content
// hashes identically the file on disk is left untouched and false is
// returned.
func writeArtifact(path string, chunks []string) (bool, error) {
	var buf bytes.Buffer
	proxy := hashing.NewMD5WriterProxy(&buf)
	for _, chunk := range chunks {
		if _, err := io.WriteString(proxy, chunk); err != nil {
			return false, errors.NewOutputError("failed to render hosts artifact", err)
		}
	}

	changed, err := isArtifactChanged(proxy, path)
	if err != nil {
		return false, err
	}
	if !changed {
		log.Infof("Hosts artifact %s is up to date, skipping write", path)
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, errors.NewOutputError("failed to create output directory", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return false, errors.NewOutputError("failed to write hosts artifact", err)
	}
	if err := writeChecksum(proxy, path); err != nil {
		return false, err
	}

	return true, nil
}

func isArtifactChanged(proxy hashing.ChecksumProvider, path string) (bool, error) {
	if _, err := os.Stat(path); stderrors.Is(err, os.ErrNotExist) {
		return true, nil
	}

	md5, err := proxy.GetChecksum()
	if err != nil {
		return false, errors.NewOutputError("failed to compute artifact checksum", err)
	}

	checksumPath := path + ".md5"
	previous, err := readChecksum(checksumPath)
	if err != nil {
		log.Debugf("Failed to read checksum file '%s', assuming artifact changed: %v", checksumPath, err)
		return true, nil
	}

	return string(previous) != md5, nil
}

func readChecksum(checksumPath string) ([]byte, error) {
	checksumFile, err := os.Open(checksumPath)
	if err != nil {
		return nil, err
	}
	defer utils.CloseOrWarn(checksumFile)

	return io.ReadAll(checksumFile)
}

func writeChecksum(proxy hashing.ChecksumProvider, path string) error {
	md5, err := proxy.GetChecksum()
	if err != nil {
		return errors.NewOutputError("failed to compute artifact checksum", err)
	}
	if err := os.WriteFile(path+".md5", []byte(md5), 0644); err != nil {
		return errors.NewOutputError("failed to write artifact checksum file", err)
	}
	return nil
}
