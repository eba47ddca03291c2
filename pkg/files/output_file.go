// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
)

// OutputFile is an emitted template destined for a path on disk. The file
// is either fully written or not written at all: bytes land in a temp file
// next to the destination, which is renamed over it only on success.
type OutputFile struct {
	path string
	data []byte
}

func NewOutputFile(path string, data []byte) OutputFile {
	return OutputFile{path, data}
}

func (f OutputFile) Path() string  { return f.path }
func (f OutputFile) Bytes() []byte { return f.data }

func (f OutputFile) Create() error {
	dirPath := filepath.Dir(f.path)

	err := os.MkdirAll(dirPath, 0700)
	if err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dirPath, "."+filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return err
	}

	_, err = tmpFile.Write(f.data)
	if err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return fmt.Errorf("Writing %s: %w", f.path, err)
	}

	err = tmpFile.Close()
	if err != nil {
		os.Remove(tmpFile.Name())
		return err
	}

	err = os.Chmod(tmpFile.Name(), 0600)
	if err != nil {
		os.Remove(tmpFile.Name())
		return err
	}

	err = os.Rename(tmpFile.Name(), f.path)
	if err != nil {
		os.Remove(tmpFile.Name())
		return fmt.Errorf("Replacing %s: %w", f.path, err)
	}

	return nil
}
