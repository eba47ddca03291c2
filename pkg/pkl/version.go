// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package pkl

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	semver "github.com/hashicorp/go-version"
)

// MinimumVersion is the oldest pkl release whose `eval --project-dir`
// behavior pklformation relies on.
const MinimumVersion = "0.25.0"

// Version probes the installed pkl binary. Output looks like
// "Pkl 0.26.3 (linux, native)"; the second field is the version.
func (e Evaluator) Version(ctx context.Context) (*semver.Version, error) {
	stdout := bytes.NewBuffer(nil)

	cmd := exec.CommandContext(ctx, e.binaryPath(), "--version")
	cmd.Stdout = stdout

	err := cmd.Run()
	if err != nil {
		return nil, fmt.Errorf("Running '%s --version': %w", e.binaryPath(), err)
	}

	fields := strings.Fields(stdout.String())
	if len(fields) < 2 {
		return nil, fmt.Errorf("Expected version output to have at least two fields, but was '%s'",
			strings.TrimSpace(stdout.String()))
	}

	ver, err := semver.NewVersion(fields[1])
	if err != nil {
		return nil, fmt.Errorf("Parsing evaluator version '%s': %w", fields[1], err)
	}

	return ver, nil
}

// CheckVersion reports an error when the installed evaluator predates
// MinimumVersion.
func (e Evaluator) CheckVersion(ctx context.Context) error {
	ver, err := e.Version(ctx)
	if err != nil {
		return err
	}

	minVer := semver.Must(semver.NewVersion(MinimumVersion))
	if ver.LessThan(minVer) {
		return fmt.Errorf("Expected pkl version >= %s, but found %s", MinimumVersion, ver)
	}
	return nil
}
