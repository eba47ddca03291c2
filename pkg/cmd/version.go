// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	semver "github.com/hashicorp/go-version"
	"github.com/spf13/cobra"

	"github.com/pklformation/pklformation/pkg/config"
	"github.com/pklformation/pklformation/pkg/pkl"
	"github.com/pklformation/pklformation/pkg/version"
)

type VersionOptions struct{}

func NewVersionOptions() *VersionOptions {
	return &VersionOptions{}
}

func NewVersionCmd(o *VersionOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version of pklformation and of the pkl evaluator",
		RunE:  func(cmd *cobra.Command, _ []string) error { return o.Run(cmd) },
	}
	return cmd
}

func (o *VersionOptions) Run(cmd *cobra.Command) error {
	fmt.Printf("pklformation version %s\n", version.Version)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pklVer, err := newEvaluator(cfg).Version(cmd.Context())
	if err != nil {
		fmt.Printf("pkl version unknown (%s)\n", err)
		return nil
	}

	fmt.Printf("pkl version %s", pklVer)
	if pklVer.LessThan(semver.Must(semver.NewVersion(pkl.MinimumVersion))) {
		fmt.Printf(" (older than supported minimum %s)", pkl.MinimumVersion)
	}
	fmt.Printf("\n")

	return nil
}
