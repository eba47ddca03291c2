// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"

	"github.com/pklformation/pklformation/pkg/version"
)

type PklformationOptions struct{}

func NewDefaultPklformationOptions() *PklformationOptions {
	return &PklformationOptions{}
}

func NewDefaultPklformationCmd() *cobra.Command {
	return NewPklformationCmd(NewDefaultPklformationOptions())
}

func NewPklformationCmd(o *PklformationOptions) *cobra.Command {
	cmd := NewBuildCmd(NewBuildOptions())

	cmd.Use = "pklformation"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "pklformation generates and deploys CloudFormation templates from Pkl"
	cmd.Long = `pklformation evaluates CloudFormation templates written in the Pkl
configuration language and manages the resulting stacks.

The top-level command evaluates a Pkl file and emits the template as JSON
or YAML. The lifecycle commands (up, preview, destroy, list, describe)
drive the AWS CloudFormation API with the evaluated template.

Requires the pkl binary to be installed (https://pkl-lang.org).`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewBuildCmd(NewBuildOptions())) // same behavior under an explicit name
	cmd.AddCommand(NewUpCmd(NewUpOptions()))
	cmd.AddCommand(NewPreviewCmd(NewPreviewOptions()))
	cmd.AddCommand(NewDestroyCmd(NewDestroyOptions()))
	cmd.AddCommand(NewListCmd(NewListOptions()))
	cmd.AddCommand(NewDescribeCmd(NewDescribeOptions()))
	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd)

	return cmd
}
