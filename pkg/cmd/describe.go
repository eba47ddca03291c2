// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"
)

type DescribeOptions struct {
	DeployFlags
}

func NewDescribeOptions() *DescribeOptions {
	return &DescribeOptions{}
}

func NewDescribeCmd(o *DescribeOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Show a stack's details and resources",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error { return o.Run(cmd) },
	}
	o.DeployFlags.Set(cmd)
	return cmd
}

func (o *DescribeOptions) Run(cmd *cobra.Command) error {
	deps, flush, err := newDeployDeps(cmd, o.DeployFlags)
	if err != nil {
		return err
	}
	defer flush()

	ctx := cmd.Context()

	_, _, err = deps.waiter.WaitForStack(ctx, o.Stack)
	if err != nil {
		return err
	}

	stack, err := deps.client.DescribeStack(ctx, o.Stack)
	if err != nil {
		return err
	}
	deps.display.PrintStack(stack)

	if stack.StackId != nil {
		resources, err := deps.client.ListStackResources(ctx, aws.ToString(stack.StackId))
		if err != nil {
			return err
		}
		deps.display.PrintStackResources(resources)
	}

	return nil
}
