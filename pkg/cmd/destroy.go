// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/spf13/cobra"
)

type DestroyOptions struct {
	DeployFlags
	Yes bool
}

func NewDestroyOptions() *DestroyOptions {
	return &DestroyOptions{}
}

func NewDestroyCmd(o *DestroyOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Delete a stack",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error { return o.Run(cmd) },
	}
	o.DeployFlags.Set(cmd)
	cmd.Flags().BoolVar(&o.Yes, "yes", false, "Assume yes on confirmation prompts")
	return cmd
}

func (o *DestroyOptions) Run(cmd *cobra.Command) error {
	deps, flush, err := newDeployDeps(cmd, o.DeployFlags)
	if err != nil {
		return err
	}
	defer flush()

	ctx := cmd.Context()
	startTime := time.Now()

	_, _, err = deps.waiter.WaitForStack(ctx, o.Stack)
	if err != nil {
		return err
	}

	stack, err := deps.client.DescribeStack(ctx, o.Stack)
	if err != nil {
		return err
	}
	deps.display.PrintStack(stack)

	if stack.ChangeSetId != nil {
		changeSet, err := deps.client.DescribeChangeSet(ctx, *stack.ChangeSetId)
		if err == nil {
			deps.display.PrintChangeSet(changeSet)
		}
	}

	if !o.Yes && !deps.display.AskConfirm("Do you want to continue?") {
		deps.confUI.PrintLinef("Destroy aborted")
		return nil
	}

	err = deps.client.DeleteStack(ctx, aws.ToString(stack.StackId))
	if err != nil {
		return err
	}

	// waiting by stack id keeps the deleted stack describable
	opStatus, _, err := deps.waiter.WaitForStack(ctx, aws.ToString(stack.StackId))
	if err != nil {
		return err
	}

	switch opStatus {
	case types.StackStatusDeleteComplete:
		deps.confUI.PrintLinef("Destroy completed successfully")
		return nil
	default:
		events, eventsErr := deps.client.DescribeStackEvents(ctx, aws.ToString(stack.StackId))
		if eventsErr == nil {
			deps.display.PrintResourceErrors(events, startTime)
		}
		return fmt.Errorf("Destroy failed with stack status %s", opStatus)
	}
}
