// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/spf13/cobra"
)

type ListOptions struct {
	DeployFlags
	StatusFilter []string
}

func NewListOptions() *ListOptions {
	return &ListOptions{}
}

func NewListCmd(o *ListOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stacks",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error { return o.Run(cmd) },
	}
	cmd.Flags().DurationVarP(&o.PollInterval, "poll-interval", "p", 5*time.Second,
		"Interval between stack status polls")
	cmd.Flags().StringSliceVar(&o.StatusFilter, "status-filter", nil,
		"Stack statuses to include (e.g. CREATE_COMPLETE) (can be specified multiple times)")
	return cmd
}

func (o *ListOptions) Run(cmd *cobra.Command) error {
	deps, flush, err := newDeployDeps(cmd, o.DeployFlags)
	if err != nil {
		return err
	}
	defer flush()

	statusFilter, err := o.statusFilter()
	if err != nil {
		return err
	}

	summaries, err := deps.client.ListStacks(cmd.Context(), statusFilter)
	if err != nil {
		return err
	}

	deps.display.PrintStackSummaries(summaries)
	return nil
}

func (o *ListOptions) statusFilter() ([]types.StackStatus, error) {
	if len(o.StatusFilter) == 0 {
		return []types.StackStatus{
			types.StackStatusCreateComplete,
			types.StackStatusCreateInProgress,
			types.StackStatusImportComplete,
			types.StackStatusImportInProgress,
		}, nil
	}

	known := types.StackStatus("").Values()

	var filter []types.StackStatus
	for _, val := range o.StatusFilter {
		status := types.StackStatus(val)
		found := false
		for _, knownStatus := range known {
			if status == knownStatus {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("Unknown stack status '%s'", val)
		}
		filter = append(filter, status)
	}
	return filter, nil
}
