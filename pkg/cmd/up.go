// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/spf13/cobra"

	"github.com/pklformation/pklformation/pkg/cloudformation"
	"github.com/pklformation/pklformation/pkg/template"
)

type UpOptions struct {
	DeployFlags
	TemplatePath string
	Yes          bool
}

func NewUpOptions() *UpOptions {
	return &UpOptions{}
}

func NewUpCmd(o *UpOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Create or update a stack from a Pkl template via a change set",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error { return o.Run(cmd) },
	}
	o.DeployFlags.Set(cmd)
	cmd.Flags().StringVarP(&o.TemplatePath, "template", "t", "", "Path to the Pkl template")
	cmd.MarkFlagRequired("template")
	cmd.Flags().BoolVar(&o.Yes, "yes", false, "Assume yes on confirmation prompts")
	return cmd
}

func (o *UpOptions) Run(cmd *cobra.Command) error {
	deps, flush, err := newDeployDeps(cmd, o.DeployFlags)
	if err != nil {
		return err
	}
	defer flush()

	ctx := cmd.Context()
	startTime := time.Now()

	status, reason, err := deps.waiter.WaitForStack(ctx, o.Stack)

	var executed bool
	switch {
	case err != nil && cloudformation.IsStackNotFound(err):
		executed, err = o.createOrUpdate(ctx, deps, types.ChangeSetTypeCreate)
	case err != nil:
		return err
	case status == types.StackStatusDeleteComplete:
		executed, err = o.createOrUpdate(ctx, deps, types.ChangeSetTypeCreate)
	case cloudformation.StackUpdatable(status):
		executed, err = o.createOrUpdate(ctx, deps, types.ChangeSetTypeUpdate)
	case cloudformation.StackNeedsRecreate(status):
		executed, err = o.recreate(ctx, deps)
	case status == types.StackStatusReviewInProgress:
		executed, err = o.continuePendingChangeSet(ctx, deps)
	default:
		return fmt.Errorf("Unable to continue: stack %s is in status %s (reason: %s); check the AWS Console",
			o.Stack, status, reason)
	}
	if err != nil {
		return err
	}
	if !executed {
		return nil
	}

	opStatus, _, err := deps.waiter.WaitForStack(ctx, o.Stack)
	if err != nil {
		return err
	}

	switch opStatus {
	case types.StackStatusCreateComplete, types.StackStatusUpdateComplete:
		deps.confUI.PrintLinef("Up completed successfully")
		return nil
	default:
		events, eventsErr := deps.client.DescribeStackEvents(ctx, o.Stack)
		if eventsErr == nil {
			deps.display.PrintResourceErrors(events, startTime)
		}
		return fmt.Errorf("Up failed with stack status %s", opStatus)
	}
}

// createOrUpdate evaluates the template, creates a change set of the
// given type, shows it and executes it once confirmed. Returns false when
// nothing was executed (no changes, or the user declined).
func (o *UpOptions) createOrUpdate(ctx context.Context, deps deployDeps, changeSetType types.ChangeSetType) (bool, error) {
	deps.confUI.PrintLinef("%s stack %s...", changeSetType, o.Stack)

	tpl, err := deps.evaluator.EvalTemplate(ctx, o.TemplatePath)
	if err != nil {
		return false, err
	}

	body, err := template.Emit(tpl.Document(), template.FormatJSON)
	if err != nil {
		return false, err
	}

	changeSetID, err := deps.client.CreateChangeSet(ctx, o.Stack, string(body), changeSetType)
	if err != nil {
		return false, err
	}

	status, reason, err := deps.waiter.WaitForChangeSet(ctx, changeSetID)
	if err != nil {
		return false, err
	}
	if status != types.ChangeSetStatusCreateComplete {
		defer deps.client.DeleteChangeSet(ctx, changeSetID)
		if strings.Contains(reason, "didn't contain changes") {
			deps.confUI.PrintLinef("No changes to deploy")
			return false, nil
		}
		return false, fmt.Errorf("Change set failed with status %s: %s", status, reason)
	}

	description, err := deps.client.DescribeChangeSet(ctx, changeSetID)
	if err != nil {
		return false, err
	}
	deps.display.PrintChangeSet(description)

	if !o.Yes && !deps.display.AskConfirm("Do you want to continue?") {
		err := deps.client.DeleteChangeSet(ctx, changeSetID)
		if err != nil {
			return false, err
		}
		deps.confUI.PrintLinef("Discarded change set")
		return false, nil
	}

	return true, deps.client.ExecuteChangeSet(ctx, changeSetID)
}

// recreate deletes a stack stuck in a failed creation state and creates
// it again from scratch.
func (o *UpOptions) recreate(ctx context.Context, deps deployDeps) (bool, error) {
	deps.confUI.PrintLinef("Past creation of stack %s failed, re-creating...", o.Stack)

	err := deps.client.DeleteStack(ctx, o.Stack)
	if err != nil {
		return false, err
	}

	// deletion settling may end with the stack gone entirely
	_, _, err = deps.waiter.WaitForStack(ctx, o.Stack)
	if err != nil && !cloudformation.IsStackNotFound(err) {
		return false, err
	}

	return o.createOrUpdate(ctx, deps, types.ChangeSetTypeCreate)
}

// continuePendingChangeSet handles a stack in REVIEW_IN_PROGRESS: offer
// the already pending change set, or replace it with a fresh one.
func (o *UpOptions) continuePendingChangeSet(ctx context.Context, deps deployDeps) (bool, error) {
	deps.confUI.PrintLinef("Found a pending change set:")

	pending, err := deps.client.PendingChangeSet(ctx, o.Stack)
	if err != nil {
		return false, err
	}
	if pending == nil {
		return false, fmt.Errorf("Expected stack %s to have a pending change set, but found none", o.Stack)
	}
	if pending.ChangeSetId == nil {
		return false, fmt.Errorf("Expected pending change set to have an id")
	}
	changeSetID := *pending.ChangeSetId

	description, err := deps.client.DescribeChangeSet(ctx, changeSetID)
	if err != nil {
		return false, err
	}
	deps.display.PrintChangeSet(description)

	if o.Yes || deps.display.AskConfirm("Do you want to apply this change set?") {
		err := deps.client.ExecuteChangeSet(ctx, changeSetID)
		if err != nil {
			return false, err
		}
		_, _, err = deps.waiter.WaitForChangeSet(ctx, changeSetID)
		return true, err
	}

	if !deps.display.AskConfirm("Do you want to create a new change set?") {
		return false, nil
	}

	err = deps.client.DeleteChangeSet(ctx, changeSetID)
	if err != nil {
		return false, err
	}

	status, reason, err := deps.waiter.WaitForChangeSet(ctx, changeSetID)
	switch {
	case err != nil && cloudformation.IsChangeSetNotFound(err):
		// deleted outright
	case err != nil:
		return false, err
	case status != types.ChangeSetStatusDeleteComplete:
		return false, fmt.Errorf("Unable to delete change set %s: %s", changeSetID, reason)
	}

	return o.createOrUpdate(ctx, deps, types.ChangeSetTypeUpdate)
}
