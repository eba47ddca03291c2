// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/k14s/difflib"
	"github.com/spf13/cobra"

	"github.com/pklformation/pklformation/pkg/cloudformation"
	"github.com/pklformation/pklformation/pkg/template"
)

type PreviewOptions struct {
	DeployFlags
	TemplatePath string
	Diff         bool
}

func NewPreviewOptions() *PreviewOptions {
	return &PreviewOptions{}
}

func NewPreviewCmd(o *PreviewOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the change set a template would produce, without executing it",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error { return o.Run(cmd) },
	}
	o.DeployFlags.Set(cmd)
	cmd.Flags().StringVarP(&o.TemplatePath, "template", "t", "", "Path to the Pkl template")
	cmd.MarkFlagRequired("template")
	cmd.Flags().BoolVar(&o.Diff, "diff", false, "Also show a line diff against the deployed template")
	return cmd
}

func (o *PreviewOptions) Run(cmd *cobra.Command) error {
	deps, flush, err := newDeployDeps(cmd, o.DeployFlags)
	if err != nil {
		return err
	}
	defer flush()

	ctx := cmd.Context()

	status, reason, err := deps.waiter.WaitForStack(ctx, o.Stack)

	switch {
	case err != nil && cloudformation.IsStackNotFound(err):
		return o.previewNewChangeSet(ctx, deps, types.ChangeSetTypeCreate)
	case err != nil:
		return err
	case status == types.StackStatusDeleteComplete:
		return o.previewNewChangeSet(ctx, deps, types.ChangeSetTypeCreate)
	case cloudformation.StackUpdatable(status):
		return o.previewNewChangeSet(ctx, deps, types.ChangeSetTypeUpdate)
	case status == types.StackStatusReviewInProgress:
		return o.previewExistingChangeSet(ctx, deps)
	default:
		return fmt.Errorf("Unable to preview: stack %s is in status %s (reason: %s); check the AWS Console",
			o.Stack, status, reason)
	}
}

func (o *PreviewOptions) previewNewChangeSet(ctx context.Context, deps deployDeps, changeSetType types.ChangeSetType) error {
	deps.confUI.PrintLinef("Previewing stack %s...", o.Stack)

	tpl, err := deps.evaluator.EvalTemplate(ctx, o.TemplatePath)
	if err != nil {
		return err
	}

	body, err := template.Emit(tpl.Document(), template.FormatJSON)
	if err != nil {
		return err
	}

	changeSetID, err := deps.client.CreateChangeSet(ctx, o.Stack, string(body), changeSetType)
	if err != nil {
		return err
	}

	status, reason, err := deps.waiter.WaitForChangeSet(ctx, changeSetID)
	if err != nil {
		return err
	}
	if status != types.ChangeSetStatusCreateComplete {
		defer deps.client.DeleteChangeSet(ctx, changeSetID)
		if strings.Contains(reason, "didn't contain changes") {
			deps.confUI.PrintLinef("No changes to deploy")
			return nil
		}
		return fmt.Errorf("Change set failed with status %s: %s", status, reason)
	}

	description, err := deps.client.DescribeChangeSet(ctx, changeSetID)
	if err != nil {
		return err
	}
	deps.display.PrintChangeSet(description)

	if o.Diff && changeSetType == types.ChangeSetTypeUpdate {
		err := o.printTemplateDiff(ctx, deps, string(body))
		if err != nil {
			return err
		}
	}

	return nil
}

func (o *PreviewOptions) previewExistingChangeSet(ctx context.Context, deps deployDeps) error {
	deps.confUI.PrintLinef("Found a pending change set:")

	pending, err := deps.client.PendingChangeSet(ctx, o.Stack)
	if err != nil {
		return err
	}
	if pending == nil {
		return fmt.Errorf("Expected stack %s to have a pending change set, but found none", o.Stack)
	}
	if pending.ChangeSetId == nil {
		return fmt.Errorf("Expected pending change set to have an id")
	}

	description, err := deps.client.DescribeChangeSet(ctx, *pending.ChangeSetId)
	if err != nil {
		return err
	}
	deps.display.PrintChangeSet(description)

	return nil
}

func (o *PreviewOptions) printTemplateDiff(ctx context.Context, deps deployDeps, evaluatedBody string) error {
	deployedBody, err := deps.client.GetTemplateBody(ctx, o.Stack)
	if err != nil {
		return err
	}

	diff := difflib.PPDiff(strings.Split(deployedBody, "\n"), strings.Split(evaluatedBody, "\n"))
	deps.confUI.PrintLinef("Template diff:\n%s", diff)
	return nil
}
