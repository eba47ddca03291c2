// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"time"

	"github.com/cppforlife/go-cli-ui/ui"
	"github.com/spf13/cobra"

	"github.com/pklformation/pklformation/pkg/cloudformation"
	"github.com/pklformation/pklformation/pkg/config"
	"github.com/pklformation/pklformation/pkg/display"
	"github.com/pklformation/pklformation/pkg/pkl"
	"github.com/pklformation/pklformation/pkg/template"
)

// evaluatorIface lets tests substitute the external pkl subprocess.
type evaluatorIface interface {
	EvalFile(ctx context.Context, path string) (*template.Document, error)
	EvalTemplate(ctx context.Context, path string) (template.Template, error)
}

var _ evaluatorIface = pkl.Evaluator{}

// DeployFlags are shared by every command that talks to CloudFormation.
type DeployFlags struct {
	Stack        string
	PollInterval time.Duration
}

func (f *DeployFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Stack, "stack", "s", "", "Name of the stack")
	cmd.Flags().DurationVarP(&f.PollInterval, "poll-interval", "p", 5*time.Second,
		"Interval between stack status polls")
	cmd.MarkFlagRequired("stack")
}

// deployDeps bundles what a lifecycle command needs: the CloudFormation
// client, a waiter at the resolved poll interval, the evaluator and the
// human-oriented display.
type deployDeps struct {
	cfg       config.Config
	confUI    *ui.ConfUI
	client    *cloudformation.Client
	waiter    cloudformation.Waiter
	display   display.Display
	evaluator pkl.Evaluator
}

func newDeployDeps(cmd *cobra.Command, flags DeployFlags) (deployDeps, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return deployDeps{}, nil, err
	}

	client, err := cloudformation.NewClient(cmd.Context())
	if err != nil {
		return deployDeps{}, nil, err
	}

	interval := flags.PollInterval
	if !cmd.Flags().Changed("poll-interval") {
		interval = cfg.PollInterval()
	}

	confUI := ui.NewConfUI(ui.NewNoopLogger())

	deps := deployDeps{
		cfg:       cfg,
		confUI:    confUI,
		client:    client,
		waiter:    cloudformation.NewWaiter(client, interval, true),
		display:   display.NewDisplay(confUI),
		evaluator: newEvaluator(cfg),
	}
	return deps, confUI.Flush, nil
}

func newEvaluator(cfg config.Config) pkl.Evaluator {
	evaluator := pkl.NewEvaluator()
	if len(cfg.Pkl.Binary) > 0 {
		evaluator.BinaryPath = cfg.Pkl.Binary
	}
	evaluator.ExtraFlags = cfg.Pkl.ExtraFlags
	return evaluator
}
