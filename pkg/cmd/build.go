// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	cmdcore "github.com/pklformation/pklformation/pkg/cmd/core"
	"github.com/pklformation/pklformation/pkg/config"
	"github.com/pklformation/pklformation/pkg/files"
	"github.com/pklformation/pklformation/pkg/template"
)

type BuildOptions struct {
	OutputPath string
	Format     string
	Watch      bool
	Debug      bool
}

func NewBuildOptions() *BuildOptions {
	return &BuildOptions{}
}

func NewBuildCmd(o *BuildOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <input.pkl>",
		Short: "Evaluate a Pkl template and emit it as CloudFormation JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return o.Run(cmd, args[0]) },
	}
	cmd.Flags().StringVarP(&o.OutputPath, "output", "o", "", "File for output (default: stdout)")
	cmd.Flags().StringVar(&o.Format, "format", "", "Output format: json or yaml (default: inferred from output path, then json)")
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false, "Re-evaluate whenever the input's directory changes (requires -o)")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *BuildOptions) Run(cmd *cobra.Command, inputPath string) error {
	ui := cmdcore.NewPlainUI(o.Debug)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	format, err := o.resolveFormat(cmd, cfg)
	if err != nil {
		return err
	}

	evaluator := newEvaluator(cfg)

	if o.Watch {
		if len(o.OutputPath) == 0 {
			return fmt.Errorf("Expected --output to be given when --watch is used")
		}
		return o.watch(cmd, ui, evaluator, inputPath, format)
	}

	return o.buildOnce(cmd, ui, evaluator, inputPath, format)
}

func (o *BuildOptions) buildOnce(cmd *cobra.Command, ui cmdcore.PlainUI, evaluator evaluatorIface, inputPath string, format template.Format) error {
	doc, err := evaluator.EvalFile(cmd.Context(), inputPath)
	if err != nil {
		return err
	}

	docBytes, err := template.Emit(doc, format)
	if err != nil {
		return err
	}

	if len(o.OutputPath) == 0 {
		ui.Printf("%s", docBytes) // no newline
		return nil
	}

	err = files.NewOutputFile(o.OutputPath, docBytes).Create()
	if err != nil {
		return err
	}

	ui.Debugf("creating: %s\n", o.OutputPath)
	return nil
}

// watch re-runs the build whenever a .pkl file in the input's directory
// changes. Evaluation failures are reported and watching continues; only
// watcher failures or context cancellation end the loop.
func (o *BuildOptions) watch(cmd *cobra.Command, ui cmdcore.PlainUI, evaluator evaluatorIface, inputPath string, format template.Format) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	err = watcher.Add(filepath.Dir(inputPath))
	if err != nil {
		return err
	}

	rebuild := func() {
		err := o.buildOnce(cmd, ui, evaluator, inputPath, format)
		if err != nil {
			ui.Printf("pklformation: Error: %s\n", err)
			return
		}
		ui.Printf("wrote %s\n", o.OutputPath)
	}

	rebuild()

	for {
		select {
		case <-cmd.Context().Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".pkl") && filepath.Base(event.Name) != "PklProject" {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				rebuild()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("Watching %s: %w", filepath.Dir(inputPath), err)
		}
	}
}

// resolveFormat applies precedence: --format flag, output path extension,
// config file default, then json.
func (o *BuildOptions) resolveFormat(cmd *cobra.Command, cfg config.Config) (template.Format, error) {
	if cmd.Flags().Changed("format") {
		return template.NewFormat(o.Format)
	}

	switch strings.ToLower(filepath.Ext(o.OutputPath)) {
	case ".yaml", ".yml":
		return template.FormatYAML, nil
	case ".json":
		return template.FormatJSON, nil
	}

	if len(cfg.Build.Format) > 0 {
		return template.NewFormat(cfg.Build.Format)
	}

	return template.FormatJSON, nil
}
