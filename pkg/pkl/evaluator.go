// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package pkl

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pklformation/pklformation/pkg/template"
)

const defaultBinaryName = "pkl"

// EvaluationError indicates that a Pkl source could not be turned into a
// document: the source is missing or invalid, or the evaluator itself is
// unavailable or failed. Evaluation is never retried.
type EvaluationError struct {
	Path string
	Msg  string
}

func (e EvaluationError) Error() string {
	return fmt.Sprintf("Evaluating %s: %s", e.Path, e.Msg)
}

// Evaluator shells out to the external pkl binary. Installation and
// version of the binary are a precondition of running pklformation; the
// evaluator is spawned once per run, with no state kept in between.
type Evaluator struct {
	BinaryPath string
	ExtraFlags []string
}

func NewEvaluator() Evaluator {
	return Evaluator{BinaryPath: defaultBinaryName}
}

// EvalFile runs `pkl eval` on the given file and parses the resulting
// JSON into a Document. The file's directory is passed as the project
// directory so PklProject-based imports resolve.
func (e Evaluator) EvalFile(ctx context.Context, path string) (*template.Document, error) {
	_, err := os.Stat(path)
	if err != nil {
		return nil, EvaluationError{path, err.Error()}
	}

	args := []string{
		"eval", path,
		"--project-dir", filepath.Dir(path),
		"--format", "json",
	}
	args = append(args, e.ExtraFlags...)

	stdout := bytes.NewBuffer(nil)
	stderr := bytes.NewBuffer(nil)

	cmd := exec.CommandContext(ctx, e.binaryPath(), args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err = cmd.Run()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if len(msg) == 0 {
			msg = err.Error()
		}
		return nil, EvaluationError{path, msg}
	}

	doc, err := template.ParseJSON(stdout.Bytes())
	if err != nil {
		return nil, EvaluationError{path, fmt.Sprintf("parsing evaluator output: %s", err)}
	}

	return doc, nil
}

// EvalTemplate evaluates a Pkl source expected to hold a CloudFormation
// template (a mapping at the top level).
func (e Evaluator) EvalTemplate(ctx context.Context, path string) (template.Template, error) {
	doc, err := e.EvalFile(ctx, path)
	if err != nil {
		return template.Template{}, err
	}

	tpl, err := template.NewTemplate(doc)
	if err != nil {
		return template.Template{}, EvaluationError{path, err.Error()}
	}

	return tpl, nil
}

func (e Evaluator) binaryPath() string {
	if len(e.BinaryPath) > 0 {
		return e.BinaryPath
	}
	return defaultBinaryName
}
