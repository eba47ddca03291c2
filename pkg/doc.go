// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of
pklformation.

From top-down, pklformation code is layered in this way:

# Entry Point

	./cmd/pklformation   // the command-line tool

# Commands

The command tree lives in pkg/cmd: the top-level command evaluates a Pkl
template and emits it (also reachable as "build"), and the stack lifecycle
commands (up, preview, destroy, list, describe) drive the AWS CloudFormation
API with the evaluated template.

	pkg/cmd
	pkg/cmd/core

# Template Pipeline

A run is a single linear pass: the evaluator adapter shells out to the
external pkl binary and parses its JSON output into an ordered document
tree; the emitter serializes that tree as CloudFormation JSON or YAML.

	pkg/pkl        // evaluator adapter (external pkl subprocess)
	pkg/template   // Document model, ordered parsing and emission
	pkg/files      // output file writing

# CloudFormation

	pkg/cloudformation   // thin client over the CloudFormation API + waiters
	pkg/display          // human-oriented rendering of change sets and stacks

# Utilities

	pkg/orderedmap   // order-preserving mapping used throughout the document tree
	pkg/config       // optional .pklformation.toml tool configuration
	pkg/version
*/
package pkg
