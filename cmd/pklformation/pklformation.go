// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	uierrs "github.com/cppforlife/go-cli-ui/errors"

	"github.com/pklformation/pklformation/pkg/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	command := cmd.NewDefaultPklformationCmd()

	err := command.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pklformation: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
