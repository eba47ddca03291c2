// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/briandowns/spinner"
)

// Waiter polls stack and change set statuses until the current operation
// settles, showing a terminal spinner while it waits. One Waiter is built
// per command run with the command's poll interval.
type Waiter struct {
	client      *Client
	interval    time.Duration
	showSpinner bool
}

func NewWaiter(client *Client, interval time.Duration, showSpinner bool) Waiter {
	return Waiter{client, interval, showSpinner}
}

// WaitForStack blocks until the stack is not in an in-progress status and
// returns the settled status and its reason.
func (w Waiter) WaitForStack(ctx context.Context, stackName string) (types.StackStatus, string, error) {
	status, reason, err := w.client.StackStatus(ctx, stackName)
	if err != nil {
		return "", "", err
	}
	if !StackOpInProgress(status) {
		return status, reason, nil
	}

	stop := w.startSpinner(fmt.Sprintf("Waiting for %s", status))
	defer stop()

	for {
		err := w.sleep(ctx)
		if err != nil {
			return "", "", err
		}

		status, reason, err = w.client.StackStatus(ctx, stackName)
		if err != nil {
			return "", "", err
		}
		if !StackOpInProgress(status) {
			return status, reason, nil
		}
	}
}

// WaitForChangeSet blocks until the change set is not in an in-progress
// status and returns the settled status and its reason.
func (w Waiter) WaitForChangeSet(ctx context.Context, changeSetID string) (types.ChangeSetStatus, string, error) {
	status, reason, err := w.client.ChangeSetStatus(ctx, changeSetID)
	if err != nil {
		return "", "", err
	}
	if !ChangeSetOpInProgress(status) {
		return status, reason, nil
	}

	stop := w.startSpinner(fmt.Sprintf("Waiting for %s", status))
	defer stop()

	for {
		err := w.sleep(ctx)
		if err != nil {
			return "", "", err
		}

		status, reason, err = w.client.ChangeSetStatus(ctx, changeSetID)
		if err != nil {
			return "", "", err
		}
		if !ChangeSetOpInProgress(status) {
			return status, reason, nil
		}
	}
}

func (w Waiter) sleep(ctx context.Context) error {
	timer := time.NewTimer(w.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (w Waiter) startSpinner(msg string) func() {
	if !w.showSpinner {
		return func() {}
	}

	// spinner writes to stderr so that piped stdout stays clean
	sp := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	sp.Suffix = " " + msg
	sp.Start()
	return sp.Stop
}
