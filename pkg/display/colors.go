// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package display

import (
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	purple = color.New(color.FgMagenta).SprintFunc()
	plain  = func(a ...interface{}) string { return color.New().SprintFunc()(a...) }
)

type colorizer func(a ...interface{}) string

func colorForChangeSetStatus(status types.ChangeSetStatus) colorizer {
	switch status {
	case types.ChangeSetStatusCreateComplete, types.ChangeSetStatusDeleteComplete:
		return green
	case types.ChangeSetStatusCreateInProgress, types.ChangeSetStatusCreatePending,
		types.ChangeSetStatusDeleteInProgress, types.ChangeSetStatusDeletePending:
		return yellow
	default:
		return red
	}
}

func colorForStackStatus(status types.StackStatus) colorizer {
	switch {
	case status == types.StackStatusCreateComplete,
		status == types.StackStatusUpdateComplete,
		status == types.StackStatusImportComplete,
		status == types.StackStatusDeleteComplete:
		return green
	case statusInProgress(status):
		return yellow
	default:
		return red
	}
}

func statusInProgress(status types.StackStatus) bool {
	switch status {
	case types.StackStatusCreateInProgress, types.StackStatusDeleteInProgress,
		types.StackStatusImportInProgress, types.StackStatusRollbackInProgress,
		types.StackStatusUpdateInProgress, types.StackStatusReviewInProgress,
		types.StackStatusUpdateCompleteCleanupInProgress,
		types.StackStatusUpdateRollbackInProgress,
		types.StackStatusUpdateRollbackCompleteCleanupInProgress,
		types.StackStatusImportRollbackInProgress:
		return true
	}
	return false
}

func colorForChangeAction(action types.ChangeAction) colorizer {
	switch action {
	case types.ChangeActionAdd, types.ChangeActionImport:
		return green
	case types.ChangeActionModify:
		return yellow
	case types.ChangeActionDynamic:
		return purple
	case types.ChangeActionRemove:
		return red
	default:
		return red
	}
}

func colorForReplacement(replacement types.Replacement) colorizer {
	switch replacement {
	case types.ReplacementFalse:
		return green
	case types.ReplacementConditional:
		return yellow
	default:
		return red
	}
}

func colorForRequiresRecreation(rr types.RequiresRecreation) colorizer {
	switch rr {
	case types.RequiresRecreationNever:
		return green
	case types.RequiresRecreationConditionally:
		return yellow
	default:
		return red
	}
}

// changeActionSymbol is the terse plan-style marker for a resource change.
func changeActionSymbol(action types.ChangeAction) string {
	switch action {
	case types.ChangeActionAdd:
		return "+"
	case types.ChangeActionModify:
		return "~"
	case types.ChangeActionRemove:
		return "-"
	case types.ChangeActionDynamic:
		return "~/+"
	default:
		return "?"
	}
}
