// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

// StackOpInProgress reports whether the stack is in the middle of an
// operation and its status will still change without further input.
func StackOpInProgress(status types.StackStatus) bool {
	switch status {
	case types.StackStatusCreateInProgress,
		types.StackStatusDeleteInProgress,
		types.StackStatusImportInProgress,
		types.StackStatusImportRollbackInProgress,
		types.StackStatusRollbackInProgress,
		types.StackStatusUpdateCompleteCleanupInProgress,
		types.StackStatusUpdateInProgress,
		types.StackStatusUpdateRollbackCompleteCleanupInProgress,
		types.StackStatusUpdateRollbackInProgress:
		return true
	}
	return false
}

// ChangeSetOpInProgress reports whether the change set is still being
// created or deleted.
func ChangeSetOpInProgress(status types.ChangeSetStatus) bool {
	switch status {
	case types.ChangeSetStatusCreateInProgress,
		types.ChangeSetStatusCreatePending,
		types.ChangeSetStatusDeleteInProgress,
		types.ChangeSetStatusDeletePending:
		return true
	}
	return false
}

// StackUpdatable lists the settled statuses from which a stack accepts an
// UPDATE type change set.
func StackUpdatable(status types.StackStatus) bool {
	switch status {
	case types.StackStatusCreateComplete,
		types.StackStatusImportComplete,
		types.StackStatusUpdateComplete,
		types.StackStatusUpdateRollbackComplete:
		return true
	}
	return false
}

// StackNeedsRecreate lists the statuses in which the only way forward is
// deleting the stack and creating it again.
func StackNeedsRecreate(status types.StackStatus) bool {
	switch status {
	case types.StackStatusCreateFailed,
		types.StackStatusRollbackComplete:
		return true
	}
	return false
}
