// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package cloudformation_test

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/stretchr/testify/require"

	"github.com/pklformation/pklformation/pkg/cloudformation"
)

func TestStackOpInProgress(t *testing.T) {
	inProgress := []types.StackStatus{
		types.StackStatusCreateInProgress,
		types.StackStatusDeleteInProgress,
		types.StackStatusImportInProgress,
		types.StackStatusImportRollbackInProgress,
		types.StackStatusRollbackInProgress,
		types.StackStatusUpdateCompleteCleanupInProgress,
		types.StackStatusUpdateInProgress,
		types.StackStatusUpdateRollbackCompleteCleanupInProgress,
		types.StackStatusUpdateRollbackInProgress,
	}
	for _, status := range inProgress {
		require.True(t, cloudformation.StackOpInProgress(status), "status %s", status)
	}

	settled := []types.StackStatus{
		types.StackStatusCreateComplete,
		types.StackStatusCreateFailed,
		types.StackStatusDeleteComplete,
		types.StackStatusRollbackComplete,
		types.StackStatusReviewInProgress, // review waits for a human, not for AWS
		types.StackStatusUpdateComplete,
	}
	for _, status := range settled {
		require.False(t, cloudformation.StackOpInProgress(status), "status %s", status)
	}
}

func TestChangeSetOpInProgress(t *testing.T) {
	inProgress := []types.ChangeSetStatus{
		types.ChangeSetStatusCreateInProgress,
		types.ChangeSetStatusCreatePending,
		types.ChangeSetStatusDeleteInProgress,
		types.ChangeSetStatusDeletePending,
	}
	for _, status := range inProgress {
		require.True(t, cloudformation.ChangeSetOpInProgress(status), "status %s", status)
	}

	settled := []types.ChangeSetStatus{
		types.ChangeSetStatusCreateComplete,
		types.ChangeSetStatusDeleteComplete,
		types.ChangeSetStatusDeleteFailed,
		types.ChangeSetStatusFailed,
	}
	for _, status := range settled {
		require.False(t, cloudformation.ChangeSetOpInProgress(status), "status %s", status)
	}
}

func TestStackUpdatable(t *testing.T) {
	require.True(t, cloudformation.StackUpdatable(types.StackStatusCreateComplete))
	require.True(t, cloudformation.StackUpdatable(types.StackStatusUpdateRollbackComplete))
	require.False(t, cloudformation.StackUpdatable(types.StackStatusRollbackComplete))
}

func TestStackNeedsRecreate(t *testing.T) {
	require.True(t, cloudformation.StackNeedsRecreate(types.StackStatusCreateFailed))
	require.True(t, cloudformation.StackNeedsRecreate(types.StackStatusRollbackComplete))
	require.False(t, cloudformation.StackNeedsRecreate(types.StackStatusCreateComplete))
}
