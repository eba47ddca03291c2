// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package display_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	cfn "github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/cppforlife/go-cli-ui/ui"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/pklformation/pklformation/pkg/display"
)

func newTestDisplay(t *testing.T) (display.Display, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	// colors off so assertions see plain text
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return display.NewDisplay(ui.NewWriterUI(stdout, stderr, ui.NewNoopLogger())), stdout, stderr
}

func TestPrintChangeSet(t *testing.T) {
	d, stdout, _ := newTestDisplay(t)

	d.PrintChangeSet(&cfn.DescribeChangeSetOutput{
		ChangeSetName: aws.String("demo-20260829-103000-123456789"),
		Status:        types.ChangeSetStatusCreateComplete,
		Changes: []types.Change{
			{ResourceChange: &types.ResourceChange{
				Action:            types.ChangeActionAdd,
				LogicalResourceId: aws.String("Bucket"),
				ResourceType:      aws.String("AWS::S3::Bucket"),
			}},
			{ResourceChange: &types.ResourceChange{
				Action:            types.ChangeActionModify,
				LogicalResourceId: aws.String("Queue"),
				ResourceType:      aws.String("AWS::SQS::Queue"),
				Replacement:       types.ReplacementTrue,
				Details: []types.ResourceChangeDetail{
					{Target: &types.ResourceTargetDefinition{
						Attribute:          types.ResourceAttributeProperties,
						Name:               aws.String("QueueName"),
						RequiresRecreation: types.RequiresRecreationAlways,
					}},
				},
			}},
		},
	})

	out := stdout.String()
	require.Contains(t, out, "Change set: demo-20260829-103000-123456789")
	require.Contains(t, out, "Change set status: CREATE_COMPLETE")
	require.Contains(t, out, "+ Bucket (AWS::S3::Bucket)")
	require.Contains(t, out, "~ Queue (AWS::SQS::Queue)")
	require.Contains(t, out, "Replacement: True")
	require.Contains(t, out, "QueueName")
}

func TestPrintResourceErrorsFilters(t *testing.T) {
	d, _, stderr := newTestDisplay(t)

	since := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	d.PrintResourceErrors([]types.StackEvent{
		{
			// before the operation started
			Timestamp:            aws.Time(since.Add(-time.Minute)),
			ResourceStatus:       types.ResourceStatusCreateFailed,
			LogicalResourceId:    aws.String("OldFailure"),
			ResourceType:         aws.String("AWS::S3::Bucket"),
			ResourceStatusReason: aws.String("stale"),
		},
		{
			Timestamp:         aws.Time(since.Add(time.Minute)),
			ResourceStatus:    types.ResourceStatusCreateComplete,
			LogicalResourceId: aws.String("FineResource"),
		},
		{
			Timestamp:            aws.Time(since.Add(time.Minute)),
			ResourceStatus:       types.ResourceStatusCreateFailed,
			LogicalResourceId:    aws.String("BadBucket"),
			ResourceType:         aws.String("AWS::S3::Bucket"),
			ResourceStatusReason: aws.String("bucket name already exists"),
		},
	}, since)

	out := stderr.String()
	require.Contains(t, out, "AWS::S3::Bucket: BadBucket")
	require.Contains(t, out, "reason: bucket name already exists")
	require.NotContains(t, out, "OldFailure")
	require.NotContains(t, out, "FineResource")
}

func TestPrintStack(t *testing.T) {
	d, stdout, _ := newTestDisplay(t)

	d.PrintStack(types.Stack{
		StackName:   aws.String("demo"),
		StackStatus: types.StackStatusCreateComplete,
		Description: aws.String("demo stack"),
		Outputs: []types.Output{
			{OutputKey: aws.String("BucketName"), OutputValue: aws.String("demo-bucket")},
		},
	})

	out := stdout.String()
	require.Contains(t, out, "Stack: demo")
	require.Contains(t, out, "Status: CREATE_COMPLETE")
	require.Contains(t, out, "Description: demo stack")
	require.Contains(t, out, "BucketName")
	require.Contains(t, out, "demo-bucket")
}

func TestPrintStackSummaries(t *testing.T) {
	d, stdout, _ := newTestDisplay(t)

	d.PrintStackSummaries([]types.StackSummary{
		{StackName: aws.String("alpha"), StackStatus: types.StackStatusCreateComplete},
		{StackName: aws.String("beta"), StackStatus: types.StackStatusRollbackComplete},
	})

	out := stdout.String()
	require.Contains(t, out, "alpha")
	require.Contains(t, out, "CREATE_COMPLETE")
	require.Contains(t, out, "beta")
	require.Contains(t, out, "ROLLBACK_COMPLETE")
}
