// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	cfn "github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/require"
)

func TestCreateChangeSetNaming(t *testing.T) {
	var gotInput *cfn.CreateChangeSetInput

	client := NewClientWithAPI(&fakeAPI{
		createChangeSet: func(input *cfn.CreateChangeSetInput) (*cfn.CreateChangeSetOutput, error) {
			gotInput = input
			return &cfn.CreateChangeSetOutput{Id: aws.String("cs-arn")}, nil
		},
	})
	client.timeNow = func() time.Time {
		return time.Date(2026, 8, 29, 10, 30, 0, 123456789, time.UTC)
	}

	id, err := client.CreateChangeSet(context.Background(), "demo", `{"Resources":{}}`, types.ChangeSetTypeCreate)
	require.NoError(t, err)
	require.Equal(t, "cs-arn", id)

	require.Equal(t, "demo", aws.ToString(gotInput.StackName))
	require.Equal(t, "demo-20260829-103000-123456789", aws.ToString(gotInput.ChangeSetName))
	require.Equal(t, types.ChangeSetTypeCreate, gotInput.ChangeSetType)
	require.Equal(t, `{"Resources":{}}`, aws.ToString(gotInput.TemplateBody))
}

func TestCreateChangeSetMissingID(t *testing.T) {
	client := NewClientWithAPI(&fakeAPI{
		createChangeSet: func(*cfn.CreateChangeSetInput) (*cfn.CreateChangeSetOutput, error) {
			return &cfn.CreateChangeSetOutput{}, nil
		},
	})

	_, err := client.CreateChangeSet(context.Background(), "demo", "{}", types.ChangeSetTypeCreate)
	require.Error(t, err)
	require.Contains(t, err.Error(), "to have an id")
}

func TestStackStatus(t *testing.T) {
	client := NewClientWithAPI(&fakeAPI{
		describeStacks: func(input *cfn.DescribeStacksInput) (*cfn.DescribeStacksOutput, error) {
			require.Equal(t, "demo", aws.ToString(input.StackName))
			return &cfn.DescribeStacksOutput{Stacks: []types.Stack{{
				StackName:         aws.String("demo"),
				StackStatus:       types.StackStatusUpdateComplete,
				StackStatusReason: aws.String("all good"),
			}}}, nil
		},
	})

	status, reason, err := client.StackStatus(context.Background(), "demo")
	require.NoError(t, err)
	require.Equal(t, types.StackStatusUpdateComplete, status)
	require.Equal(t, "all good", reason)
}

func TestPendingChangeSetPicksAvailable(t *testing.T) {
	client := NewClientWithAPI(&fakeAPI{
		listChangeSets: func(*cfn.ListChangeSetsInput) (*cfn.ListChangeSetsOutput, error) {
			return &cfn.ListChangeSetsOutput{Summaries: []types.ChangeSetSummary{
				{ChangeSetId: aws.String("cs-1"), ExecutionStatus: types.ExecutionStatusObsolete},
				{ChangeSetId: aws.String("cs-2"), ExecutionStatus: types.ExecutionStatusAvailable},
				{ChangeSetId: aws.String("cs-3"), ExecutionStatus: types.ExecutionStatusAvailable},
			}}, nil
		},
	})

	pending, err := client.PendingChangeSet(context.Background(), "demo")
	require.NoError(t, err)
	require.NotNil(t, pending)
	require.Equal(t, "cs-2", aws.ToString(pending.ChangeSetId))
}

func TestPendingChangeSetNone(t *testing.T) {
	client := NewClientWithAPI(&fakeAPI{
		listChangeSets: func(*cfn.ListChangeSetsInput) (*cfn.ListChangeSetsOutput, error) {
			return &cfn.ListChangeSetsOutput{}, nil
		},
	})

	pending, err := client.PendingChangeSet(context.Background(), "demo")
	require.NoError(t, err)
	require.Nil(t, pending)
}

func TestListStacksPaginates(t *testing.T) {
	calls := 0
	client := NewClientWithAPI(&fakeAPI{
		listStacks: func(input *cfn.ListStacksInput) (*cfn.ListStacksOutput, error) {
			calls++
			switch calls {
			case 1:
				require.Nil(t, input.NextToken)
				return &cfn.ListStacksOutput{
					StackSummaries: []types.StackSummary{{StackName: aws.String("one")}},
					NextToken:      aws.String("page2"),
				}, nil
			default:
				require.Equal(t, "page2", aws.ToString(input.NextToken))
				return &cfn.ListStacksOutput{
					StackSummaries: []types.StackSummary{{StackName: aws.String("two")}},
				}, nil
			}
		},
	})

	summaries, err := client.ListStacks(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	require.Equal(t, "one", aws.ToString(summaries[0].StackName))
	require.Equal(t, "two", aws.ToString(summaries[1].StackName))
}

func TestIsStackNotFound(t *testing.T) {
	notFound := &smithy.GenericAPIError{
		Code:    "ValidationError",
		Message: "Stack with id demo does not exist",
	}
	require.True(t, IsStackNotFound(notFound))
	require.True(t, IsStackNotFound(fmt.Errorf("Describing stack demo: %w", notFound)))

	otherValidation := &smithy.GenericAPIError{Code: "ValidationError", Message: "Template error"}
	require.False(t, IsStackNotFound(otherValidation))
	require.False(t, IsStackNotFound(fmt.Errorf("plain error")))
}

func TestIsChangeSetNotFound(t *testing.T) {
	notFound := &smithy.GenericAPIError{Code: "ChangeSetNotFound", Message: "ChangeSet [cs] does not exist"}
	require.True(t, IsChangeSetNotFound(notFound))
	require.False(t, IsChangeSetNotFound(fmt.Errorf("plain error")))
}
