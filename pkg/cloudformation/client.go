// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/smithy-go"
)

// API is the slice of the CloudFormation service client used by this
// tool. Tests substitute a fake; production wires *cloudformation.Client.
type API interface {
	CreateChangeSet(ctx context.Context, params *cloudformation.CreateChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.CreateChangeSetOutput, error)
	DescribeChangeSet(ctx context.Context, params *cloudformation.DescribeChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeChangeSetOutput, error)
	DeleteChangeSet(ctx context.Context, params *cloudformation.DeleteChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteChangeSetOutput, error)
	ExecuteChangeSet(ctx context.Context, params *cloudformation.ExecuteChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ExecuteChangeSetOutput, error)
	ListChangeSets(ctx context.Context, params *cloudformation.ListChangeSetsInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListChangeSetsOutput, error)
	DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
	DeleteStack(ctx context.Context, params *cloudformation.DeleteStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error)
	ListStacks(ctx context.Context, params *cloudformation.ListStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListStacksOutput, error)
	ListStackResources(ctx context.Context, params *cloudformation.ListStackResourcesInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListStackResourcesOutput, error)
	DescribeStackEvents(ctx context.Context, params *cloudformation.DescribeStackEventsInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStackEventsOutput, error)
	GetTemplate(ctx context.Context, params *cloudformation.GetTemplateInput, optFns ...func(*cloudformation.Options)) (*cloudformation.GetTemplateOutput, error)
}

var _ API = (*cloudformation.Client)(nil)

// Client wraps the CloudFormation API with the handful of operations the
// lifecycle commands need.
type Client struct {
	api     API
	timeNow func() time.Time
}

// NewClient builds a client from the ambient AWS configuration
// (environment, shared config, instance role).
func NewClient(ctx context.Context) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("Loading AWS configuration: %w", err)
	}
	return NewClientWithAPI(cloudformation.NewFromConfig(cfg)), nil
}

func NewClientWithAPI(api API) *Client {
	return &Client{api: api, timeNow: time.Now}
}

func (c *Client) DescribeChangeSet(ctx context.Context, changeSetID string) (*cloudformation.DescribeChangeSetOutput, error) {
	out, err := c.api.DescribeChangeSet(ctx, &cloudformation.DescribeChangeSetInput{
		ChangeSetName: aws.String(changeSetID),
	})
	if err != nil {
		return nil, fmt.Errorf("Describing change set %s: %w", changeSetID, err)
	}
	return out, nil
}

func (c *Client) ChangeSetStatus(ctx context.Context, changeSetID string) (types.ChangeSetStatus, string, error) {
	out, err := c.DescribeChangeSet(ctx, changeSetID)
	if err != nil {
		return "", "", err
	}
	return out.Status, aws.ToString(out.StatusReason), nil
}

func (c *Client) DeleteChangeSet(ctx context.Context, changeSetID string) error {
	_, err := c.api.DeleteChangeSet(ctx, &cloudformation.DeleteChangeSetInput{
		ChangeSetName: aws.String(changeSetID),
	})
	if err != nil {
		return fmt.Errorf("Deleting change set %s: %w", changeSetID, err)
	}
	return nil
}

func (c *Client) ExecuteChangeSet(ctx context.Context, changeSetID string) error {
	_, err := c.api.ExecuteChangeSet(ctx, &cloudformation.ExecuteChangeSetInput{
		ChangeSetName: aws.String(changeSetID),
	})
	if err != nil {
		return fmt.Errorf("Executing change set %s: %w", changeSetID, err)
	}
	return nil
}

// CreateChangeSet creates a change set of the given type for the stack
// and returns its ID. Names carry a UTC timestamp so repeated runs never
// collide.
func (c *Client) CreateChangeSet(ctx context.Context, stackName, templateBody string, changeSetType types.ChangeSetType) (string, error) {
	now := c.timeNow().UTC()
	changeSetName := fmt.Sprintf("%s-%s-%09d", stackName, now.Format("20060102-150405"), now.Nanosecond())

	out, err := c.api.CreateChangeSet(ctx, &cloudformation.CreateChangeSetInput{
		StackName:     aws.String(stackName),
		ChangeSetName: aws.String(changeSetName),
		ChangeSetType: changeSetType,
		TemplateBody:  aws.String(templateBody),
		Capabilities: []types.Capability{
			types.CapabilityCapabilityIam,
			types.CapabilityCapabilityNamedIam,
		},
	})
	if err != nil {
		return "", fmt.Errorf("Creating change set for stack %s: %w", stackName, err)
	}
	if out.Id == nil {
		return "", fmt.Errorf("Expected change set for stack %s to have an id", stackName)
	}
	return *out.Id, nil
}

func (c *Client) DescribeStack(ctx context.Context, stackName string) (types.Stack, error) {
	out, err := c.api.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(stackName),
	})
	if err != nil {
		return types.Stack{}, fmt.Errorf("Describing stack %s: %w", stackName, err)
	}
	if len(out.Stacks) == 0 {
		return types.Stack{}, fmt.Errorf("Expected stack %s to be described, but was not found", stackName)
	}
	return out.Stacks[0], nil
}

func (c *Client) StackStatus(ctx context.Context, stackName string) (types.StackStatus, string, error) {
	stack, err := c.DescribeStack(ctx, stackName)
	if err != nil {
		return "", "", err
	}
	return stack.StackStatus, aws.ToString(stack.StackStatusReason), nil
}

func (c *Client) DeleteStack(ctx context.Context, stackNameOrID string) error {
	_, err := c.api.DeleteStack(ctx, &cloudformation.DeleteStackInput{
		StackName: aws.String(stackNameOrID),
	})
	if err != nil {
		return fmt.Errorf("Deleting stack %s: %w", stackNameOrID, err)
	}
	return nil
}

func (c *Client) ListStacks(ctx context.Context, statusFilter []types.StackStatus) ([]types.StackSummary, error) {
	var summaries []types.StackSummary

	paginator := cloudformation.NewListStacksPaginator(c.api, &cloudformation.ListStacksInput{
		StackStatusFilter: statusFilter,
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("Listing stacks: %w", err)
		}
		summaries = append(summaries, page.StackSummaries...)
	}

	return summaries, nil
}

func (c *Client) ListStackResources(ctx context.Context, stackID string) ([]types.StackResourceSummary, error) {
	var resources []types.StackResourceSummary

	paginator := cloudformation.NewListStackResourcesPaginator(c.api, &cloudformation.ListStackResourcesInput{
		StackName: aws.String(stackID),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("Listing resources of stack %s: %w", stackID, err)
		}
		resources = append(resources, page.StackResourceSummaries...)
	}

	return resources, nil
}

func (c *Client) DescribeStackEvents(ctx context.Context, stackName string) ([]types.StackEvent, error) {
	var events []types.StackEvent

	paginator := cloudformation.NewDescribeStackEventsPaginator(c.api, &cloudformation.DescribeStackEventsInput{
		StackName: aws.String(stackName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("Describing events of stack %s: %w", stackName, err)
		}
		events = append(events, page.StackEvents...)
	}

	return events, nil
}

// GetTemplateBody fetches the template currently associated with the
// stack, as originally submitted.
func (c *Client) GetTemplateBody(ctx context.Context, stackName string) (string, error) {
	out, err := c.api.GetTemplate(ctx, &cloudformation.GetTemplateInput{
		StackName:     aws.String(stackName),
		TemplateStage: types.TemplateStageOriginal,
	})
	if err != nil {
		return "", fmt.Errorf("Getting template of stack %s: %w", stackName, err)
	}
	return aws.ToString(out.TemplateBody), nil
}

// PendingChangeSet returns the stack's first change set that is still
// available for execution, or nil when there is none.
func (c *Client) PendingChangeSet(ctx context.Context, stackName string) (*types.ChangeSetSummary, error) {
	out, err := c.api.ListChangeSets(ctx, &cloudformation.ListChangeSetsInput{
		StackName: aws.String(stackName),
	})
	if err != nil {
		return nil, fmt.Errorf("Listing change sets of stack %s: %w", stackName, err)
	}

	for _, summary := range out.Summaries {
		if summary.ExecutionStatus == types.ExecutionStatusAvailable {
			return &summary, nil
		}
	}
	return nil, nil
}

// IsChangeSetNotFound reports whether err says the change set is gone.
func IsChangeSetNotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ChangeSetNotFound"
	}
	return false
}

// IsStackNotFound reports whether err is CloudFormation's way of saying
// the stack does not exist (a ValidationError rather than a dedicated
// error type).
func IsStackNotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ValidationError" &&
			strings.Contains(apiErr.ErrorMessage(), "does not exist")
	}
	return false
}
