// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// fakeAPI substitutes the CloudFormation service client in tests. Only
// the function fields a test sets are callable.
type fakeAPI struct {
	createChangeSet     func(*cloudformation.CreateChangeSetInput) (*cloudformation.CreateChangeSetOutput, error)
	describeChangeSet   func(*cloudformation.DescribeChangeSetInput) (*cloudformation.DescribeChangeSetOutput, error)
	deleteChangeSet     func(*cloudformation.DeleteChangeSetInput) (*cloudformation.DeleteChangeSetOutput, error)
	executeChangeSet    func(*cloudformation.ExecuteChangeSetInput) (*cloudformation.ExecuteChangeSetOutput, error)
	listChangeSets      func(*cloudformation.ListChangeSetsInput) (*cloudformation.ListChangeSetsOutput, error)
	describeStacks      func(*cloudformation.DescribeStacksInput) (*cloudformation.DescribeStacksOutput, error)
	deleteStack         func(*cloudformation.DeleteStackInput) (*cloudformation.DeleteStackOutput, error)
	listStacks          func(*cloudformation.ListStacksInput) (*cloudformation.ListStacksOutput, error)
	listStackResources  func(*cloudformation.ListStackResourcesInput) (*cloudformation.ListStackResourcesOutput, error)
	describeStackEvents func(*cloudformation.DescribeStackEventsInput) (*cloudformation.DescribeStackEventsOutput, error)
	getTemplate         func(*cloudformation.GetTemplateInput) (*cloudformation.GetTemplateOutput, error)
}

var _ API = &fakeAPI{}

func (f *fakeAPI) CreateChangeSet(_ context.Context, params *cloudformation.CreateChangeSetInput, _ ...func(*cloudformation.Options)) (*cloudformation.CreateChangeSetOutput, error) {
	if f.createChangeSet == nil {
		return nil, fmt.Errorf("fakeAPI: CreateChangeSet not stubbed")
	}
	return f.createChangeSet(params)
}

func (f *fakeAPI) DescribeChangeSet(_ context.Context, params *cloudformation.DescribeChangeSetInput, _ ...func(*cloudformation.Options)) (*cloudformation.DescribeChangeSetOutput, error) {
	if f.describeChangeSet == nil {
		return nil, fmt.Errorf("fakeAPI: DescribeChangeSet not stubbed")
	}
	return f.describeChangeSet(params)
}

func (f *fakeAPI) DeleteChangeSet(_ context.Context, params *cloudformation.DeleteChangeSetInput, _ ...func(*cloudformation.Options)) (*cloudformation.DeleteChangeSetOutput, error) {
	if f.deleteChangeSet == nil {
		return nil, fmt.Errorf("fakeAPI: DeleteChangeSet not stubbed")
	}
	return f.deleteChangeSet(params)
}

func (f *fakeAPI) ExecuteChangeSet(_ context.Context, params *cloudformation.ExecuteChangeSetInput, _ ...func(*cloudformation.Options)) (*cloudformation.ExecuteChangeSetOutput, error) {
	if f.executeChangeSet == nil {
		return nil, fmt.Errorf("fakeAPI: ExecuteChangeSet not stubbed")
	}
	return f.executeChangeSet(params)
}

func (f *fakeAPI) ListChangeSets(_ context.Context, params *cloudformation.ListChangeSetsInput, _ ...func(*cloudformation.Options)) (*cloudformation.ListChangeSetsOutput, error) {
	if f.listChangeSets == nil {
		return nil, fmt.Errorf("fakeAPI: ListChangeSets not stubbed")
	}
	return f.listChangeSets(params)
}

func (f *fakeAPI) DescribeStacks(_ context.Context, params *cloudformation.DescribeStacksInput, _ ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error) {
	if f.describeStacks == nil {
		return nil, fmt.Errorf("fakeAPI: DescribeStacks not stubbed")
	}
	return f.describeStacks(params)
}

func (f *fakeAPI) DeleteStack(_ context.Context, params *cloudformation.DeleteStackInput, _ ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error) {
	if f.deleteStack == nil {
		return nil, fmt.Errorf("fakeAPI: DeleteStack not stubbed")
	}
	return f.deleteStack(params)
}

func (f *fakeAPI) ListStacks(_ context.Context, params *cloudformation.ListStacksInput, _ ...func(*cloudformation.Options)) (*cloudformation.ListStacksOutput, error) {
	if f.listStacks == nil {
		return nil, fmt.Errorf("fakeAPI: ListStacks not stubbed")
	}
	return f.listStacks(params)
}

func (f *fakeAPI) ListStackResources(_ context.Context, params *cloudformation.ListStackResourcesInput, _ ...func(*cloudformation.Options)) (*cloudformation.ListStackResourcesOutput, error) {
	if f.listStackResources == nil {
		return nil, fmt.Errorf("fakeAPI: ListStackResources not stubbed")
	}
	return f.listStackResources(params)
}

func (f *fakeAPI) DescribeStackEvents(_ context.Context, params *cloudformation.DescribeStackEventsInput, _ ...func(*cloudformation.Options)) (*cloudformation.DescribeStackEventsOutput, error) {
	if f.describeStackEvents == nil {
		return nil, fmt.Errorf("fakeAPI: DescribeStackEvents not stubbed")
	}
	return f.describeStackEvents(params)
}

func (f *fakeAPI) GetTemplate(_ context.Context, params *cloudformation.GetTemplateInput, _ ...func(*cloudformation.Options)) (*cloudformation.GetTemplateOutput, error) {
	if f.getTemplate == nil {
		return nil, fmt.Errorf("fakeAPI: GetTemplate not stubbed")
	}
	return f.getTemplate(params)
}
