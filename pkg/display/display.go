// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/cppforlife/go-cli-ui/ui"
	uitable "github.com/cppforlife/go-cli-ui/ui/table"
)

const (
	unknownResourceType      = "UNKNOWN RESOURCE TYPE"
	unknownReason            = "UNKNOWN REASON"
	unknownResourceLogicalID = "UNKNOWN RESOURCE LOGICAL ID"
	unknownChangeSet         = "UNKNOWN CHANGE SET"
)

// Display renders change sets, stacks and stack events for humans and
// asks for confirmation before destructive steps.
type Display struct {
	ui ui.UI
}

func NewDisplay(ui ui.UI) Display {
	return Display{ui}
}

// AskConfirm prompts the user; a nil result means they said yes.
func (d Display) AskConfirm(msg string) bool {
	d.ui.PrintLinef("%s", msg)
	return d.ui.AskForConfirmation() == nil
}

// PrintChangeSet shows a change set with its per-resource actions,
// replacements and changed properties, colored by severity.
func (d Display) PrintChangeSet(changeSet *cloudformation.DescribeChangeSetOutput) {
	name := aws.ToString(changeSet.ChangeSetName)
	if len(name) == 0 {
		name = unknownChangeSet
	}
	d.ui.PrintLinef("Change set: %s", name)

	if len(changeSet.Status) > 0 {
		d.ui.PrintLinef("Change set status: %s", colorForChangeSetStatus(changeSet.Status)(string(changeSet.Status)))
	}

	for _, change := range changeSet.Changes {
		rc := change.ResourceChange
		if rc == nil {
			continue
		}

		actionColor := colorForChangeAction(rc.Action)
		d.ui.PrintLinef("  %s", actionColor(fmt.Sprintf("%s %s (%s)",
			changeActionSymbol(rc.Action),
			orUnknown(rc.LogicalResourceId, unknownResourceLogicalID),
			orUnknown(rc.ResourceType, unknownResourceType))))

		d.ui.PrintLinef("    %s", actionColor(fmt.Sprintf("Action: %s", rc.Action)))

		if len(rc.Replacement) > 0 {
			d.ui.PrintLinef("    %s", colorForReplacement(rc.Replacement)(fmt.Sprintf("Replacement: %s", rc.Replacement)))
		}

		if rc.PhysicalResourceId != nil {
			d.ui.PrintLinef("    Physical Resource: %s", *rc.PhysicalResourceId)
		}

		if len(rc.Scope) > 0 {
			var scope []string
			for _, attr := range rc.Scope {
				scope = append(scope, string(attr))
			}
			d.ui.PrintLinef("    Change Scope: %s", strings.Join(scope, ", "))
		}

		if len(rc.Details) > 0 {
			d.ui.PrintLinef("    Changed Properties")
			for _, detail := range rc.Details {
				d.printChangeDetail(detail)
			}
		}
	}
}

func (d Display) printChangeDetail(detail types.ResourceChangeDetail) {
	if target := detail.Target; target != nil {
		d.ui.PrintLinef("      %s %s", string(target.Attribute), aws.ToString(target.Name))
		if len(target.RequiresRecreation) > 0 {
			d.ui.PrintLinef("        %s",
				colorForRequiresRecreation(target.RequiresRecreation)(string(target.RequiresRecreation)))
		}
	}
	if detail.CausingEntity != nil {
		d.ui.PrintLinef("        Causing entity: %s", *detail.CausingEntity)
	}
	if len(detail.ChangeSource) > 0 {
		d.ui.PrintLinef("        Change source: %s", string(detail.ChangeSource))
	}
}

// PrintResourceErrors shows the failed events of a stack operation,
// filtered to failures that happened after since.
func (d Display) PrintResourceErrors(events []types.StackEvent, since time.Time) {
	for _, event := range events {
		if event.Timestamp == nil || !event.Timestamp.After(since) {
			continue
		}
		switch event.ResourceStatus {
		case types.ResourceStatusCreateFailed, types.ResourceStatusUpdateFailed, types.ResourceStatusDeleteFailed:
		default:
			continue
		}

		d.ui.ErrorLinef("%s", red(fmt.Sprintf("%s: %s",
			orUnknown(event.ResourceType, unknownResourceType),
			orUnknown(event.LogicalResourceId, unknownResourceLogicalID))))
		d.ui.ErrorLinef("%s", red(fmt.Sprintf("reason: %s",
			orUnknown(event.ResourceStatusReason, unknownReason))))
		if event.ResourceProperties != nil {
			d.ui.ErrorLinef("%s", red(fmt.Sprintf("properties: %s", *event.ResourceProperties)))
		}
	}
}

// PrintStack shows a single stack's details.
func (d Display) PrintStack(stack types.Stack) {
	d.ui.PrintLinef("Stack: %s", aws.ToString(stack.StackName))
	d.ui.PrintLinef("Status: %s", colorForStackStatus(stack.StackStatus)(string(stack.StackStatus)))
	if stack.StackStatusReason != nil {
		d.ui.PrintLinef("Status reason: %s", *stack.StackStatusReason)
	}
	if stack.Description != nil {
		d.ui.PrintLinef("Description: %s", *stack.Description)
	}
	if stack.CreationTime != nil {
		d.ui.PrintLinef("Created: %s", stack.CreationTime.Local().Format(time.RFC1123))
	}
	if stack.LastUpdatedTime != nil {
		d.ui.PrintLinef("Updated: %s", stack.LastUpdatedTime.Local().Format(time.RFC1123))
	}

	if len(stack.Outputs) > 0 {
		table := uitable.Table{
			Title:   "Outputs",
			Content: "outputs",
			Header: []uitable.Header{
				uitable.NewHeader("Key"),
				uitable.NewHeader("Value"),
				uitable.NewHeader("Description"),
			},
		}
		for _, output := range stack.Outputs {
			table.Rows = append(table.Rows, []uitable.Value{
				uitable.NewValueString(aws.ToString(output.OutputKey)),
				uitable.NewValueString(aws.ToString(output.OutputValue)),
				uitable.NewValueString(aws.ToString(output.Description)),
			})
		}
		d.ui.PrintTable(table)
	}
}

// PrintStackSummaries shows the result of the list command as a table.
func (d Display) PrintStackSummaries(summaries []types.StackSummary) {
	table := uitable.Table{
		Title:   "Stacks",
		Content: "stacks",
		Header: []uitable.Header{
			uitable.NewHeader("Name"),
			uitable.NewHeader("Status"),
			uitable.NewHeader("Created"),
			uitable.NewHeader("Description"),
		},
	}
	for _, summary := range summaries {
		created := ""
		if summary.CreationTime != nil {
			created = summary.CreationTime.Local().Format(time.RFC1123)
		}
		table.Rows = append(table.Rows, []uitable.Value{
			uitable.NewValueString(aws.ToString(summary.StackName)),
			uitable.NewValueString(colorForStackStatus(summary.StackStatus)(string(summary.StackStatus))),
			uitable.NewValueString(created),
			uitable.NewValueString(aws.ToString(summary.TemplateDescription)),
		})
	}
	d.ui.PrintTable(table)
}

// PrintStackResources shows a stack's resources as a table.
func (d Display) PrintStackResources(resources []types.StackResourceSummary) {
	table := uitable.Table{
		Title:   "Resources",
		Content: "resources",
		Header: []uitable.Header{
			uitable.NewHeader("Logical ID"),
			uitable.NewHeader("Physical ID"),
			uitable.NewHeader("Type"),
			uitable.NewHeader("Status"),
		},
	}
	for _, resource := range resources {
		table.Rows = append(table.Rows, []uitable.Value{
			uitable.NewValueString(aws.ToString(resource.LogicalResourceId)),
			uitable.NewValueString(aws.ToString(resource.PhysicalResourceId)),
			uitable.NewValueString(aws.ToString(resource.ResourceType)),
			uitable.NewValueString(string(resource.ResourceStatus)),
		})
	}
	d.ui.PrintTable(table)
}

func orUnknown(val *string, unknown string) string {
	if val == nil || len(*val) == 0 {
		return unknown
	}
	return *val
}
