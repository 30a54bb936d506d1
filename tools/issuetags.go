package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/betahubio/betahub-mcp/api"
)

// ListIssueTagsInput is the listIssueTags tool input.
type ListIssueTagsInput struct {
	ProjectID string `mapstructure:"projectId" validate:"required"`
}

// tagForest is the two-level tag tree derived from the flat upstream
// list: top-level sections with their children, plus an explicit bucket
// for children whose declared parent does not exist.
type tagForest struct {
	sections []tagSection
	orphans  []api.IssueTag
}

type tagSection struct {
	parent   api.IssueTag
	children []api.IssueTag
}

func buildTagForest(tags []api.IssueTag) tagForest {
	children := make(map[int][]api.IssueTag)
	parents := make(map[int]bool)
	for _, tag := range tags {
		if tag.ParentTagID == nil {
			parents[tag.ID] = true
		} else {
			children[*tag.ParentTagID] = append(children[*tag.ParentTagID], tag)
		}
	}

	var f tagForest
	for _, tag := range tags {
		switch {
		case tag.ParentTagID == nil:
			f.sections = append(f.sections, tagSection{parent: tag, children: children[tag.ID]})
		case !parents[*tag.ParentTagID]:
			f.orphans = append(f.orphans, tag)
		}
	}
	return f
}

// ListIssueTags lists a project's issue tags as a human-readable report
// rather than JSON. Orphaned child tags are reported in their own
// section, never silently dropped.
func (t *Toolset) ListIssueTags(ctx context.Context, in ListIssueTagsInput) (string, error) {
	if err := validate.StructCtx(ctx, in); err != nil {
		return "", validationError(err)
	}

	endpoint := "projects/" + in.ProjectID + "/issue_tags.json"
	var resp api.IssueTagsResponse
	if err := t.client.Get(ctx, endpoint, &resp); err != nil {
		return "", translateAPIError(err, "fetch issue tags",
			resourceRef{"Project", in.ProjectID}, resourceRef{"project", in.ProjectID})
	}

	if len(resp.Tags) == 0 {
		return "No issue tags found in this project.", nil
	}

	forest := buildTagForest(resp.Tags)

	var b strings.Builder
	fmt.Fprintf(&b, "# Issue Tags for Project %s\n\n", in.ProjectID)
	fmt.Fprintf(&b, "Found %d tag(s)\n\n", len(resp.Tags))

	for _, section := range forest.sections {
		fmt.Fprintf(&b, "## %s (ID: %d)\n", section.parent.Name, section.parent.ID)
		fmt.Fprintf(&b, "- **Color:** %s\n", section.parent.Color)
		if section.parent.Description != "" {
			fmt.Fprintf(&b, "- **Description:** %s\n", section.parent.Description)
		}
		if len(section.children) > 0 {
			b.WriteString("- **Sub-tags:**\n")
			for _, child := range section.children {
				fmt.Fprintf(&b, "  - %s (ID: %d)", child.Name, child.ID)
				if child.Description != "" {
					fmt.Fprintf(&b, " - %s", child.Description)
				}
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	if len(forest.orphans) > 0 {
		b.WriteString("## Orphaned Tags\n")
		b.WriteString("The following tags reference non-existent parents:\n")
		for _, tag := range forest.orphans {
			fmt.Fprintf(&b, "- %s (ID: %d, Missing Parent ID: %d)\n", tag.Name, tag.ID, *tag.ParentTagID)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n---\n")
	b.WriteString("**Usage:** Use tag IDs with the `listIssues` tool's `tagIds` parameter to filter issues by tags.\n")
	b.WriteString("Example: `tagIds: \"1,2,3\"` to filter issues with tags 1, 2, or 3.\n")

	return b.String(), nil
}
