package filter

import (
	"fmt"
	"strings"

	"github.com/madagraph/neo4j-filter-service/internal/graph"
)

// summaryValueLimit caps string values rendered into the active-filter
// summary; anything longer is elided.
const summaryValueLimit = 20

// ActiveFilterSummary renders the human-readable list of filters applied by
// a request. Iteration order is fixed (source blocks, relationship blocks,
// target blocks, free-text) with index-qualified labels, so the list is
// stable regardless of map iteration anywhere else.
func ActiveFilterSummary(req *graph.FilterRequest) []string {
	summary := make([]string, 0, 8)

	for i, block := range req.SourceNodes {
		prefix := fmt.Sprintf("Source #%d", i+1)
		if len(block.Types) > 0 {
			summary = append(summary, fmt.Sprintf("%s Types: %s", prefix, strings.Join(block.Types, ", ")))
		}
		for _, cond := range block.Conditions {
			summary = append(summary, fmt.Sprintf("%s %s %s %s",
				prefix, cond.PropertyName, cond.Operator, formatSummaryValue(cond.Value)))
		}
	}

	for i, block := range req.Relationships {
		prefix := fmt.Sprintf("Rel #%d", i+1)
		if len(block.Types) > 0 {
			summary = append(summary, fmt.Sprintf("%s Types: %s", prefix, strings.Join(block.Types, ", ")))
		}
		if block.Direction != "" {
			summary = append(summary, fmt.Sprintf("%s Dir: %s", prefix, block.Direction))
		}
		for _, cond := range block.Conditions {
			summary = append(summary, fmt.Sprintf("%s Prop: %s %s %s",
				prefix, cond.PropertyName, cond.Operator, formatSummaryValue(cond.Value)))
		}
	}

	for i, block := range req.TargetNodes {
		prefix := fmt.Sprintf("Target #%d", i+1)
		if len(block.Types) > 0 {
			summary = append(summary, fmt.Sprintf("%s Types: %s", prefix, strings.Join(block.Types, ", ")))
		}
		for _, cond := range block.Conditions {
			summary = append(summary, fmt.Sprintf("%s %s %s %s",
				prefix, cond.PropertyName, cond.Operator, formatSummaryValue(cond.Value)))
		}
	}

	if req.SearchText != "" {
		summary = append(summary, "Global Search: "+req.SearchText)
	}

	return summary
}

func formatSummaryValue(v any) string {
	if s, ok := v.(string); ok && len(s) > summaryValueLimit {
		return fmt.Sprintf("%q", s[:summaryValueLimit-3]+"...")
	}
	return fmt.Sprintf("%v", v)
}
