// Package graph defines the request and response model for the declarative
// filter API. All values are request-scoped: they are constructed from the
// incoming request, consumed by the compiler and orchestrator, and discarded
// once the response is produced.
package graph

// PropertyCondition is a single predicate on a node or relationship property.
type PropertyCondition struct {
	PropertyName string   `json:"property_name"`
	Operator     Operator `json:"operator"`
	Value        any      `json:"value"`
}

// NodeCriteria is one alternative node-matching block. Multiple blocks in a
// list are ORed together by the assembler; conditions inside a block are
// joined by the block's combinator.
type NodeCriteria struct {
	Types      []string            `json:"node_types"`
	Conditions []PropertyCondition `json:"property_filters"`
	Combinator Combinator          `json:"logical_operator"`
}

// RelationshipCriteria is one alternative relationship-matching block.
// MinDepth and MaxDepth describe the traversal depth; anything other than
// (1,1) switches the whole request to variable-length-path phrasing.
type RelationshipCriteria struct {
	Types      []string            `json:"relationship_types"`
	Conditions []PropertyCondition `json:"property_filters"`
	Direction  Direction           `json:"direction"`
	MinDepth   int                 `json:"min_depth"`
	MaxDepth   int                 `json:"max_depth"`
}

// FilterRequest is the complete declarative filter request:
// (source nodes) -[relationships]-> (target nodes), plus an optional
// free-text search and pagination.
type FilterRequest struct {
	SourceNodes   []NodeCriteria         `json:"source_nodes"`
	Relationships []RelationshipCriteria `json:"relationships"`
	TargetNodes   []NodeCriteria         `json:"target_nodes"`
	SearchText    string                 `json:"search_query"`
	Skip          int                    `json:"skip"`
	Limit         int                    `json:"limit"`
}

// CompiledQuery is the output of the assembler: parameterized Cypher text
// plus its parameter map. Every parameter referenced in Text appears exactly
// once in Params; filter values never appear literally in Text.
type CompiledQuery struct {
	Text   string
	Params map[string]any
}

// ResultNode is a node returned by a filter query.
type ResultNode struct {
	ID         int64          `json:"id"`
	Labels     []string       `json:"labels"`
	Properties map[string]any `json:"properties"`
}

// ResultRelationship is a relationship returned by a filter query, with its
// endpoint nodes resolved.
type ResultRelationship struct {
	ID         int64          `json:"id"`
	Type       string         `json:"type"`
	Source     ResultNode     `json:"source"`
	Target     ResultNode     `json:"target"`
	Properties map[string]any `json:"properties"`
}

// FilterResponse is the envelope returned by both filter operations.
type FilterResponse struct {
	Total         int      `json:"total"`
	Limit         int      `json:"limit"`
	Skip          int      `json:"skip"`
	Data          []any    `json:"data"`
	ActiveFilters []string `json:"active_filters"`
}
