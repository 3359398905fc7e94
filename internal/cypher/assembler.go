package cypher

import (
	"fmt"
	"strings"

	"github.com/madagraph/neo4j-filter-service/internal/graph"
)

// Query variable bindings. These are the only identifiers that appear
// literally in compiled text alongside operator tokens; everything
// caller-controlled travels through the parameter map.
const (
	sourceVar = "n"
	targetVar = "m"
	relVar    = "r"
	pathVar   = "p"

	// quantifiedRelVar is the relationship binding inside the universal
	// quantifier in variable-length mode.
	quantifiedRelVar = "r"

	// searchParam is the parameter key for the free-text predicate.
	searchParam = "g_search"
)

// BuildNodeQuery compiles a request into the node filter query: a single
// anonymous node variable filtered by the OR of all source blocks, ANDed
// with the free-text predicate when present, with deterministic pagination.
//
// Compilation is deterministic: the same request always yields byte-identical
// text and an equal parameter map.
func BuildNodeQuery(req *graph.FilterRequest) (*graph.CompiledQuery, error) {
	params := newParamTable()

	wheres := make([]expr, 0, 2)
	sourceExpr, err := compileNodeBlocks(req.SourceNodes, sourceVar, "s", params)
	if err != nil {
		return nil, err
	}
	if sourceExpr != nil {
		wheres = append(wheres, sourceExpr)
	}
	if e := compileSearch(req.SearchText, sourceVar, params); e != nil {
		wheres = append(wheres, e)
	}

	var b strings.Builder
	b.WriteString("MATCH (" + sourceVar + ")")
	writeWhere(&b, wheres)
	b.WriteString("\nRETURN n, labels(n) AS node_labels, id(n) AS node_id")
	writePagination(&b, req.Skip, req.Limit)

	return &graph.CompiledQuery{Text: b.String(), Params: params.values}, nil
}

// BuildRelationshipQuery compiles a request into the relationship filter
// query. Strategy selection is global: variable-length-path phrasing if any
// block's depth range differs from (1,1), single-hop otherwise. In
// variable-length mode the returned relationship is the path's terminal
// edge, an approximation for callers expecting every traversed edge.
func BuildRelationshipQuery(req *graph.FilterRequest) (*graph.CompiledQuery, error) {
	params := newParamTable()
	variablePath := needsVariablePath(req.Relationships)

	var b strings.Builder
	if variablePath {
		minDepth, maxDepth := depthEnvelope(req.Relationships)
		// The bounding envelope cannot be parameterized in a MATCH pattern;
		// both bounds are validated integers.
		fmt.Fprintf(&b, "MATCH %s = (%s)-[*%d..%d]-(%s)", pathVar, sourceVar, minDepth, maxDepth, targetVar)
	} else {
		fmt.Fprintf(&b, "MATCH (%s)-[%s]-(%s)", sourceVar, relVar, targetVar)
	}

	wheres := make([]expr, 0, 3)
	sourceExpr, err := compileNodeBlocks(req.SourceNodes, sourceVar, "s", params)
	if err != nil {
		return nil, err
	}
	if sourceExpr != nil {
		wheres = append(wheres, sourceExpr)
	}
	targetExpr, err := compileNodeBlocks(req.TargetNodes, targetVar, "t", params)
	if err != nil {
		return nil, err
	}
	if targetExpr != nil {
		wheres = append(wheres, targetExpr)
	}
	relExpr, err := compileRelationshipBlocks(req.Relationships, variablePath, params)
	if err != nil {
		return nil, err
	}
	if relExpr != nil {
		wheres = append(wheres, relExpr)
	}
	writeWhere(&b, wheres)

	if variablePath {
		b.WriteString("\nWITH n, m, last(relationships(p)) AS r")
	}
	b.WriteString("\nRETURN n, r, m, type(r) AS rel_type, id(r) AS rel_id, id(n) AS source_id, id(m) AS target_id")
	writePagination(&b, req.Skip, req.Limit)

	return &graph.CompiledQuery{Text: b.String(), Params: params.values}, nil
}

// compileSearch compiles the free-text predicate, or nil for blank text.
// The text is embedded in a case-insensitive regex on the value side of the
// parameter map, never in the query text.
func compileSearch(text, variable string, params *paramTable) expr {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	key := params.add(searchParam, "(?i).*"+trimmed+".*")
	return searchTest{variable: variable, param: key}
}

// writeWhere renders the WHERE clause as the AND of the given groups; no
// clause is emitted when every criteria list was empty, so an empty list
// imposes no constraint.
func writeWhere(b *strings.Builder, wheres []expr) {
	if len(wheres) == 0 {
		return
	}
	b.WriteString("\nWHERE ")
	for i, e := range wheres {
		if i > 0 {
			b.WriteString(" AND ")
		}
		e.writeTo(b)
	}
}

// writePagination appends SKIP/LIMIT. Both values are validated integers
// with fixed bounds, not caller text.
func writePagination(b *strings.Builder, skip, limit int) {
	fmt.Fprintf(b, "\nSKIP %d LIMIT %d", skip, limit)
}
