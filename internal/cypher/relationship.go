package cypher

import (
	"fmt"

	"github.com/madagraph/neo4j-filter-service/internal/graph"
)

// needsVariablePath reports whether any relationship block requests a depth
// range other than exactly (1,1). One such block switches the entire request
// to variable-length-path phrasing.
func needsVariablePath(blocks []graph.RelationshipCriteria) bool {
	for _, c := range blocks {
		if c.MinDepth != 1 || c.MaxDepth != 1 {
			return true
		}
	}
	return false
}

// depthEnvelope returns the widest depth range across all blocks: the path
// is matched once at this envelope, then each block re-checks its own exact
// bounds in the WHERE clause. Defaults to (1,1) when no block declares depth.
func depthEnvelope(blocks []graph.RelationshipCriteria) (int, int) {
	minDepth, maxDepth := 1, 1
	for i, c := range blocks {
		if i == 0 || c.MinDepth < minDepth {
			minDepth = c.MinDepth
		}
		if c.MaxDepth > maxDepth {
			maxDepth = c.MaxDepth
		}
	}
	return minDepth, maxDepth
}

// compileRelationshipSingleHop compiles one block for single-hop phrasing.
// The pattern is matched without a fixed direction so blocks with different
// directions can OR together; direction is enforced here as an endpoint
// predicate against the source variable instead.
func compileRelationshipSingleHop(c graph.RelationshipCriteria, relVar, sourceVar string, index int, params *paramTable) (expr, error) {
	prefix := fmt.Sprintf("rel%d", index)

	terms := make([]expr, 0, 3)
	if len(c.Types) > 0 {
		key := params.add(prefix+"_types", c.Types)
		terms = append(terms, typeTest{variable: relVar, param: key})
	}
	for _, cond := range c.Conditions {
		e, err := compileCondition(cond, relVar, prefix, params)
		if err != nil {
			return nil, err
		}
		terms = append(terms, e)
	}

	switch c.Direction {
	case graph.DirectionOutgoing:
		terms = append(terms, endpointTest{fn: "startNode", relVar: relVar, nodeVar: sourceVar})
	case graph.DirectionIncoming:
		terms = append(terms, endpointTest{fn: "endNode", relVar: relVar, nodeVar: sourceVar})
	case graph.DirectionBoth:
		// No directional predicate.
	}

	return combine(terms, false), nil
}

// compileRelationshipVariablePath compiles one block for variable-length
// phrasing: the block's own depth bounds are asserted against the realized
// path length, and the type/property constraints are universally quantified
// over every relationship on the path. Direction is not enforced in this
// mode; a strict end-to-end direction with multi-hop depth is only
// approximated.
func compileRelationshipVariablePath(c graph.RelationshipCriteria, pathVar, relVar string, index int, params *paramTable) (expr, error) {
	prefix := fmt.Sprintf("rel%d", index)

	inner := make([]expr, 0, 1+len(c.Conditions))
	if len(c.Types) > 0 {
		key := params.add(prefix+"_types", c.Types)
		inner = append(inner, typeTest{variable: relVar, param: key})
	}
	for _, cond := range c.Conditions {
		e, err := compileCondition(cond, relVar, prefix, params)
		if err != nil {
			return nil, err
		}
		inner = append(inner, e)
	}

	minKey := params.add(prefix+"_min_depth", c.MinDepth)
	maxKey := params.add(prefix+"_max_depth", c.MaxDepth)

	return conjunction{terms: []expr{
		lengthRange{pathVar: pathVar, minParam: minKey, maxParam: maxKey},
		allRelationships{pathVar: pathVar, relVar: relVar, inner: combine(inner, false)},
	}}, nil
}

// compileRelationshipBlocks ORs every non-empty relationship block using the
// phrasing selected for the request.
func compileRelationshipBlocks(blocks []graph.RelationshipCriteria, variablePath bool, params *paramTable) (expr, error) {
	compiled := make([]expr, 0, len(blocks))
	for i, c := range blocks {
		var (
			e   expr
			err error
		)
		if variablePath {
			e, err = compileRelationshipVariablePath(c, pathVar, quantifiedRelVar, i, params)
		} else {
			e, err = compileRelationshipSingleHop(c, relVar, sourceVar, i, params)
		}
		if err != nil {
			return nil, err
		}
		if e != nil {
			compiled = append(compiled, e)
		}
	}
	return combine(compiled, true), nil
}
