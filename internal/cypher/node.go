package cypher

import (
	"fmt"

	"github.com/madagraph/neo4j-filter-service/internal/graph"
)

// compileNodeBlock compiles one node criteria block against a query variable.
// The label constraint is a membership test over a parameter list, conditions
// join per the block's combinator, and the two parts AND together. A block
// with no constraints compiles to nil.
//
// role is the single-letter parameter prefix for the block's role: "s" for
// source blocks, "t" for target blocks.
func compileNodeBlock(c graph.NodeCriteria, variable, role string, index int, params *paramTable) (expr, error) {
	prefix := fmt.Sprintf("%s%d", role, index)

	terms := make([]expr, 0, 2)
	if len(c.Types) > 0 {
		key := params.add(prefix+"_labels", c.Types)
		terms = append(terms, labelTest{variable: variable, param: key})
	}

	conds := make([]expr, 0, len(c.Conditions))
	for _, cond := range c.Conditions {
		e, err := compileCondition(cond, variable, prefix, params)
		if err != nil {
			return nil, err
		}
		conds = append(conds, e)
	}
	if joined := combine(conds, c.Combinator == graph.CombinatorOr); joined != nil {
		terms = append(terms, joined)
	}

	return combine(terms, false), nil
}

// compileNodeBlocks ORs every non-empty block for one role: a node matches
// the role if it matches any of the supplied criteria blocks. Returns nil
// when no block imposes a constraint.
func compileNodeBlocks(blocks []graph.NodeCriteria, variable, role string, params *paramTable) (expr, error) {
	compiled := make([]expr, 0, len(blocks))
	for i, c := range blocks {
		e, err := compileNodeBlock(c, variable, role, i, params)
		if err != nil {
			return nil, err
		}
		if e != nil {
			compiled = append(compiled, e)
		}
	}
	return combine(compiled, true), nil
}
