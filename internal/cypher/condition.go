package cypher

import (
	"fmt"
	"strings"

	"github.com/madagraph/neo4j-filter-service/internal/graph"
)

// operatorTokens is the fixed operator-to-Cypher mapping. NOT IN is the one
// special case: it renders as a negated IN test.
var operatorTokens = map[graph.Operator]string{
	graph.OperatorEqual:        "=",
	graph.OperatorNotEqual:     "<>",
	graph.OperatorGreater:      ">",
	graph.OperatorGreaterEqual: ">=",
	graph.OperatorLess:         "<",
	graph.OperatorLessEqual:    "<=",
	graph.OperatorContains:     "CONTAINS",
	graph.OperatorStartsWith:   "STARTS WITH",
	graph.OperatorEndsWith:     "ENDS WITH",
	graph.OperatorIn:           "IN",
	graph.OperatorNotIn:        "IN",
	graph.OperatorRegex:        "=~",
}

// compileCondition compiles one property condition against the given query
// variable. The prefix (block kind + index, e.g. "s0" or "rel2") scopes the
// generated parameter key to its block so repeated properties and operators
// across blocks never collide. Unknown operators fail compilation; there is
// no default.
func compileCondition(cond graph.PropertyCondition, variable, prefix string, params *paramTable) (expr, error) {
	token, ok := operatorTokens[cond.Operator]
	if !ok {
		return nil, fmt.Errorf("unsupported operator %q on property %q", cond.Operator, cond.PropertyName)
	}
	key := params.add(
		prefix+"_"+sanitizeParamFragment(cond.PropertyName)+"_"+cond.Operator.ParamName(),
		cond.Value,
	)
	return propertyTest{
		ref:    propertyRef(variable, cond.PropertyName),
		token:  token,
		param:  key,
		negate: cond.Operator == graph.OperatorNotIn,
	}, nil
}

// sanitizeParamFragment reduces a property name to a safe parameter-key
// fragment: anything outside [A-Za-z0-9] becomes an underscore.
func sanitizeParamFragment(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// propertyRef renders a property access for the given variable. Names that
// are not plain identifiers are backtick-quoted; backticks themselves are
// rejected at validation and never reach this point.
func propertyRef(variable, name string) string {
	if plainIdentifier(name) {
		return variable + "." + name
	}
	return variable + ".`" + name + "`"
}

func plainIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
