package graph

// Operator is a comparison operator applied to a node or relationship
// property. The set is closed; anything else fails validation before the
// compiler ever sees it.
type Operator string

const (
	OperatorEqual        Operator = "="
	OperatorNotEqual     Operator = "!="
	OperatorGreater      Operator = ">"
	OperatorGreaterEqual Operator = ">="
	OperatorLess         Operator = "<"
	OperatorLessEqual    Operator = "<="
	OperatorContains     Operator = "CONTAINS"
	OperatorStartsWith   Operator = "STARTS WITH"
	OperatorEndsWith     Operator = "ENDS WITH"
	OperatorIn           Operator = "IN"
	OperatorNotIn        Operator = "NOT IN"
	OperatorRegex        Operator = "=~"
)

// operatorParamNames maps each operator to the name fragment used when
// deriving parameter keys (e.g. "s0_age_greater").
var operatorParamNames = map[Operator]string{
	OperatorEqual:        "equal",
	OperatorNotEqual:     "not_equal",
	OperatorGreater:      "greater",
	OperatorGreaterEqual: "greater_equal",
	OperatorLess:         "less",
	OperatorLessEqual:    "less_equal",
	OperatorContains:     "contains",
	OperatorStartsWith:   "starts_with",
	OperatorEndsWith:     "ends_with",
	OperatorIn:           "in",
	OperatorNotIn:        "not_in",
	OperatorRegex:        "regex",
}

// Valid reports whether op is one of the supported comparison operators.
func (op Operator) Valid() bool {
	_, ok := operatorParamNames[op]
	return ok
}

// ParamName returns the operator's parameter-key fragment, or "" for an
// unknown operator.
func (op Operator) ParamName() string {
	return operatorParamNames[op]
}

// RequiresList reports whether the operator's value must be a list.
func (op Operator) RequiresList() bool {
	return op == OperatorIn || op == OperatorNotIn
}

// Ordering reports whether the operator is one of the four ordering
// comparisons, which trigger numeric coercion of string values.
func (op Operator) Ordering() bool {
	switch op {
	case OperatorGreater, OperatorGreaterEqual, OperatorLess, OperatorLessEqual:
		return true
	}
	return false
}

// Combinator joins the property conditions inside a single criteria block.
type Combinator string

const (
	CombinatorAnd Combinator = "AND"
	CombinatorOr  Combinator = "OR"
)

// Valid reports whether c is a supported combinator.
func (c Combinator) Valid() bool {
	return c == CombinatorAnd || c == CombinatorOr
}

// Direction constrains relationship traversal relative to the source node.
type Direction string

const (
	DirectionOutgoing Direction = "outgoing"
	DirectionIncoming Direction = "incoming"
	DirectionBoth     Direction = "both"
)

// Valid reports whether d is a supported direction.
func (d Direction) Valid() bool {
	switch d {
	case DirectionOutgoing, DirectionIncoming, DirectionBoth:
		return true
	}
	return false
}
