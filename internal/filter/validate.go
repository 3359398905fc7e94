package filter

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/madagraph/neo4j-filter-service/internal/graph"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// validateRequest checks and normalizes a filter request in place before any
// query is compiled. Normalization fills defaults (limit, combinator,
// direction, depth) and coerces string values on ordering operators to
// numbers when they parse as such.
func validateRequest(req *graph.FilterRequest) error {
	if req.Limit == 0 {
		req.Limit = defaultLimit
	}
	if req.Limit < 1 {
		return &InvalidFilterError{Message: "limit must be at least 1", FilterType: "pagination", Field: "limit"}
	}
	if req.Limit > maxLimit {
		return &InvalidFilterError{
			Message:    fmt.Sprintf("limit must not exceed %d", maxLimit),
			FilterType: "pagination",
			Field:      "limit",
		}
	}
	if req.Skip < 0 {
		return &InvalidFilterError{Message: "skip must not be negative", FilterType: "pagination", Field: "skip"}
	}

	req.SearchText = strings.TrimSpace(req.SearchText)
	hasCriteria := len(req.SourceNodes) > 0 ||
		len(req.Relationships) > 0 ||
		len(req.TargetNodes) > 0 ||
		req.SearchText != ""
	if !hasCriteria {
		return &InvalidFilterError{
			Message:    "at least one filter criterion (source, relationship, target, or search) must be provided",
			FilterType: "request",
		}
	}

	for i := range req.SourceNodes {
		if err := validateNodeCriteria(&req.SourceNodes[i], "source", i); err != nil {
			return err
		}
	}
	for i := range req.TargetNodes {
		if err := validateNodeCriteria(&req.TargetNodes[i], "target", i); err != nil {
			return err
		}
	}
	for i := range req.Relationships {
		if err := validateRelationshipCriteria(&req.Relationships[i], i); err != nil {
			return err
		}
	}
	return nil
}

func validateNodeCriteria(c *graph.NodeCriteria, role string, index int) error {
	if c.Combinator == "" {
		c.Combinator = graph.CombinatorAnd
	}
	if !c.Combinator.Valid() {
		return &InvalidFilterError{
			Message:    fmt.Sprintf("unsupported logical operator %q in %s block #%d", c.Combinator, role, index+1),
			FilterType: "node",
			Field:      "logical_operator",
		}
	}
	for j := range c.Conditions {
		if err := validateCondition(&c.Conditions[j], fmt.Sprintf("%s block #%d", role, index+1)); err != nil {
			return err
		}
	}
	return nil
}

func validateRelationshipCriteria(c *graph.RelationshipCriteria, index int) error {
	if c.Direction == "" {
		c.Direction = graph.DirectionOutgoing
	}
	if !c.Direction.Valid() {
		return &InvalidFilterError{
			Message:    fmt.Sprintf("unsupported direction %q in relationship block #%d", c.Direction, index+1),
			FilterType: "relationship",
			Field:      "direction",
		}
	}
	if c.MinDepth == 0 {
		c.MinDepth = 1
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = c.MinDepth
	}
	if c.MinDepth < 1 {
		return &InvalidFilterError{
			Message:    fmt.Sprintf("min_depth must be at least 1 in relationship block #%d", index+1),
			FilterType: "relationship",
			Field:      "min_depth",
		}
	}
	if c.MaxDepth < c.MinDepth {
		return &InvalidFilterError{
			Message:    fmt.Sprintf("max_depth must not be below min_depth in relationship block #%d", index+1),
			FilterType: "relationship",
			Field:      "max_depth",
		}
	}
	for j := range c.Conditions {
		if err := validateCondition(&c.Conditions[j], fmt.Sprintf("relationship block #%d", index+1)); err != nil {
			return err
		}
	}
	return nil
}

func validateCondition(cond *graph.PropertyCondition, where string) error {
	if cond.PropertyName == "" {
		return &InvalidFilterError{
			Message:    "property_name must not be empty in " + where,
			FilterType: "property",
			Field:      "property_name",
		}
	}
	if strings.ContainsRune(cond.PropertyName, '`') {
		return &InvalidFilterError{
			Message:    fmt.Sprintf("property name %q in %s contains an illegal character", cond.PropertyName, where),
			FilterType: "property",
			Field:      "property_name",
		}
	}
	if !cond.Operator.Valid() {
		return &InvalidFilterError{
			Message:    fmt.Sprintf("unsupported operator %q on property %q in %s", cond.Operator, cond.PropertyName, where),
			FilterType: "property",
			Field:      "operator",
		}
	}
	if cond.Operator.RequiresList() && !isList(cond.Value) {
		return &InvalidFilterError{
			Message:    fmt.Sprintf("value must be a list for operator %q on property %q in %s", cond.Operator, cond.PropertyName, where),
			FilterType: "property",
			Field:      "value",
		}
	}
	if cond.Operator.Ordering() {
		cond.Value = coerceOrderingValue(cond.Value)
	}
	return nil
}

func isList(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// coerceOrderingValue converts a string that parses as an integer or float
// into the numeric type so ordering comparisons run numerically at the
// store. Non-numeric strings stay strings and compare lexicographically.
func coerceOrderingValue(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return v
}
