// Package cypher compiles declarative filter requests into parameterized
// Cypher queries. Queries are assembled through a small expression tree
// (predicates, membership tests, AND/OR combinators, path quantifiers) that
// is rendered to text and a parameter map in a single final pass, so no
// caller-controlled value has a structural path into the query text.
//
// Compilation is pure and stateless; the package is safe for concurrent use.
package cypher

import (
	"fmt"
	"strings"
)

// expr is one node of the compiled WHERE expression tree.
type expr interface {
	writeTo(b *strings.Builder)
}

// propertyTest renders a single property comparison, e.g. "n.age > $s0_age_greater".
// The value itself is always bound through the parameter map.
type propertyTest struct {
	ref    string // rendered property reference, e.g. "n.age"
	token  string // operator token from the fixed table
	param  string // parameter key, without the $ sigil
	negate bool   // NOT IN renders as "NOT ref IN $param"
}

func (t propertyTest) writeTo(b *strings.Builder) {
	if t.negate {
		b.WriteString("NOT ")
	}
	b.WriteString(t.ref)
	b.WriteByte(' ')
	b.WriteString(t.token)
	b.WriteString(" $")
	b.WriteString(t.param)
}

// labelTest renders a parameterized label-membership test. The acceptable
// label set is only known at request time, so it travels as a parameter list
// rather than a static label pattern.
type labelTest struct {
	variable string
	param    string
}

func (t labelTest) writeTo(b *strings.Builder) {
	fmt.Fprintf(b, "any(l IN labels(%s) WHERE l IN $%s)", t.variable, t.param)
}

// typeTest renders a parameterized relationship-type membership test.
type typeTest struct {
	variable string
	param    string
}

func (t typeTest) writeTo(b *strings.Builder) {
	fmt.Fprintf(b, "type(%s) IN $%s", t.variable, t.param)
}

// endpointTest pins a relationship endpoint to a node variable. It encodes
// direction for single-hop queries, which match the pattern undirected so
// that blocks with different directions can be ORed in one query.
type endpointTest struct {
	fn      string // "startNode" or "endNode"
	relVar  string
	nodeVar string
}

func (t endpointTest) writeTo(b *strings.Builder) {
	fmt.Fprintf(b, "%s(%s) = %s", t.fn, t.relVar, t.nodeVar)
}

// searchTest renders the free-text predicate: a case-insensitive regex match
// against any label or any stringified property of the node.
type searchTest struct {
	variable string
	param    string
}

func (t searchTest) writeTo(b *strings.Builder) {
	fmt.Fprintf(b,
		"(any(l IN labels(%s) WHERE l =~ $%s) OR any(k IN keys(%s) WHERE toString(%s[k]) =~ $%s))",
		t.variable, t.param, t.variable, t.variable, t.param)
}

// lengthRange asserts that the realized path length lies within a block's
// own depth bounds. The bounds are parameterized; only the bounding envelope
// in the MATCH pattern is literal (Cypher does not allow parameters there).
type lengthRange struct {
	pathVar  string
	minParam string
	maxParam string
}

func (t lengthRange) writeTo(b *strings.Builder) {
	fmt.Fprintf(b, "(length(%s) >= $%s AND length(%s) <= $%s)",
		t.pathVar, t.minParam, t.pathVar, t.maxParam)
}

// allRelationships universally quantifies an inner expression over every
// relationship on a path: ALL(r IN relationships(p) WHERE inner).
// A nil inner expression quantifies over "true", constraining nothing.
type allRelationships struct {
	pathVar string
	relVar  string
	inner   expr
}

func (t allRelationships) writeTo(b *strings.Builder) {
	fmt.Fprintf(b, "ALL(%s IN relationships(%s) WHERE ", t.relVar, t.pathVar)
	if t.inner == nil {
		b.WriteString("true")
	} else {
		t.inner.writeTo(b)
	}
	b.WriteByte(')')
}

// conjunction joins terms with AND, parenthesizing when more than one term
// is present. A single term renders bare.
type conjunction struct {
	terms []expr
}

func (c conjunction) writeTo(b *strings.Builder) {
	writeJoined(b, c.terms, " AND ")
}

// disjunction joins terms with OR. OR binds looser than AND in Cypher, so a
// multi-term disjunction always parenthesizes itself.
type disjunction struct {
	terms []expr
}

func (d disjunction) writeTo(b *strings.Builder) {
	writeJoined(b, d.terms, " OR ")
}

func writeJoined(b *strings.Builder, terms []expr, sep string) {
	if len(terms) == 1 {
		terms[0].writeTo(b)
		return
	}
	b.WriteByte('(')
	for i, t := range terms {
		if i > 0 {
			b.WriteString(sep)
		}
		t.writeTo(b)
	}
	b.WriteByte(')')
}

// combine wraps terms in a conjunction or disjunction, dropping nil terms.
// Returns nil when nothing remains, so empty blocks impose no constraint.
func combine(terms []expr, or bool) expr {
	kept := make([]expr, 0, len(terms))
	for _, t := range terms {
		if t != nil {
			kept = append(kept, t)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	if or {
		return disjunction{terms: kept}
	}
	return conjunction{terms: kept}
}

// render produces the final expression text.
func render(e expr) string {
	var b strings.Builder
	e.writeTo(&b)
	return b.String()
}
