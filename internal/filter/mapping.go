package filter

import (
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"github.com/madagraph/neo4j-filter-service/internal/graph"
)

// mapNodeRecord converts one raw record from the node query into a
// ResultNode. A missing or mistyped field is an execution error, never a
// silent default: the query shape and the mapper move together.
func mapNodeRecord(rec *neo4j.Record) (graph.ResultNode, error) {
	node, err := recordNode(rec, "n")
	if err != nil {
		return graph.ResultNode{}, err
	}
	id, err := recordInt(rec, "node_id")
	if err != nil {
		return graph.ResultNode{}, err
	}
	return graph.ResultNode{
		ID:         id,
		Labels:     node.Labels,
		Properties: node.Props,
	}, nil
}

// mapRelationshipRecord converts one raw record from the relationship query
// into a ResultRelationship with both endpoints resolved.
func mapRelationshipRecord(rec *neo4j.Record) (graph.ResultRelationship, error) {
	rel, err := recordRelationship(rec, "r")
	if err != nil {
		return graph.ResultRelationship{}, err
	}
	source, err := recordNode(rec, "n")
	if err != nil {
		return graph.ResultRelationship{}, err
	}
	target, err := recordNode(rec, "m")
	if err != nil {
		return graph.ResultRelationship{}, err
	}
	relID, err := recordInt(rec, "rel_id")
	if err != nil {
		return graph.ResultRelationship{}, err
	}
	relType, err := recordString(rec, "rel_type")
	if err != nil {
		return graph.ResultRelationship{}, err
	}
	sourceID, err := recordInt(rec, "source_id")
	if err != nil {
		return graph.ResultRelationship{}, err
	}
	targetID, err := recordInt(rec, "target_id")
	if err != nil {
		return graph.ResultRelationship{}, err
	}

	return graph.ResultRelationship{
		ID:   relID,
		Type: relType,
		Source: graph.ResultNode{
			ID:         sourceID,
			Labels:     source.Labels,
			Properties: source.Props,
		},
		Target: graph.ResultNode{
			ID:         targetID,
			Labels:     target.Labels,
			Properties: target.Props,
		},
		Properties: rel.Props,
	}, nil
}

func recordNode(rec *neo4j.Record, key string) (dbtype.Node, error) {
	raw, ok := rec.Get(key)
	if !ok {
		return dbtype.Node{}, fmt.Errorf("record is missing expected field %q", key)
	}
	node, ok := raw.(dbtype.Node)
	if !ok {
		return dbtype.Node{}, fmt.Errorf("record field %q is not a node (got %T)", key, raw)
	}
	return node, nil
}

func recordRelationship(rec *neo4j.Record, key string) (dbtype.Relationship, error) {
	raw, ok := rec.Get(key)
	if !ok {
		return dbtype.Relationship{}, fmt.Errorf("record is missing expected field %q", key)
	}
	rel, ok := raw.(dbtype.Relationship)
	if !ok {
		return dbtype.Relationship{}, fmt.Errorf("record field %q is not a relationship (got %T)", key, raw)
	}
	return rel, nil
}

func recordInt(rec *neo4j.Record, key string) (int64, error) {
	raw, ok := rec.Get(key)
	if !ok {
		return 0, fmt.Errorf("record is missing expected field %q", key)
	}
	n, ok := raw.(int64)
	if !ok {
		return 0, fmt.Errorf("record field %q is not an integer (got %T)", key, raw)
	}
	return n, nil
}

func recordString(rec *neo4j.Record, key string) (string, error) {
	raw, ok := rec.Get(key)
	if !ok {
		return "", fmt.Errorf("record is missing expected field %q", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("record field %q is not a string (got %T)", key, raw)
	}
	return s, nil
}
