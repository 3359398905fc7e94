package filter

import "fmt"

// maxQueryErrorLength caps how much compiled query text an execution error
// carries. Parameters are never attached: they may hold sensitive filter
// values.
const maxQueryErrorLength = 500

// InvalidFilterError reports a malformed or empty filter request. It is
// raised before any query is compiled and maps to a 400-class response.
type InvalidFilterError struct {
	Message    string
	FilterType string // request, pagination, node, relationship, property
	Field      string
}

func (e *InvalidFilterError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid filter (%s, field %s): %s", e.FilterType, e.Field, e.Message)
	}
	if e.FilterType != "" {
		return fmt.Sprintf("invalid filter (%s): %s", e.FilterType, e.Message)
	}
	return "invalid filter: " + e.Message
}

// QueryExecutionError wraps a failure raised by the store while running a
// compiled query. Query carries a truncated copy of the query text and
// CypherError the store's native message.
type QueryExecutionError struct {
	Message     string
	Query       string
	CypherError string
}

func (e *QueryExecutionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.CypherError)
}

// ConnectionError reports that the graph store is unreachable. It maps to a
// 503-class response.
type ConnectionError struct {
	Message string
	Err     error
}

func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// truncateQuery caps query text included in errors, suffixing to make the
// truncation visible.
func truncateQuery(query string) string {
	if len(query) <= maxQueryErrorLength {
		return query
	}
	return query[:maxQueryErrorLength] + "... (truncated)"
}
