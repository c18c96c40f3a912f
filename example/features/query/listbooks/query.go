package listbooks

const (
	queryType = "ListBooks"
)

// Query represents the intent to list all titles in the catalog.
type Query struct{}

// QueryType returns the type identifier for this query, used for observability and routing.
func (q Query) QueryType() string {
	return queryType
}

// BuildQuery creates a new Query.
func BuildQuery() Query {
	return Query{}
}
