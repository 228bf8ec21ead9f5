// Package filter selects PageBlade list rows with expr-lang expressions.
//
// Rows are exposed to an expression by their JSON field names, so a website
// can be matched with
//
//	enabled && istartsWith(name, "docs") && daysSince(whenCreated) > 30
//
// The icontains, istartsWith and iendsWith helpers ignore case. The expr
// operators (name startsWith "Docs") remain available and are case-sensitive.
// The whole row is also available as the variable "row". Timestamps are Unix
// milliseconds, as the API reports them.
package filter

// Filter is a compiled expression that can be evaluated against rows
type Filter interface {
	// Match reports whether row satisfies the expression
	Match(row any) (bool, error)
	// Expression returns the source expression
	Expression() string
}

var defaultCompiler = NewCompiler(WithCache(64))

// Compile compiles expression using a shared cached compiler
func Compile(expression string) (Filter, error) {
	return defaultCompiler.Compile(expression)
}

// Apply returns the rows matched by f in their original order.
// A nil filter matches everything.
func Apply[T any](f Filter, rows []T) ([]T, error) {
	if f == nil {
		return rows, nil
	}

	matched := make([]T, 0, len(rows))
	for i := range rows {
		ok, err := f.Match(rows[i])
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, rows[i])
		}
	}
	return matched, nil
}
