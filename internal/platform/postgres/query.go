package postgres

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/kitchen-api/internal/paging"
)

// predicate accumulates AND-joined conditions with positional arguments.
type predicate struct {
	clauses []string
	args    []any
}

// add appends a condition. format must contain exactly one %d, which is
// replaced by the placeholder index of arg.
func (p *predicate) add(format string, arg any) {
	p.args = append(p.args, arg)
	p.clauses = append(p.clauses, fmt.Sprintf(format, len(p.args)))
}

func (p *predicate) where() string {
	if len(p.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.clauses, " AND ")
}

// page appends LIMIT/OFFSET placeholders and returns the clause plus the
// full argument list.
func (p *predicate) page(req paging.Request) (string, []any) {
	args := append(append([]any{}, p.args...), req.Limit, req.Offset())
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)), args
}

// containsPattern builds an ILIKE pattern matching s anywhere, with LIKE
// wildcards in s escaped.
func containsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// orderBy maps the caller's sort key onto a whitelisted column. Unknown keys
// sort by fallback.
func orderBy(req paging.Request, allowed map[string]string, fallback string) string {
	col, ok := allowed[req.SortBy]
	if !ok {
		col = fallback
	}
	dir := "DESC"
	if req.SortOrder == paging.Asc {
		dir = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", col, dir)
}

// inList returns "$n, $n+1, ..." placeholders for ids starting after offset.
func inList(ids []uuid.UUID, offset int) (string, []any) {
	holders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		holders[i] = fmt.Sprintf("$%d", offset+i+1)
		args[i] = id
	}
	return strings.Join(holders, ", "), args
}
