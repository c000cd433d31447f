package sql

import (
	"errors"
	"fmt"
	"strings"
)

// parseUpdate parses
//
//	UPDATE <name> SET <col>=<val>[, ...] [WHERE <cond>]
//
// Each assignment splits on its first '='; the right side stays raw.
func parseUpdate(q string) (Statement, error) {
	si := keywordIndex(q, "SET")
	if si == -1 {
		return nil, errors.New("UPDATE: expected SET")
	}

	head := strings.Fields(q[:si])
	if len(head) != 2 {
		return nil, errors.New("UPDATE: expected UPDATE <table> SET ...")
	}

	rest := strings.TrimSpace(q[si+len("SET"):])
	assignments := rest
	where := ""
	if wi := keywordIndex(rest, "WHERE"); wi != -1 {
		assignments = strings.TrimSpace(rest[:wi])
		where = strings.TrimSpace(rest[wi+len("WHERE"):])
		if where == "" {
			return nil, errors.New("UPDATE: empty WHERE clause")
		}
	}

	pairs := SplitList(assignments)
	if len(pairs) == 0 {
		return nil, errors.New("UPDATE: no assignments")
	}

	sets := make([]SetClause, 0, len(pairs))
	for _, pair := range pairs {
		column, value, ok := strings.Cut(pair, "=")
		column = strings.TrimSpace(column)
		if !ok || column == "" {
			return nil, fmt.Errorf("UPDATE: invalid assignment %q", pair)
		}
		sets = append(sets, SetClause{Column: column, Value: strings.TrimSpace(value)})
	}

	return UpdateStatement{Table: head[1], Sets: sets, Where: where}, nil
}
