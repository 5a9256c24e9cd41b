package db

import (
	"fmt"
	"strconv"
	"strings"
)

// FilterResult represents parsed filter components for SQL generation.
type FilterResult struct {
	WhereClause string
	Args        []interface{}
}

// ParseFilter parses a filter expression into a SQL WHERE clause over the
// analyses table.
// Supported syntax:
//   - Simple: "in_scope", "type=NFR"
//   - Comparison: "scope_confidence>0.5", "similarity>=0.2"
//   - Text match: "requirement:login" (substring match on the requirement)
//   - Boolean: "in_scope AND type=FR", "type=UNKNOWN OR type=ERROR"
//
// Returns SQL WHERE clause and args for prepared statement.
func ParseFilter(filter string) (*FilterResult, error) {
	if filter == "" {
		return &FilterResult{WhereClause: "1=1", Args: []interface{}{}}, nil
	}

	filter = strings.TrimSpace(filter)

	var whereParts []string
	var args []interface{}

	if strings.Contains(strings.ToUpper(filter), " AND ") {
		parts := splitByKeyword(filter, "AND")
		for _, part := range parts {
			clause, partArgs, err := parseSimpleFilter(strings.TrimSpace(part))
			if err != nil {
				return nil, err
			}
			whereParts = append(whereParts, clause)
			args = append(args, partArgs...)
		}
		return &FilterResult{
			WhereClause: strings.Join(whereParts, " AND "),
			Args:        args,
		}, nil
	}

	if strings.Contains(strings.ToUpper(filter), " OR ") {
		parts := splitByKeyword(filter, "OR")
		for _, part := range parts {
			clause, partArgs, err := parseSimpleFilter(strings.TrimSpace(part))
			if err != nil {
				return nil, err
			}
			whereParts = append(whereParts, "("+clause+")")
			args = append(args, partArgs...)
		}
		return &FilterResult{
			WhereClause: strings.Join(whereParts, " OR "),
			Args:        args,
		}, nil
	}

	clause, args, err := parseSimpleFilter(filter)
	if err != nil {
		return nil, err
	}

	return &FilterResult{
		WhereClause: clause,
		Args:        args,
	}, nil
}

// parseSimpleFilter parses a single filter expression.
// Examples: "in_scope", "scope_confidence>0.5", "type=NFR"
func parseSimpleFilter(filter string) (string, []interface{}, error) {
	filter = strings.TrimSpace(filter)

	// Requirement text search (substring match)
	if strings.HasPrefix(filter, "requirement:") {
		text := strings.TrimSpace(strings.TrimPrefix(filter, "requirement:"))
		return "requirement LIKE ?", []interface{}{"%" + text + "%"}, nil
	}

	// Boolean field (just field name)
	if !strings.ContainsAny(filter, "=<>!") {
		if !isValidField(filter) {
			return "", nil, fmt.Errorf("invalid field: %s", filter)
		}
		return filter + " = 1", []interface{}{}, nil
	}

	// Comparison operators
	for _, op := range []string{">=", "<=", "!=", "=", ">", "<"} {
		if strings.Contains(filter, op) {
			parts := strings.SplitN(filter, op, 2)
			if len(parts) != 2 {
				continue
			}

			field := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			if !isValidField(field) {
				return "", nil, fmt.Errorf("invalid field: %s", field)
			}

			// Parse value (number or string)
			var arg interface{}
			if num, err := strconv.Atoi(value); err == nil {
				arg = num
			} else if floatNum, err := strconv.ParseFloat(value, 64); err == nil {
				arg = floatNum
			} else {
				value = strings.Trim(value, "\"'")
				arg = value
			}

			return field + " " + op + " ?", []interface{}{arg}, nil
		}
	}

	return "", nil, fmt.Errorf("invalid filter syntax: %s", filter)
}

// splitByKeyword splits a string by AND/OR keywords (case-insensitive).
func splitByKeyword(s, keyword string) []string {
	upper := strings.ToUpper(s)
	pattern := " " + keyword + " "

	var parts []string
	remaining := s
	upperRemaining := upper

	for {
		idx := strings.Index(upperRemaining, pattern)
		if idx == -1 {
			parts = append(parts, remaining)
			break
		}

		parts = append(parts, remaining[:idx])
		remaining = remaining[idx+len(pattern):]
		upperRemaining = upperRemaining[idx+len(pattern):]
	}

	return parts
}

// isValidField checks if a field name is queryable.
var validFields = map[string]bool{
	"in_scope":         true,
	"scope_confidence": true,
	"similarity":       true,
	"keyword_overlap":  true,
	"type":             true,
	"type_confidence":  true,
	"sub_category":     true,
	"status":           true,
}

func isValidField(field string) bool {
	return validFields[field]
}
