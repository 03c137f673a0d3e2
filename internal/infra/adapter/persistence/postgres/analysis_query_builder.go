// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"

	"stringlang/internal/repository"
)

// AnalysisQueryBuilder builds the WHERE clause shared by the COUNT and SELECT
// queries of the archive listing. Placeholders start at $1.
type AnalysisQueryBuilder struct{}

// NewAnalysisQueryBuilder creates a new AnalysisQueryBuilder.
func NewAnalysisQueryBuilder() *AnalysisQueryBuilder {
	return &AnalysisQueryBuilder{}
}

// BuildWhereClause returns "" when the filter is empty. The block filter uses
// JSONB containment on the report entry array, which the GIN index serves.
func (qb *AnalysisQueryBuilder) BuildWhereClause(filter repository.AnalysisFilter) (clause string, args []any) {
	var conditions []string
	paramIndex := 1

	if filter.Source != "" {
		conditions = append(conditions, fmt.Sprintf("source = $%d", paramIndex))
		args = append(args, string(filter.Source))
		paramIndex++
	}

	if filter.Block != "" {
		conditions = append(conditions,
			fmt.Sprintf("report @> jsonb_build_array(jsonb_build_object('block', $%d::text))", paramIndex))
		args = append(args, filter.Block)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
