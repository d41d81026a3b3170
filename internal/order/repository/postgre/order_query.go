package postgre

import (
	"fmt"
	"strings"

	repo "order-intake/internal/order/repository"
)

// buildFilter builds the WHERE clause shared by the count and page queries.
func (r *implRepository) buildFilter(opt repo.ListOrdersOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Status != "" {
		args = append(args, string(opt.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// buildPage appends LIMIT/OFFSET placeholders after the filter args.
func (r *implRepository) buildPage(opt repo.ListOrdersOptions, args []any) (string, []any) {
	var parts []string

	if opt.Limit > 0 {
		args = append(args, opt.Limit)
		parts = append(parts, fmt.Sprintf("LIMIT $%d", len(args)))
	}
	if opt.Offset > 0 {
		args = append(args, opt.Offset)
		parts = append(parts, fmt.Sprintf("OFFSET $%d", len(args)))
	}
	return strings.Join(parts, " "), args
}
