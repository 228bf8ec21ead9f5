package cmd

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/pageblade/filter"
	"github.com/s0up4200/pageblade/pageblade"
)

// listFlags holds the flags shared by list commands
type listFlags struct {
	page           int
	pageSize       int
	keyword        string
	orderBy        string
	orderDirection string
	all            bool
	filterExpr     string
}

func (l *listFlags) register(cmd *cobra.Command, orderKeys ...string) {
	cmd.Flags().IntVar(&l.page, "page", 0, "zero-based page index")
	cmd.Flags().IntVar(&l.pageSize, "page-size", 0, "number of rows per page")
	cmd.Flags().StringVar(&l.keyword, "keyword", "", "search keyword")
	cmd.Flags().StringVar(&l.orderBy, "order-by", "", "sort key ("+strings.Join(orderKeys, ", ")+")")
	cmd.Flags().StringVar(&l.orderDirection, "order-direction", "", "sort direction (asc or desc)")
	cmd.Flags().BoolVar(&l.all, "all", false, "fetch every page starting at --page")
	cmd.Flags().StringVarP(&l.filterExpr, "filter", "f", "", "filter expression evaluated against each row")
}

// options converts the flags into list parameters. Pagination values are only
// sent when set on the command line.
func (l *listFlags) options(cmd *cobra.Command) (pageblade.ListOptions, error) {
	var opts pageblade.ListOptions
	if cmd.Flags().Changed("page") {
		if l.page < 0 {
			return opts, fmt.Errorf("--page must not be negative")
		}
		opts.PageIndex = pageblade.Int(l.page)
	}
	if cmd.Flags().Changed("page-size") {
		if l.pageSize < 1 {
			return opts, fmt.Errorf("--page-size must be at least 1")
		}
		opts.PageSize = pageblade.Int(l.pageSize)
	}
	opts.Keyword = l.keyword

	switch strings.ToLower(l.orderDirection) {
	case "":
	case "asc":
		opts.OrderDirection = pageblade.OrderAsc
	case "desc":
		opts.OrderDirection = pageblade.OrderDesc
	default:
		return opts, fmt.Errorf("invalid order direction: %s (must be 'asc' or 'desc')", l.orderDirection)
	}
	return opts, nil
}

// compileFilter returns the compiled --filter expression, or nil without one
func (l *listFlags) compileFilter() (filter.Filter, error) {
	if strings.TrimSpace(l.filterExpr) == "" {
		return nil, nil
	}
	f, err := filter.Compile(l.filterExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f, nil
}

// runList fetches one page, or every page with --all, filters the rows and
// prints the result
func runList[T any](
	cmd *cobra.Command,
	l *listFlags,
	fetchPage func(ctx context.Context) (*pageblade.Page[T], error),
	fetchAll func(ctx context.Context) ([]T, error),
) error {
	f, err := l.compileFilter()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)

	if l.all {
		rows, err := fetchAll(ctx)
		if err != nil {
			return err
		}
		rows, err = filter.Apply(f, rows)
		if err != nil {
			return err
		}
		logger.Debug().Int("rows", len(rows)).Msg("Listed every page")
		if rows == nil {
			rows = []T{}
		}
		return printResult(cmd.OutOrStdout(), rows)
	}

	page, err := fetchPage(ctx)
	if err != nil {
		return err
	}
	page.Rows, err = filter.Apply(f, page.Rows)
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), page)
}

// validateOrderBy checks value against the accepted sort keys
func validateOrderBy(value string, keys ...string) error {
	if value == "" {
		return nil
	}
	if slices.Contains(keys, value) {
		return nil
	}
	return fmt.Errorf("invalid order key: %s (must be one of %s)", value, strings.Join(keys, ", "))
}
