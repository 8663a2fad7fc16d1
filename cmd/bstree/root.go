package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"
)

type options struct {
	orders  []string
	removes []string
	queries []string
	numeric bool
	display bool
	verbose bool
}

// newRootCmd builds the bstree command. Output goes to cmd.OutOrStdout, logs to
// cmd.ErrOrStderr.
func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "bstree [flags] value...",
		Short: "Build a binary search tree from the arguments and print its traversals",
		Long: `bstree inserts every argument into an unbalanced binary search tree in the
given order, answers --query lookups, applies --remove deletions and then prints
the size, the height and one line per requested traversal order.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd.ErrOrStderr(), opts.verbose)
			orders, err := parseOrders(opts.orders)
			if err != nil {
				return err
			}
			if !opts.numeric {
				return run(cmd.OutOrStdout(), log, opts, orders, args, opts.removes, opts.queries)
			}
			vals, err := parseInts(args)
			if err != nil {
				return err
			}
			removes, err := parseInts(opts.removes)
			if err != nil {
				return err
			}
			queries, err := parseInts(opts.queries)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), log, opts, orders, vals, removes, queries)
		},
	}
	f := cmd.Flags()
	f.StringSliceVarP(&opts.orders, "order", "o",
		[]string{Trees.PreOrder.String(), Trees.InOrder.String(), Trees.PostOrder.String(), Trees.LevelOrder.String()},
		"traversal orders to print: PRE_ORDER, IN_ORDER, POST_ORDER or LEVEL_ORDER")
	f.StringSliceVarP(&opts.removes, "remove", "r", nil, "values to remove after building the tree")
	f.StringSliceVarP(&opts.queries, "query", "q", nil, "values to look up after building the tree")
	f.BoolVarP(&opts.numeric, "numeric", "n", false, "treat values as integers instead of strings")
	f.BoolVarP(&opts.display, "display", "d", false, "draw the tree")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log every insertion")
	return cmd
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()
}

func parseOrders(names []string) ([]Trees.Order, error) {
	orders := make([]Trees.Order, 0, len(names))
	for _, n := range names {
		o, ok := Trees.ParseOrder(strings.ToUpper(strings.TrimSpace(n)))
		if !ok {
			return nil, fmt.Errorf("unknown traversal order %q", n)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func parseInts(ss []string) ([]int64, error) {
	vs := make([]int64, len(ss))
	for i, s := range ss {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse value %q: %w", s, err)
		}
		vs[i] = v
	}
	return vs, nil
}

func run[T constraints.Ordered](out io.Writer, log zerolog.Logger, opts *options, orders []Trees.Order, vals, removes, queries []T) error {
	tree := Trees.New[T]()
	for _, v := range vals {
		if tree.Insert(v) {
			log.Debug().Interface("value", v).Msg("inserted")
		} else {
			log.Warn().Interface("value", v).Msg("duplicate ignored")
		}
	}
	log.Info().Uint("size", tree.Size()).Uint("height", tree.Height()).Msg("tree built")

	for _, q := range queries {
		fmt.Fprintf(out, "contains %v: %t\n", q, tree.Has(q))
	}
	for _, r := range removes {
		fmt.Fprintf(out, "remove %v: %t\n", r, tree.Remove(r))
	}
	fmt.Fprintf(out, "size: %d\nheight: %d\n", tree.Size(), tree.Height())
	if opts.display {
		if err := tree.Display(out); err != nil {
			return fmt.Errorf("display tree: %w", err)
		}
	}
	for _, o := range orders {
		var sb strings.Builder
		sb.WriteString(o.String() + ":")
		for v := range tree.Traverse(o) {
			fmt.Fprintf(&sb, " %v", v)
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(out, sb.String()); err != nil {
			return fmt.Errorf("write %v: %w", o, err)
		}
	}
	return nil
}
