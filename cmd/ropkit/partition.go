package main

import (
	"fmt"
	"strconv"

	"github.com/benbjohnson/immutable"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/ropkit/pkg/collections"
	"github.com/ib-77/ropkit/pkg/rop"
	"github.com/ib-77/ropkit/pkg/rop/async"
	"github.com/ib-77/ropkit/pkg/rop/either"
)

var partitionCmd = &cobra.Command{
	Use:   "partition [number...]",
	Short: "Parse arguments as integers and split them into values and errors",
	RunE: func(cmd *cobra.Command, args []string) error {
		futures := make([]*async.Future[rop.RwVE[int, string]], 0, len(args))
		for _, arg := range args {
			futures = append(futures, parse(arg).ToFuture())
		}

		results, err := async.All(cmd.Context(), futures...)
		if err != nil {
			return err
		}

		values, errs := partition(results)
		zap.S().Debugw("partitioned arguments", "values", values.Len(), "errors", errs.Len())

		cmd.Println("values:", values)
		cmd.Println("errors:", errs)
		return nil
	},
}

func parse(arg string) rop.RwVE[int, string] {
	n, err := strconv.Atoi(arg)
	return either.MapError(either.FromPair(n, err), func(err error) string {
		return fmt.Sprintf("%q is not a number", arg)
	})
}

func partition(results []rop.RwVE[int, string]) (collections.ValueList[int], collections.ValueList[string]) {
	values := immutable.NewList[int]()
	errs := immutable.NewList[string]()
	for _, r := range results {
		values = collections.TryAddSuccess(values, r)
		errs = collections.TryAddError(errs, r)
	}
	return collections.ToValueList(values), collections.ToValueList(errs)
}
