// Package main provides metricctl, an offline tool for evaluating metric
// mappings against exported posts.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"analytics-srv/internal/aggregation"
	"analytics-srv/internal/model"
	"analytics-srv/pkg/log"
)

var version = "0.1.0"

const dateLayout = "2006-01-02"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// clockFlags are shared by commands that resolve ranges against "now".
type clockFlags struct {
	now      string
	timezone string
}

func (f *clockFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.now, "now", "", "Reference instant in RFC3339 (default: current time)")
	cmd.Flags().StringVar(&f.timezone, "tz", "UTC", "IANA timezone ranges are resolved in")
}

func (f *clockFlags) resolve() (time.Time, error) {
	loc, err := time.LoadLocation(f.timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", f.timezone, err)
	}
	if f.now == "" {
		return time.Now().In(loc), nil
	}
	t, err := time.Parse(time.RFC3339, f.now)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: must be RFC3339", f.now)
	}
	return t.In(loc), nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "metricctl",
		Short:        "Evaluate metric mappings offline",
		Long:         "metricctl resolves time ranges, validates custom formulas and evaluates metric mappings over JSON exports of posts.",
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.SetVersionTemplate("metricctl version {{.Version}}\n")

	rootCmd.AddCommand(newEvaluateCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newCheckFormulaCmd())

	return rootCmd
}

// newEvaluateCmd creates the evaluate subcommand.
func newEvaluateCmd() *cobra.Command {
	var (
		mappingPath  string
		postsPath    string
		timeRange    string
		start, end   string
		compare      string
		compareStart string
		compareEnd   string
		clock        clockFlags
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a metric mapping over a posts export",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := clock.resolve()
			if err != nil {
				return err
			}

			var mapping model.MetricMapping
			if err := readJSON(mappingPath, &mapping); err != nil {
				return fmt.Errorf("read mapping: %w", err)
			}
			var posts []model.Post
			if err := readJSON(postsPath, &posts); err != nil {
				return fmt.Errorf("read posts: %w", err)
			}

			custom, err := model.ParseDateRange(start, end)
			if err != nil {
				return fmt.Errorf("invalid --start/--end: %w", err)
			}

			l := log.Init(log.ZapConfig{
				Level:    "warn",
				Mode:     log.ModeDevelopment,
				Encoding: log.EncodingConsole,
				Output:   cmd.ErrOrStderr(),
			})
			engine := aggregation.New(l, nil)
			in := aggregation.Input{
				Mapping:     mapping,
				Posts:       posts,
				TimeRange:   model.TimeRange(timeRange),
				CustomRange: custom,
				Now:         now,
			}

			out := cmd.OutOrStdout()
			if compare == "" {
				res := engine.Evaluate(context.Background(), in)
				printResult(out, "value", res)
				return nil
			}

			compareCustom, err := model.ParseDateRange(compareStart, compareEnd)
			if err != nil {
				return fmt.Errorf("invalid --compare-start/--compare-end: %w", err)
			}
			cmp := engine.Compare(context.Background(), in, model.TimeRange(compare), compareCustom)
			printResult(out, "value", cmp.Current)
			printResult(out, "comparison", cmp.Previous)
			if cmp.ChangeAvailable {
				fmt.Fprintf(out, "change: %s%%\n", formatFloat(cmp.PercentChange))
			} else {
				fmt.Fprintln(out, "change: n/a")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mappingPath, "mapping", "m", "", "Path to a metric mapping JSON file")
	cmd.Flags().StringVarP(&postsPath, "posts", "p", "", "Path to a JSON array of posts")
	cmd.Flags().StringVarP(&timeRange, "range", "r", string(model.TimeRangeThisMonth), "Time range token")
	cmd.Flags().StringVar(&start, "start", "", "Custom range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Custom range end (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&compare, "compare", "c", "", "Comparison time range token")
	cmd.Flags().StringVar(&compareStart, "compare-start", "", "Custom comparison start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&compareEnd, "compare-end", "", "Custom comparison end (YYYY-MM-DD)")
	clock.register(cmd)
	_ = cmd.MarkFlagRequired("mapping")
	_ = cmd.MarkFlagRequired("posts")

	return cmd
}

// newResolveCmd creates the resolve subcommand.
func newResolveCmd() *cobra.Command {
	var (
		timeRange  string
		start, end string
		clock      clockFlags
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the interval a time range resolves to",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := clock.resolve()
			if err != nil {
				return err
			}
			custom, err := model.ParseDateRange(start, end)
			if err != nil {
				return fmt.Errorf("invalid --start/--end: %w", err)
			}

			iv := aggregation.ResolveTimeRange(model.TimeRange(timeRange), custom, now)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s .. %s\n", iv.Start.Format(dateLayout), iv.End.Format(dateLayout))
			if iv.Fallback {
				fmt.Fprintf(out, "note: %q resolved as %s\n", timeRange, aggregation.DefaultTimeRange)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&timeRange, "range", "r", string(model.TimeRangeThisMonth), "Time range token")
	cmd.Flags().StringVar(&start, "start", "", "Custom range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Custom range end (YYYY-MM-DD)")
	clock.register(cmd)

	return cmd
}

// newCheckFormulaCmd creates the check-formula subcommand.
func newCheckFormulaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-formula <expression>",
		Short: "Validate a custom formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := aggregation.CheckFormula(args[0]); err != nil {
				return fmt.Errorf("invalid formula: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func printResult(w io.Writer, label string, res aggregation.Result) {
	fmt.Fprintf(w, "%s: %s (%s .. %s)\n", label, formatFloat(res.Value),
		res.Interval.Start.Format(dateLayout), res.Interval.End.Format(dateLayout))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
