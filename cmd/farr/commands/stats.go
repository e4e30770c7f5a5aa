package commands

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/farr/config"
	"github.com/teranos/farr/farr"
	"github.com/teranos/farr/logger"
)

// columnStats summarises one column of a loaded table. Positions are
// one-based, matching the array convention.
type columnStats struct {
	Label string  `json:"label"`
	Count int     `json:"count"`
	Min   float64 `json:"min"`
	MinAt int64   `json:"min_at"`
	Max   float64 `json:"max"`
	MaxAt int64   `json:"max_at"`
	Mean  float64 `json:"mean"`
	Norm  float64 `json:"norm"`
}

// StatsCmd summarises the columns of a numeric table.
var StatsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Summarise the columns of a numeric table",
	Long: `Load a numeric table and print per-column statistics.

By default the file is parsed as a whitespace-separated table; lines
starting with '#' are comments. With --csv the file is parsed as CSV with
a header row and columns are labelled by their headers.

Element positions in the output (min/max locations) are one-based.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		csvInput, _ := cmd.Flags().GetBool("csv")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.Stats.Format == "json" {
			jsonOutput = true
		}

		columns, labels, err := loadColumns(args[0], csvInput)
		if err != nil {
			return err
		}

		stats := make([]columnStats, 0, len(labels))
		for _, label := range labels {
			cs, err := summarise(label, columns[label])
			if err != nil {
				return err
			}
			stats = append(stats, cs)
		}
		logger.Debugf("stats %s: %d columns", args[0], len(stats))

		if jsonOutput {
			output, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(output))
			return nil
		}
		return renderTable(stats, cfg.Stats.Precision)
	},
}

func init() {
	StatsCmd.Flags().Bool("csv", false, "Parse the input as CSV with a header row")
	StatsCmd.Flags().BoolP("json", "j", false, "Output statistics as JSON")
}

// loadColumns reads the file into one rank-1 array per column and returns
// the columns with their labels in display order.
func loadColumns(path string, csvInput bool) (map[string]*farr.FArray, []string, error) {
	if csvInput {
		columns, err := farr.LoadCSV(path)
		if err != nil {
			return nil, nil, err
		}
		labels := make([]string, 0, len(columns))
		for label := range columns {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		return columns, labels, nil
	}

	table, err := farr.LoadTxt(path)
	if err != nil {
		return nil, nil, err
	}
	cols, err := table.Cols()
	if err != nil {
		return nil, nil, err
	}
	columns := make(map[string]*farr.FArray, len(cols))
	labels := make([]string, len(cols))
	for k, col := range cols {
		label := fmt.Sprintf("col %d", k+1)
		labels[k] = label
		columns[label] = col
	}
	return columns, labels, nil
}

func summarise(label string, col *farr.FArray) (columnStats, error) {
	cs := columnStats{Label: label, Count: col.Size()}

	minAt, err := col.ArgMin(farr.NoAxis)
	if err != nil {
		return cs, err
	}
	if cs.MinAt, err = minAt.IntItem(); err != nil {
		return cs, err
	}
	if cs.Min, err = col.At(int(cs.MinAt)); err != nil {
		return cs, err
	}

	maxAt, err := col.ArgMax(farr.NoAxis)
	if err != nil {
		return cs, err
	}
	if cs.MaxAt, err = maxAt.IntItem(); err != nil {
		return cs, err
	}
	if cs.Max, err = col.At(int(cs.MaxAt)); err != nil {
		return cs, err
	}

	mean, err := col.Mean(farr.NoAxis)
	if err != nil {
		return cs, err
	}
	if cs.Mean, err = mean.Item(); err != nil {
		return cs, err
	}

	norm, err := col.Norm()
	if err != nil {
		return cs, err
	}
	if cs.Norm, err = norm.Item(); err != nil {
		return cs, err
	}
	return cs, nil
}

func renderTable(stats []columnStats, precision int) error {
	fv := func(v float64) string {
		return strconv.FormatFloat(v, 'g', precision, 64)
	}

	data := pterm.TableData{
		{"Column", "N", "Min", "At", "Max", "At", "Mean", "Norm"},
	}
	for _, cs := range stats {
		data = append(data, []string{
			cs.Label,
			strconv.Itoa(cs.Count),
			fv(cs.Min),
			strconv.FormatInt(cs.MinAt, 10),
			fv(cs.Max),
			strconv.FormatInt(cs.MaxAt, 10),
			fv(cs.Mean),
			fv(cs.Norm),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
