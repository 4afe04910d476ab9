// Package report formats batch-run results for human and spreadsheet
// consumption; it holds no algorithmic logic of its own.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"faultmesh/internal/algorithm/define"
)

// Row pairs a named instance with the ResultRecord one algorithm run
// against it produced.
type Row struct {
	InstanceName string
	Result       *define.ResultRecord
}

var csvHeader = []string{
	"instance", "algorithm", "exec_cost", "mig_cost", "target_opt",
	"survival_rate", "elapsed_millis", "capacity_std", "task_size_std",
	"mean_capacity", "mean_task_size", "unreachable_count",
}

func (r Row) csvRecord() []string {
	res := r.Result
	return []string{
		r.InstanceName,
		res.Algorithm,
		strconv.FormatFloat(res.ExecCost, 'f', 4, 64),
		strconv.FormatFloat(res.MigCost, 'f', 4, 64),
		strconv.FormatFloat(res.TargetOpt, 'f', 4, 64),
		strconv.FormatFloat(res.SurvivalRate, 'f', 4, 64),
		strconv.FormatInt(res.ElapsedMillis, 10),
		strconv.FormatFloat(res.CapacityStd, 'f', 4, 64),
		strconv.FormatFloat(res.TaskSizeStd, 'f', 4, 64),
		strconv.FormatFloat(res.MeanCapacity, 'f', 4, 64),
		strconv.FormatFloat(res.MeanTaskSize, 'f', 4, 64),
		strconv.Itoa(res.UnreachableCount),
	}
}

// WriteCSV writes one row per (instance, algorithm) run.
func WriteCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row.csvRecord()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Summary is one algorithm's figures averaged across every instance it
// ran against, the "per-algorithm summary sheet" side of the report.
type Summary struct {
	Algorithm        string
	Runs             int
	ExecCost         float64
	MigCost          float64
	TargetOpt        float64
	SurvivalRate     float64
	UnreachableCount float64
}

// Summarize averages each numeric field across every row sharing an
// algorithm name, in first-seen algorithm order.
func Summarize(rows []Row) []Summary {
	order := make([]string, 0, 4)
	byAlg := make(map[string]*Summary)

	for _, row := range rows {
		res := row.Result
		s, ok := byAlg[res.Algorithm]
		if !ok {
			s = &Summary{Algorithm: res.Algorithm}
			byAlg[res.Algorithm] = s
			order = append(order, res.Algorithm)
		}
		s.Runs++
		s.ExecCost += res.ExecCost
		s.MigCost += res.MigCost
		s.TargetOpt += res.TargetOpt
		s.SurvivalRate += res.SurvivalRate
		s.UnreachableCount += float64(res.UnreachableCount)
	}

	summaries := make([]Summary, 0, len(order))
	for _, alg := range order {
		s := *byAlg[alg]
		n := float64(s.Runs)
		s.ExecCost /= n
		s.MigCost /= n
		s.TargetOpt /= n
		s.SurvivalRate /= n
		s.UnreachableCount /= n
		summaries = append(summaries, s)
	}
	return summaries
}

// WriteMarkdown writes the per-run table followed by the per-algorithm
// summary table.
func WriteMarkdown(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintln(f, "# Batch run report")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "## Per-run results")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "| Instance | Algorithm | ExecCost | MigCost | TargetOpt | SurvivalRate | ElapsedMs | Unreachable |")
	fmt.Fprintln(f, "|---|---|---|---|---|---|---|---|")
	for _, row := range rows {
		res := row.Result
		fmt.Fprintf(f, "| %s | %s | %.4f | %.4f | %.4f | %.4f | %d | %d |\n",
			row.InstanceName, res.Algorithm, res.ExecCost, res.MigCost,
			res.TargetOpt, res.SurvivalRate, res.ElapsedMillis, res.UnreachableCount)
	}

	fmt.Fprintln(f)
	fmt.Fprintln(f, "## Per-algorithm summary")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "| Algorithm | Runs | Mean ExecCost | Mean MigCost | Mean TargetOpt | Mean SurvivalRate | Mean Unreachable |")
	fmt.Fprintln(f, "|---|---|---|---|---|---|---|")
	for _, s := range Summarize(rows) {
		fmt.Fprintf(f, "| %s | %d | %.4f | %.4f | %.4f | %.4f | %.2f |\n",
			s.Algorithm, s.Runs, s.ExecCost, s.MigCost, s.TargetOpt, s.SurvivalRate, s.UnreachableCount)
	}

	return nil
}

// WriteSummaryCSV writes the per-algorithm summary sheet as its own CSV.
func WriteSummaryCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"algorithm", "runs", "mean_exec_cost", "mean_mig_cost", "mean_target_opt", "mean_survival_rate", "mean_unreachable_count"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, s := range Summarize(rows) {
		record := []string{
			s.Algorithm,
			strconv.Itoa(s.Runs),
			strconv.FormatFloat(s.ExecCost, 'f', 4, 64),
			strconv.FormatFloat(s.MigCost, 'f', 4, 64),
			strconv.FormatFloat(s.TargetOpt, 'f', 4, 64),
			strconv.FormatFloat(s.SurvivalRate, 'f', 4, 64),
			strconv.FormatFloat(s.UnreachableCount, 'f', 4, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
