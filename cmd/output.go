package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
)

// runReport is the JSON document written by `run --output json`.
type runReport struct {
	*sim.Result
	Summary sim.Summary         `json:"summary"`
	Trace   *trace.TraceSummary `json:"trace,omitempty"`
}

// writeRun prints one policy result in the requested format.
func writeRun(w io.Writer, format string, procs []sim.Process, res *sim.Result) error {
	summary := sim.Summarize(res)
	switch format {
	case "json":
		report := runReport{Result: res, Summary: summary}
		if res.Trace != nil {
			report.Trace = trace.Summarize(res.Trace)
		}
		return writeJSON(w, report)
	case "table":
		outputTitle(w, fmt.Sprintf("%s schedule", res.Policy))
		outputGantt(w, res.Gantt)
		outputMetrics(w, procs, res.Metrics, summary)
		if res.Trace != nil {
			outputTrace(w, trace.Summarize(res.Trace))
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q; valid: table, json", format)
	}
}

// writeComparison prints the summaries of several policy results side by side.
func writeComparison(w io.Writer, format string, results []*sim.Result) error {
	summaries := make([]sim.Summary, len(results))
	for i, res := range results {
		summaries[i] = sim.Summarize(res)
	}
	switch format {
	case "json":
		return writeJSON(w, summaries)
	case "table":
		outputTitle(w, "Policy comparison")
		rows := make([][]string, 0, len(summaries))
		for _, s := range summaries {
			rows = append(rows, []string{
				string(s.Policy),
				fmt.Sprintf("%.2f", s.AverageWaiting),
				fmt.Sprintf("%.2f", s.AverageTurnaround),
				fmt.Sprintf("%.2f", s.AverageResponse),
				strconv.FormatInt(s.MaxWaiting, 10),
				fmt.Sprintf("%.1f%%", 100*s.Utilization),
				fmt.Sprintf("%.3f/t", s.Throughput),
				strconv.Itoa(s.ContextSwitches),
				strconv.FormatInt(s.Makespan, 10),
			})
		}
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Policy", "Avg Wait", "Avg Turnaround", "Avg Response", "Max Wait", "CPU", "Throughput", "Switches", "Makespan"})
		table.AppendBulk(rows)
		table.Render()
		return nil
	default:
		return fmt.Errorf("unknown output format %q; valid: table, json", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// outputGantt draws one cell per segment followed by the boundary times.
func outputGantt(w io.Writer, gantt []sim.GanttSegment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, g := range gantt {
		padding := strings.Repeat(" ", max(0, (8-len(g.Owner))/2))
		_, _ = fmt.Fprint(w, padding, g.Owner, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, g := range gantt {
		_, _ = fmt.Fprint(w, g.Start, "\t")
		if i == len(gantt)-1 {
			_, _ = fmt.Fprint(w, g.End)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

// outputMetrics prints the per-process table in input order with averages in the footer.
func outputMetrics(w io.Writer, procs []sim.Process, metrics []sim.Metric, s sim.Summary) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, 0, len(metrics))
	for i, m := range metrics {
		p := procs[i]
		rows = append(rows, []string{
			m.ID,
			strconv.FormatInt(p.Arrival, 10),
			strconv.FormatInt(p.Burst, 10),
			strconv.FormatInt(m.Waiting, 10),
			strconv.FormatInt(m.Turnaround, 10),
			strconv.FormatInt(m.Response, 10),
			strconv.FormatInt(p.Arrival+m.Turnaround, 10),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Wait", "Turnaround", "Response", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Average\n%.2f", s.AverageWaiting),
		fmt.Sprintf("Average\n%.2f", s.AverageTurnaround),
		fmt.Sprintf("Average\n%.2f", s.AverageResponse),
		fmt.Sprintf("Throughput\n%.2f/t", s.Throughput)})
	table.Render()
	_, _ = fmt.Fprintf(w, "CPU utilization: %.1f%% (idle %d of %d ticks), context switches: %d\n",
		100*s.Utilization, s.IdleTime, s.Makespan, s.ContextSwitches)
}

func outputTrace(w io.Writer, ts *trace.TraceSummary) {
	_, _ = fmt.Fprintf(w, "\nDecision trace: %d dispatches over %d processes, %d demotions, %d promotions\n",
		ts.TotalDispatches, ts.UniqueProcesses, ts.Demotions, ts.Promotions)
}
