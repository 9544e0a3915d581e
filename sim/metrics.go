// Derives per-process metrics from a completed run and aggregates them into
// schedule-level summary statistics.

package sim

import "fmt"

// Metric holds the performance metrics of one process in one run.
//   - Turnaround = finish - arrival
//   - Waiting    = turnaround - burst
//   - Response   = first start - arrival
type Metric struct {
	ID         string `json:"id"`
	Waiting    int64  `json:"waiting"`
	Turnaround int64  `json:"turnaround"`
	Response   int64  `json:"response"`
}

// deriveMetrics converts the recorded start/finish times into metrics,
// one per process in input order.
func deriveMetrics(procs []Process, states []procState) []Metric {
	metrics := make([]Metric, len(procs))
	for i, p := range procs {
		st := states[i]
		if st.finish < 0 || st.start < 0 {
			panic(fmt.Sprintf("deriveMetrics: process %s never finished", p.ID))
		}
		turnaround := st.finish - p.Arrival
		metrics[i] = Metric{
			ID:         p.ID,
			Waiting:    turnaround - p.Burst,
			Turnaround: turnaround,
			Response:   st.start - p.Arrival,
		}
	}
	return metrics
}

// Summary aggregates a Result into schedule-level statistics.
type Summary struct {
	Policy            Policy  `json:"policy"`
	Processes         int     `json:"processes"`
	Makespan          int64   `json:"makespan"`
	BusyTime          int64   `json:"busy_time"`
	IdleTime          int64   `json:"idle_time"`
	AverageWaiting    float64 `json:"average_waiting"`
	AverageTurnaround float64 `json:"average_turnaround"`
	AverageResponse   float64 `json:"average_response"`
	MaxWaiting        int64   `json:"max_waiting"`
	Utilization       float64 `json:"cpu_utilization"`
	Throughput        float64 `json:"throughput"`
	ContextSwitches   int     `json:"context_switches"`
}

// Summarize computes averages, utilization and throughput for a Result.
func Summarize(res *Result) Summary {
	s := Summary{Policy: res.Policy, Processes: len(res.Metrics)}

	waits := make([]int64, len(res.Metrics))
	turns := make([]int64, len(res.Metrics))
	resps := make([]int64, len(res.Metrics))
	for i, m := range res.Metrics {
		waits[i], turns[i], resps[i] = m.Waiting, m.Turnaround, m.Response
		s.MaxWaiting = max(s.MaxWaiting, m.Waiting)
	}
	s.AverageWaiting = CalculateMean(waits)
	s.AverageTurnaround = CalculateMean(turns)
	s.AverageResponse = CalculateMean(resps)

	for i, g := range res.Gantt {
		if g.IsIdle() {
			s.IdleTime += g.Duration()
		} else {
			s.BusyTime += g.Duration()
			if i > 0 && !res.Gantt[i-1].IsIdle() {
				s.ContextSwitches++
			}
		}
	}
	s.Makespan = res.Makespan()
	if s.Makespan > 0 {
		s.Utilization = float64(s.BusyTime) / float64(s.Makespan)
		s.Throughput = float64(s.Processes) / float64(s.Makespan)
	}
	return s
}
