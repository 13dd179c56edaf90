package report

import "github.com/jar0582/procsched/scheduler"

// Summary aggregates the timings of one schedule.
type Summary struct {
	Count             int
	TotalWait         int64
	TotalTurnaround   int64
	AverageWait       float64
	AverageTurnaround float64
	Makespan          int64 // completion time of the last process
	IdleTime          int64
	Throughput        float64
}

// Summarize computes averages over a completed schedule. An empty schedule
// yields a zero Summary.
func Summarize(processes []scheduler.Process) Summary {
	s := Summary{Count: len(processes)}
	if s.Count == 0 {
		return s
	}

	var busy int64
	for _, p := range processes {
		s.TotalWait += p.WaitingTime
		s.TotalTurnaround += p.TurnaroundTime
		busy += p.BurstDuration
		if c := p.Completion(); c > s.Makespan {
			s.Makespan = c
		}
	}

	count := float64(s.Count)
	s.AverageWait = float64(s.TotalWait) / count
	s.AverageTurnaround = float64(s.TotalTurnaround) / count
	s.IdleTime = s.Makespan - busy
	if s.Makespan > 0 {
		s.Throughput = count / float64(s.Makespan)
	}

	return s
}
