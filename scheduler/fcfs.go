package scheduler

import "golang.org/x/exp/slices"

// FCFS schedules processes first-come, first-serve. The result is ordered by
// arrival time; processes arriving together keep their input order. The
// input slice is not modified.
func FCFS(processes []Process) []Process {
	out := make([]Process, len(processes))
	copy(out, processes)
	slices.SortStableFunc(out, byArrival)

	var clock int64
	for i := range out {
		/* CPU sits idle until the next arrival */
		if clock < out[i].ArrivalTime {
			clock = out[i].ArrivalTime
		}
		out[i] = out[i].timed(clock)
		clock += out[i].BurstDuration
	}

	return out
}

func byArrival(a, b Process) int {
	switch {
	case a.ArrivalTime < b.ArrivalTime:
		return -1
	case a.ArrivalTime > b.ArrivalTime:
		return 1
	}
	return 0
}
