package scheduler

import (
	"container/heap"

	"golang.org/x/exp/slices"
)

type options struct {
	idleStep bool
}

// Option tunes SJF.
type Option func(*options)

// WithIdleStep makes an idle CPU advance the clock one time unit at a time
// instead of jumping straight to the next arrival. The schedule produced is
// the same either way.
func WithIdleStep() Option {
	return func(o *options) { o.idleStep = true }
}

// SJF schedules processes shortest-job-first without preemption. Whenever
// the CPU is free it runs the ready process with the smallest burst,
// preferring the earlier arrival and then the earlier input position on
// ties. The result is in execution order. The input slice is not modified.
func SJF(processes []Process, opts ...Option) []Process {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	/* admission list: every process in arrival order, remembering where it sat in the input */
	pending := make([]*readyItem, len(processes))
	for i := range processes {
		pending[i] = &readyItem{process: processes[i], position: i}
	}
	slices.SortStableFunc(pending, func(a, b *readyItem) int {
		return byArrival(a.process, b.process)
	})

	var (
		clock int64
		next  int
		ready = make(readyQueue, 0, len(processes))
		out   = make([]Process, 0, len(processes))
	)
	heap.Init(&ready)

	for len(out) < len(processes) {
		/* admit everything that has arrived by now */
		for next < len(pending) && pending[next].process.ArrivalTime <= clock {
			heap.Push(&ready, pending[next])
			next++
		}

		if ready.Len() == 0 {
			// nothing ready means pending[next] exists and arrives in the future
			if o.idleStep {
				clock++
			} else {
				clock = pending[next].process.ArrivalTime
			}
			continue
		}

		p := heap.Pop(&ready).(*readyItem).process
		if clock < p.ArrivalTime {
			clock = p.ArrivalTime
		}
		p = p.timed(clock)
		clock += p.BurstDuration
		out = append(out, p)
	}

	return out
}
