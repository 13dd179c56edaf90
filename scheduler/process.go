package scheduler

// Process is one process descriptor. The first four fields come from the
// input file; WaitingTime and TurnaroundTime are filled in by a scheduler.
type Process struct {
	ProcessID     int64
	ArrivalTime   int64
	BurstDuration int64
	Priority      int64

	WaitingTime    int64
	TurnaroundTime int64
}

// Start is the time the process was dispatched to the CPU.
func (p Process) Start() int64 { return p.ArrivalTime + p.WaitingTime }

// Completion is the time the process left the CPU.
func (p Process) Completion() int64 { return p.ArrivalTime + p.TurnaroundTime }

// timed returns p with its timing fields set for a dispatch at clock.
func (p Process) timed(clock int64) Process {
	p.WaitingTime = clock - p.ArrivalTime
	p.TurnaroundTime = p.WaitingTime + p.BurstDuration
	return p
}
