package report

import (
	"io"

	"github.com/rcrowley/go-metrics"

	"github.com/jar0582/procsched/scheduler"
)

const sampleSize = 1028

// Recorder collects per-policy timing distributions across schedules.
type Recorder struct {
	registry metrics.Registry
}

func NewRecorder() *Recorder {
	return &Recorder{registry: metrics.NewRegistry()}
}

// Registry exposes the underlying metrics registry.
func (r *Recorder) Registry() metrics.Registry { return r.registry }

// Record adds a completed schedule under the given policy name.
func (r *Recorder) Record(policy string, processes []scheduler.Process) {
	wait := metrics.GetOrRegisterHistogram(policy+".waiting", r.registry, metrics.NewUniformSample(sampleSize))
	turnaround := metrics.GetOrRegisterHistogram(policy+".turnaround", r.registry, metrics.NewUniformSample(sampleSize))
	for _, p := range processes {
		wait.Update(p.WaitingTime)
		turnaround.Update(p.TurnaroundTime)
	}

	metrics.GetOrRegisterCounter(policy+".processes", r.registry).Inc(int64(len(processes)))

	s := Summarize(processes)
	metrics.GetOrRegisterGauge(policy+".makespan", r.registry).Update(s.Makespan)
	metrics.GetOrRegisterGauge(policy+".idle", r.registry).Update(s.IdleTime)
}

// Dump writes a snapshot of every metric to w.
func (r *Recorder) Dump(w io.Writer) {
	metrics.WriteOnce(r.registry, w)
}
