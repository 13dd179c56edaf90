package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jar0582/procsched/scheduler"
)

func sample() []scheduler.Process {
	return []scheduler.Process{
		{ProcessID: 1, ArrivalTime: 0, BurstDuration: 5, Priority: 2},
		{ProcessID: 2, ArrivalTime: 1, BurstDuration: 3, Priority: 1},
		{ProcessID: 3, ArrivalTime: 2, BurstDuration: 8, Priority: 3},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(scheduler.FCFS(sample()))

	assert.Equal(t, 3, s.Count)
	assert.Equal(t, int64(10), s.TotalWait)
	assert.Equal(t, int64(26), s.TotalTurnaround)
	assert.InDelta(t, 10.0/3, s.AverageWait, 1e-9)
	assert.InDelta(t, 26.0/3, s.AverageTurnaround, 1e-9)
	assert.Equal(t, int64(16), s.Makespan)
	assert.Equal(t, int64(0), s.IdleTime)
	assert.InDelta(t, 3.0/16, s.Throughput, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestSummarizeZeroMakespan(t *testing.T) {
	s := Summarize(scheduler.SJF([]scheduler.Process{{ProcessID: 1}}))
	assert.Equal(t, 1, s.Count)
	assert.Zero(t, s.Throughput)
	assert.Zero(t, s.AverageTurnaround)
}

func TestGantt(t *testing.T) {
	schedule := scheduler.SJF([]scheduler.Process{
		{ProcessID: 1, ArrivalTime: 2, BurstDuration: 3},
		{ProcessID: 2, ArrivalTime: 9, BurstDuration: 1},
		{ProcessID: 3, ArrivalTime: 9, BurstDuration: 0},
	})

	assert.Equal(t, []TimeSlice{
		{Start: 0, Stop: 2, Idle: true},
		{PID: 1, Start: 2, Stop: 5},
		{Start: 5, Stop: 9, Idle: true},
		{PID: 3, Start: 9, Stop: 9},
		{PID: 2, Start: 9, Stop: 10},
	}, Gantt(schedule))

	assert.Equal(t, int64(6), Summarize(schedule).IdleTime)
}

func TestOutputGantt(t *testing.T) {
	var buf bytes.Buffer
	outputGantt(&buf, []TimeSlice{
		{PID: 1, Start: 0, Stop: 5},
		{Start: 5, Stop: 7, Idle: true},
		{PID: 12, Start: 7, Stop: 9},
	})

	assert.Equal(t, "Gantt schedule\n|   1   |  idle  |   12   |\n0\t5\t7\t9\n\n", buf.String())
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "Shortest-job-first", scheduler.SJF(sample())))

	out := buf.String()
	assert.Contains(t, out, "Shortest-job-first")
	assert.Contains(t, out, "|   1   |   2   |   3   |\n0\t5\t8\t16\n")
	assert.Contains(t, out, "Schedule table")
	assert.Contains(t, out, "TURNAROUND")
	assert.Contains(t, out, "3.33")
	assert.Contains(t, out, "8.67")
	assert.Contains(t, out, "0.19")
	assert.Contains(t, out, "Idle time: 0")
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "First-come, first-serve", nil))

	assert.Contains(t, buf.String(), "First-come, first-serve")
	assert.Contains(t, buf.String(), "no processes")
	assert.NotContains(t, buf.String(), "Schedule table")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderWriteError(t *testing.T) {
	err := Render(failingWriter{}, "FCFS", scheduler.FCFS(sample()))
	assert.EqualError(t, err, "disk full")
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	rec.Record("fcfs", scheduler.FCFS(sample()))
	rec.Record("fcfs", scheduler.FCFS(sample()))
	rec.Record("sjf", scheduler.SJF(nil))

	r := rec.Registry()
	assert.Equal(t, int64(6), r.Get("fcfs.processes").(interface{ Count() int64 }).Count())
	assert.Equal(t, int64(0), r.Get("sjf.processes").(interface{ Count() int64 }).Count())

	wait := r.Get("fcfs.waiting").(interface {
		Count() int64
		Max() int64
	})
	assert.Equal(t, int64(6), wait.Count())
	assert.Equal(t, int64(6), wait.Max())
	assert.Equal(t, int64(16), r.Get("fcfs.makespan").(interface{ Value() int64 }).Value())

	var buf bytes.Buffer
	rec.Dump(&buf)
	assert.Contains(t, buf.String(), "fcfs.turnaround")
	assert.Contains(t, buf.String(), "sjf.idle")
}
