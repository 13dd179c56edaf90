// Package report prints completed schedules as a Gantt chart and a timing table.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/jar0582/procsched/scheduler"
)

// TimeSlice is one interval of CPU time. Idle slices have no PID.
type TimeSlice struct {
	PID   int64
	Start int64
	Stop  int64
	Idle  bool
}

// Gantt turns a schedule in execution order into CPU time slices, filling
// gaps between processes with idle slices.
func Gantt(processes []scheduler.Process) []TimeSlice {
	var (
		clock int64
		gantt = make([]TimeSlice, 0, len(processes))
	)
	for _, p := range processes {
		start := p.Start()
		if start > clock {
			gantt = append(gantt, TimeSlice{Start: clock, Stop: start, Idle: true})
		}
		gantt = append(gantt, TimeSlice{
			PID:   p.ProcessID,
			Start: start,
			Stop:  p.Completion(),
		})
		clock = p.Completion()
	}
	return gantt
}

// Render writes the title, Gantt chart and schedule table for a schedule
// in execution order.
func Render(w io.Writer, title string, processes []scheduler.Process) error {
	bw := bufio.NewWriter(w)

	outputTitle(bw, title)
	if len(processes) == 0 {
		_, _ = fmt.Fprintf(bw, "no processes\n\n")
		return bw.Flush()
	}
	outputGantt(bw, Gantt(processes))
	outputSchedule(bw, processes, Summarize(processes))

	return bw.Flush()
}

//region Output helpers

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		label := "idle"
		if !gantt[i].Idle {
			label = fmt.Sprint(gantt[i].PID)
		}
		padding := strings.Repeat(" ", (8-len(label))/2)
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, processes []scheduler.Process, s Summary) {
	rows := make([][]string, len(processes))
	for i, p := range processes {
		rows[i] = []string{
			fmt.Sprint(p.ProcessID),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstDuration),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.Completion()),
		}
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", s.AverageWait),
		fmt.Sprintf("Average\n%.2f", s.AverageTurnaround),
		fmt.Sprintf("Throughput\n%.2f/t", s.Throughput)})
	table.Render()
	_, _ = fmt.Fprintf(w, "Idle time: %d\n\n", s.IdleTime)
}

//endregion
