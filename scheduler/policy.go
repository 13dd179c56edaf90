package scheduler

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPolicy = errors.New("unknown scheduling policy")

// Func computes a schedule for a set of processes.
type Func func(processes []Process) []Process

// Policy names a scheduling policy.
type Policy string

const (
	PolicyFCFS Policy = "fcfs"
	PolicySJF  Policy = "sjf"
)

// Policies returns the supported policies in the order they are reported.
func Policies() []Policy {
	return []Policy{PolicyFCFS, PolicySJF}
}

// Title is the heading printed above a policy's chart.
func (p Policy) Title() string {
	switch p {
	case PolicyFCFS:
		return "First-come, first-serve"
	case PolicySJF:
		return "Shortest-job-first"
	}
	return string(p)
}

// ParsePolicy accepts a policy name in any case.
func ParsePolicy(name string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case PolicyFCFS, PolicySJF:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Lookup returns the scheduler for a policy. Options only affect SJF.
func Lookup(p Policy, opts ...Option) (Func, error) {
	switch p {
	case PolicyFCFS:
		return FCFS, nil
	case PolicySJF:
		return func(processes []Process) []Process {
			return SJF(processes, opts...)
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(p))
}
