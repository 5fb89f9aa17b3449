// Copyright © 2022 The Gomon Project.

package process

import (
	"strconv"
)

type (
	// Pid is the type for the process identifier.
	Pid int

	// Record is the snapshot of one process: its identity, its parent, and its command name.
	Record struct {
		Pid  Pid    `json:"pid"`
		Ppid Pid    `json:"ppid"`
		Name string `json:"name"`
	}

	// Source defines the operations a process information source provides.
	Source interface {
		// Pids lists the identifiers of the live processes.
		Pids() ([]Pid, error)
		// Status reads the status record of a process.
		Status(Pid) (Record, error)
	}
)

// String renders the pid.
func (pid Pid) String() string {
	return strconv.Itoa(int(pid))
}
