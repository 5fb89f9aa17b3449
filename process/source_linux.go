// Copyright © 2022 The Gomon Project.

package process

import (
	"github.com/prometheus/procfs"
	"github.com/spf13/afero"
	"github.com/zosmac/gocore"
)

// ProcFS is the Source for a mounted Linux proc filesystem.
type ProcFS struct {
	procfs procfs.FS
	stat   *FS
}

// NewProcFS opens the proc filesystem mounted at mountPoint.
func NewProcFS(mountPoint string) (*ProcFS, error) {
	fs, err := procfs.NewFS(mountPoint)
	if err != nil {
		return nil, gocore.Error("procfs", err)
	}
	return &ProcFS{
		procfs: fs,
		stat:   NewFS(afero.NewOsFs(), mountPoint),
	}, nil
}

// Pids lists the pids of the processes in the proc filesystem.
func (s *ProcFS) Pids() ([]Pid, error) {
	procs, err := s.procfs.AllProcs()
	if err != nil {
		return nil, gocore.Error("AllProcs", err)
	}
	pids := make([]Pid, len(procs))
	for i, p := range procs {
		pids[i] = Pid(p.PID)
	}
	return pids, nil
}

// Status reads /proc/<pid>/stat.
func (s *ProcFS) Status(pid Pid) (Record, error) {
	return s.stat.Status(pid)
}

// Default returns the Source for this platform.
func Default(procfsPath string) (Source, error) {
	return NewProcFS(procfsPath)
}
