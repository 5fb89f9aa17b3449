// Copyright © 2022 The Gomon Project.

package process

import (
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"
)

// FS is a Source that reads a procfs style directory tree: one directory per
// process, named by pid, each holding a stat file.
type FS struct {
	fs   afero.Fs
	root string
}

// NewFS returns a Source reading the process directories under root in fs.
func NewFS(fs afero.Fs, root string) *FS {
	return &FS{fs: fs, root: root}
}

// Pids lists the numerically named directories under the root.
func (s *FS) Pids() ([]Pid, error) {
	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		return nil, err
	}

	pids := make([]Pid, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(entry.Name())
		if err != nil || pid <= 0 {
			continue // not a process directory
		}
		pids = append(pids, Pid(pid))
	}
	return pids, nil
}

// Status reads and parses the stat file of a process.
func (s *FS) Status(pid Pid) (Record, error) {
	data, err := afero.ReadFile(s.fs, filepath.Join(s.root, pid.String(), "stat"))
	if err != nil {
		return Record{}, err
	}
	return ParseStat(data)
}
