// Copyright © 2022 The Gomon Project.

package process

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/kubescape/go-logger"
	"github.com/kubescape/go-logger/helpers"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/multierr"
)

// Outcome classifies the attempt to read one process.
type Outcome int

const (
	// OK means the record was read and kept.
	OK Outcome = iota
	// Unreadable means the status could not be read or parsed.
	Unreadable
	// Inconsistent means the status named a different pid than the one read.
	Inconsistent
)

func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case Unreadable:
		return "unreadable"
	case Inconsistent:
		return "inconsistent"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

type (
	// Result reports the attempt to read one process.
	Result struct {
		Pid     Pid
		Record  Record
		Outcome Outcome
		Err     error
	}

	// Snapshot is the set of processes gathered in one collection pass.
	Snapshot struct {
		// Records holds the processes that read cleanly, in listing order.
		Records []Record
		// Results holds every attempt, in listing order.
		Results []Result
	}
)

// Empty reports whether the snapshot holds no usable records.
func (s *Snapshot) Empty() bool {
	return len(s.Records) == 0
}

// Skipped returns the attempts whose records were discarded.
func (s *Snapshot) Skipped() []Result {
	var skipped []Result
	for _, r := range s.Results {
		if r.Outcome != OK {
			skipped = append(skipped, r)
		}
	}
	return skipped
}

// Count returns the number of attempts with outcome o.
func (s *Snapshot) Count(o Outcome) int {
	n := 0
	for _, r := range s.Results {
		if r.Outcome == o {
			n++
		}
	}
	return n
}

// Err combines the reasons for every skipped process, or returns nil.
func (s *Snapshot) Err() error {
	var errs error
	for _, r := range s.Skipped() {
		errs = multierr.Append(errs, r.Err)
	}
	return errs
}

// Collect lists the processes of src and reads each one's status on a pool of
// workers. A process that cannot be read is recorded in the snapshot's results
// and left out of its records. Only a failure to list the processes fails the
// collection.
func Collect(ctx context.Context, src Source, workers int) (*Snapshot, error) {
	pids, err := src.Pids()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	pids = uniquePids(pids)

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	results := make([]Result, len(pids))
	var wg sync.WaitGroup
	for i, pid := range pids {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			results[i] = read(src, pid)
		}); err != nil {
			wg.Done()
			results[i] = read(src, pid)
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Records: make([]Record, 0, len(results)),
		Results: results,
	}
	for _, r := range results {
		if r.Outcome != OK {
			logger.L().Debug("process skipped",
				helpers.Int("pid", int(r.Pid)),
				helpers.String("outcome", r.Outcome.String()),
				helpers.Error(r.Err))
			continue
		}
		snapshot.Records = append(snapshot.Records, r.Record)
	}

	return snapshot, nil
}

// read reads the status of one process and classifies the outcome.
func read(src Source, pid Pid) Result {
	rec, err := src.Status(pid)
	if err != nil {
		return Result{
			Pid:     pid,
			Outcome: Unreadable,
			Err:     &StatusError{Pid: pid, Err: err},
		}
	}
	if rec.Pid != pid {
		return Result{
			Pid:     pid,
			Record:  rec,
			Outcome: Inconsistent,
			Err:     &StatusError{Pid: pid, Err: fmt.Errorf("%w: read pid %d", ErrInconsistent, rec.Pid)},
		}
	}
	return Result{
		Pid:     pid,
		Record:  rec,
		Outcome: OK,
	}
}

// uniquePids drops non-positive and repeated pids, keeping listing order.
func uniquePids(pids []Pid) []Pid {
	seen := make(map[Pid]struct{}, len(pids))
	unique := make([]Pid, 0, len(pids))
	for _, pid := range pids {
		if pid <= 0 {
			continue
		}
		if _, ok := seen[pid]; ok {
			continue
		}
		seen[pid] = struct{}{}
		unique = append(unique, pid)
	}
	return unique
}
