// Copyright © 2022 The Gomon Project.

package process

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves process records from memory.
type fakeSource struct {
	pids    []Pid
	records map[Pid]Record
	errs    map[Pid]error
	listErr error
}

func (f *fakeSource) Pids() ([]Pid, error) {
	return f.pids, f.listErr
}

func (f *fakeSource) Status(pid Pid) (Record, error) {
	if err, ok := f.errs[pid]; ok {
		return Record{}, err
	}
	rec, ok := f.records[pid]
	if !ok {
		return Record{}, fs.ErrNotExist
	}
	return rec, nil
}

func TestCollect(t *testing.T) {
	src := &fakeSource{
		pids: []Pid{1, 2, 3, 4, 5, 6},
		records: map[Pid]Record{
			1: {Pid: 1, Ppid: 0, Name: "init"},
			2: {Pid: 2, Ppid: 1, Name: "shell"},
			3: {Pid: 3, Ppid: 2, Name: "editor"},
			4: {Pid: 4, Ppid: 1, Name: "daemon"},
			6: {Pid: 60, Ppid: 1, Name: "reused"},
		},
		errs: map[Pid]error{
			5: ErrMalformed,
		},
	}

	snapshot, err := Collect(context.Background(), src, 2)
	require.NoError(t, err)
	assert.False(t, snapshot.Empty())
	assert.ElementsMatch(t, []Record{
		{Pid: 1, Ppid: 0, Name: "init"},
		{Pid: 2, Ppid: 1, Name: "shell"},
		{Pid: 3, Ppid: 2, Name: "editor"},
		{Pid: 4, Ppid: 1, Name: "daemon"},
	}, snapshot.Records)

	require.Len(t, snapshot.Results, 6)
	assert.Equal(t, 4, snapshot.Count(OK))
	assert.Equal(t, 1, snapshot.Count(Unreadable))
	assert.Equal(t, 1, snapshot.Count(Inconsistent))

	skipped := snapshot.Skipped()
	require.Len(t, skipped, 2)
	assert.Equal(t, Pid(5), skipped[0].Pid)
	assert.Equal(t, Unreadable, skipped[0].Outcome)
	assert.ErrorIs(t, skipped[0].Err, ErrMalformed)
	assert.Equal(t, Pid(6), skipped[1].Pid)
	assert.Equal(t, Inconsistent, skipped[1].Outcome)
	assert.ErrorIs(t, skipped[1].Err, ErrInconsistent)

	var serr *StatusError
	require.ErrorAs(t, snapshot.Err(), &serr)
	assert.ErrorIs(t, snapshot.Err(), ErrMalformed)
	assert.ErrorIs(t, snapshot.Err(), ErrInconsistent)
}

func TestCollectUnavailable(t *testing.T) {
	src := &fakeSource{listErr: fs.ErrPermission}

	snapshot, err := Collect(context.Background(), src, 0)
	assert.Nil(t, snapshot)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestCollectEmpty(t *testing.T) {
	tests := []struct {
		name string
		src  *fakeSource
	}{
		{
			name: "no processes",
			src:  &fakeSource{},
		},
		{
			name: "all unreadable",
			src: &fakeSource{
				pids: []Pid{10, 11},
				errs: map[Pid]error{10: fs.ErrNotExist, 11: fs.ErrPermission},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot, err := Collect(context.Background(), tt.src, 1)
			require.NoError(t, err)
			assert.True(t, snapshot.Empty())
			assert.Equal(t, len(tt.src.pids), snapshot.Count(Unreadable))
		})
	}
}

func TestCollectDropsInvalidAndDuplicatePids(t *testing.T) {
	src := &fakeSource{
		pids: []Pid{0, -1, 7, 7, 8},
		records: map[Pid]Record{
			7: {Pid: 7, Ppid: 1, Name: "seven"},
			8: {Pid: 8, Ppid: 7, Name: "eight"},
		},
	}

	snapshot, err := Collect(context.Background(), src, 4)
	require.NoError(t, err)
	assert.Len(t, snapshot.Results, 2)
	assert.Len(t, snapshot.Records, 2)
	assert.NoError(t, snapshot.Err())
}

func TestCollectCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &fakeSource{
		pids:    []Pid{1},
		records: map[Pid]Record{1: {Pid: 1, Name: "init"}},
	}
	_, err := Collect(ctx, src, 1)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "ok", OK.String())
	assert.Equal(t, "unreadable", Unreadable.String())
	assert.Equal(t, "inconsistent", Inconsistent.String())
	assert.Equal(t, "Outcome(9)", Outcome(9).String())
}
