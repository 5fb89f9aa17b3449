// Copyright © 2022 The Gomon Project.

// Package tree organizes a process snapshot into its parent/child hierarchy
// and renders it as an indented listing.
package tree

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/zosmac/proctree/process"
)

const (
	// indent is the per level indentation.
	indent = "  "

	// branch marks an edge of the tree.
	branch = "+-- "
)

// Tree indexes the children of each process by parent pid.
type Tree struct {
	records  map[process.Pid]process.Record
	children map[process.Pid][]process.Pid
}

// New builds the tree of records. Children of each parent are ordered by pid.
// The records slice is not retained or modified.
func New(records []process.Record) *Tree {
	tr := &Tree{
		records:  make(map[process.Pid]process.Record, len(records)),
		children: map[process.Pid][]process.Pid{},
	}
	for _, r := range records {
		if _, ok := tr.records[r.Pid]; ok {
			continue // pid already indexed
		}
		tr.records[r.Pid] = r
		tr.children[r.Ppid] = append(tr.children[r.Ppid], r.Pid)
	}
	for _, pids := range tr.children {
		slices.Sort(pids)
	}
	return tr
}

// Record returns the record of pid if it is in the tree.
func (tr *Tree) Record(pid process.Pid) (process.Record, bool) {
	r, ok := tr.records[pid]
	return r, ok
}

// Children returns the pids of the direct children of pid in ascending order.
func (tr *Tree) Children(pid process.Pid) []process.Pid {
	return slices.Clone(tr.children[pid])
}

// frame is a pending visit of the depth first walk.
type frame struct {
	pid   process.Pid
	depth int
}

// All walks the descendants of root depth first, yielding each record with its
// depth, the number of hops from root. Each pid is yielded at most once, so a
// cycle in the parent links ends the descent.
func (tr *Tree) All(root process.Pid) iter.Seq2[int, process.Record] {
	return func(yield func(int, process.Record) bool) {
		visited := mapset.NewThreadUnsafeSet(root)
		stack := tr.push(nil, root, 1)
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !visited.Add(f.pid) {
				continue // already visited
			}
			if !yield(f.depth, tr.records[f.pid]) {
				return
			}
			stack = tr.push(stack, f.pid, f.depth+1)
		}
	}
}

// push pushes the children of pid in descending order so that they pop in ascending order.
func (tr *Tree) push(stack []frame, pid process.Pid, depth int) []frame {
	children := tr.children[pid]
	for i := len(children) - 1; i >= 0; i-- {
		stack = append(stack, frame{pid: children[i], depth: depth})
	}
	return stack
}

// Lines renders the descendants of root, one line per process.
func (tr *Tree) Lines(root process.Pid) iter.Seq[string] {
	return func(yield func(string) bool) {
		for depth, r := range tr.All(root) {
			if !yield(Line(depth, r)) {
				return
			}
		}
	}
}

// Lines renders the descendants of root in records.
func Lines(records []process.Record, root process.Pid) iter.Seq[string] {
	return New(records).Lines(root)
}

// Line formats a process found depth hops below the root of the listing.
func Line(depth int, r process.Record) string {
	return strings.Repeat(indent, max(depth-1, 0)) + branch + label(r)
}

// System is the pid of the synthetic root that parents the processes the kernel starts.
const System process.Pid = 0

// Header formats the first line of the listing, the root itself. The System
// root is shown even if no process record has its pid. Any other root must be
// a process in the tree; otherwise Header reports false.
func (tr *Tree) Header(root process.Pid) (string, bool) {
	if r, ok := tr.Record(root); ok {
		return label(r), true
	}
	if root == System {
		return label(process.Record{Pid: System, Ppid: System, Name: "Root (System)"}), true
	}
	return "", false
}

// label shows the name, pid, and parent pid of a process.
func label(r process.Record) string {
	return fmt.Sprintf("%s (PID: %d, PPID: %d)", r.Name, r.Pid, r.Ppid)
}
