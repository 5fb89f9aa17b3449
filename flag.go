// Copyright © 2023 The Gomon Project.

package main

import (
	"github.com/zosmac/gocore"
)

// init initializes the command line flags.
func init() {
	gocore.Flags.CommandDescription = `The proctree command produces an indented tree listing of the processes running currently on the system.
Set PROCTREE_ROOT to list only the descendants of a process, PROCTREE_PROCFS to read an alternate proc filesystem,
PROCTREE_WORKERS to bound concurrent reads, and PROCTREE_LOGLEVEL to enable diagnostics on stderr.`
}
