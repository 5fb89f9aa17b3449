// Copyright © 2023 The Gomon Project.

package main

/*
Package proctree defines the proctree command that prints a tree listing of the processes
visible to the current user. The tree organizes the processes by parent/child relationships,
starting from a synthetic system root. Each process in the listing shows its command name,
pid, and parent pid; children of a process are listed in ascending pid order.

The command exits with status 1 if the process information cannot be read at all, with
status 2 if no process could be read or the requested root is not running, and with
status 3 if its configuration is invalid.
*/
