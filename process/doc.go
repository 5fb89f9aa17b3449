// Copyright © 2022 The Gomon Project.

/*
Package process collects a snapshot of the processes running on the system.

A Source lists the process identifiers and reads each process' status record.
Collect reads every listed process, keeps the records that read cleanly, and
reports every attempt as a Result so that callers can see why a process is
absent from the snapshot.
*/
package process
