// Copyright © 2022 The Gomon Project.

package process

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// ParseStat extracts the pid, command name, and parent pid from a status record
// of the form "pid (comm) state ppid ...". The command name may itself contain
// parentheses, so it spans from the first '(' to the last ')'.
func ParseStat(data []byte) (Record, error) {
	line := string(bytes.TrimSpace(data))

	l := strings.IndexByte(line, '(')
	r := strings.LastIndexByte(line, ')')
	if l < 0 || r < l {
		return Record{}, fmt.Errorf("%w: command name not delimited: %q", ErrMalformed, line)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(line[:l]))
	if err != nil {
		return Record{}, fmt.Errorf("%w: pid %v", ErrMalformed, err)
	}

	name := line[l+1 : r]
	if name == "" {
		return Record{}, fmt.Errorf("%w: empty command name", ErrMalformed)
	}

	fields := strings.Fields(line[r+1:])
	if len(fields) < 2 {
		return Record{}, fmt.Errorf("%w: %d fields after command name", ErrMalformed, len(fields))
	}
	if len(fields[0]) != 1 {
		return Record{}, fmt.Errorf("%w: state %q", ErrMalformed, fields[0])
	}

	ppid, err := strconv.Atoi(fields[1])
	if err != nil {
		return Record{}, fmt.Errorf("%w: ppid %v", ErrMalformed, err)
	}

	return Record{
		Pid:  Pid(pid),
		Ppid: Pid(ppid),
		Name: name,
	}, nil
}
