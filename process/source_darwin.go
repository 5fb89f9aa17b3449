// Copyright © 2022 The Gomon Project.

package process

/*
#include <libproc.h>
#include <sys/proc_info.h>
*/
import "C"
import (
	"unsafe"

	"github.com/zosmac/gocore"
)

// Libproc is the Source for Darwin, built on the libproc interfaces.
type Libproc struct{}

// Pids gets the list of active processes by pid.
func (Libproc) Pids() ([]Pid, error) {
	n, err := C.proc_listpids(C.PROC_ALL_PIDS, 0, nil, 0)
	if n <= 0 {
		return nil, gocore.Error("proc_listpids", err)
	}

	var pid C.int
	buf := make([]C.int, n/C.int(unsafe.Sizeof(pid))+10)
	if n, err = C.proc_listpids(C.PROC_ALL_PIDS, 0, unsafe.Pointer(&buf[0]), n); n <= 0 {
		return nil, gocore.Error("proc_listpids", err)
	}
	n /= C.int(unsafe.Sizeof(pid))
	if int(n) < len(buf) {
		buf = buf[:n]
	}

	pids := make([]Pid, 0, len(buf))
	for i := len(buf) - 1; i >= 0; i-- { // Darwin returns pids in descending order
		if buf[i] > 0 {
			pids = append(pids, Pid(buf[i]))
		}
	}
	return pids, nil
}

// Status reads the short BSD info of a process.
func (Libproc) Status(pid Pid) (Record, error) {
	var bsi C.struct_proc_bsdshortinfo
	if n, err := C.proc_pidinfo(
		C.int(pid),
		C.PROC_PIDT_SHORTBSDINFO,
		0,
		unsafe.Pointer(&bsi),
		C.int(C.PROC_PIDT_SHORTBSDINFO_SIZE),
	); n != C.int(C.PROC_PIDT_SHORTBSDINFO_SIZE) {
		return Record{}, gocore.Error("proc_pidinfo", err)
	}

	name := C.GoString(&bsi.pbsi_comm[0])
	if name == "" {
		return Record{}, ErrMalformed
	}

	return Record{
		Pid:  Pid(bsi.pbsi_pid),
		Ppid: Pid(bsi.pbsi_ppid),
		Name: name,
	}, nil
}

// Default returns the Source for this platform.
func Default(string) (Source, error) {
	return Libproc{}, nil
}
