// Copyright © 2022 The Gomon Project.

//go:build !linux && !darwin

package process

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/zosmac/gocore"
)

// Default returns the Source for this platform, a procfs compatible mount
// such as FreeBSD's linprocfs.
func Default(procfsPath string) (Source, error) {
	fs := afero.NewOsFs()
	ok, err := afero.DirExists(fs, procfsPath)
	if err != nil {
		return nil, gocore.Error("procfs", err)
	}
	if !ok {
		return nil, fmt.Errorf("%s is not a directory", procfsPath)
	}
	return NewFS(fs, procfsPath), nil
}
