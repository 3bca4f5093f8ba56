//go:build unix

package windows

import (
	"path/filepath"

	"golang.org/x/sys/unix"
)

// linkOrCopy makes dir/name refer to dir/target.
func linkOrCopy(dir string, target string, name string) error {
	return unix.Symlink(target, filepath.Join(dir, name))
}
