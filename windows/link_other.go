//go:build !unix

package windows

import (
	"path/filepath"

	"github.com/lxc/ndisbuilder/shared"
)

// linkOrCopy makes dir/name a copy of dir/target.
func linkOrCopy(dir string, target string, name string) error {
	return shared.Copy(filepath.Join(dir, target), filepath.Join(dir, name))
}
