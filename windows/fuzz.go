package windows

import (
	"fmt"
	"path/filepath"

	incus "github.com/lxc/incus/v6/shared/util"
	"github.com/sirupsen/logrus"
)

// addFuzzEntry maps the bare vendor:device key of a PCI device to its
// subsystem specific key, so a generic match can fall back to it.
func (r *Resolver) addFuzzEntry(dev DeviceID) {
	bare := dev.BareKey()

	if dev.SubVendor == "" {
		_, ok := r.fuzz.Get(bare)
		if ok {
			return
		}
	}

	r.fuzz.Set(bare, dev.Key())
	r.bus.Set(bare, dev.Bus.Hex())
}

// processFuzz creates <bare>.<bus>.conf for every fuzz entry pointing to a
// subsystem specific conf, unless such a file already exists.
func (r *Resolver) processFuzz() error {
	for _, entry := range r.fuzz.Entries() {
		if entry.Key == entry.Value {
			continue
		}

		bus := r.bus.Lookup(entry.Key)
		src := confName(entry.Value, bus)
		dst := confName(entry.Key, bus)

		if r.opts.AltInstall {
			err := r.appendManifest(src, dst)
			if err != nil {
				return err
			}

			continue
		}

		if incus.PathExists(filepath.Join(r.opts.TargetDir, dst)) {
			continue
		}

		r.logger.WithFields(logrus.Fields{"src": src, "dest": dst}).Debug("Linking conf")

		err := linkOrCopy(r.opts.TargetDir, src, dst)
		if err != nil {
			return fmt.Errorf("Failed to link %q to %q: %w: %w", dst, src, ErrIO, err)
		}

		r.links = append(r.links, dst)
	}

	return nil
}
