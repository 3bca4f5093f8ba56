package windows

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// deviceSection finds the install section of a device. The RNDIS alias
// exists for the USR5420 INF, whose vendor section names RNDIS.NT.5.1 while
// only RNDIS.NT is defined.
func (r *Resolver) deviceSection(flavor string, base string) *Section {
	var candidates []string

	if base == "RNDIS.NT.5.1" {
		candidates = append(candidates, "RNDIS.NT")
	}

	candidates = append(candidates, base+"."+flavor, base+".NT", base+".NTx86", base)

	for _, name := range candidates {
		section := r.doc.Section(name)
		if section != nil {
			return section
		}
	}

	return nil
}

func (r *Resolver) resolveDevice(flavor string, base string, dev DeviceID) error {
	section := r.deviceSection(flavor, base)
	if section == nil {
		return fmt.Errorf("Failed to find device section %q (flavor %q): %w", base, flavor, ErrSectionNotFound)
	}

	logger := r.logger.WithFields(logrus.Fields{"section": section.Name, "device": dev.Key()})
	logger.Debug("Resolving device")

	var addReg string
	var copyFiles []string

	for _, line := range section.Lines {
		key, value, ok := splitKeyVal(line)
		if !ok {
			continue
		}

		switch strings.ToLower(key) {
		case "addreg":
			addReg = value
		case "copyfiles":
			copyFiles = append(copyFiles, value)
		case "bustype":
			r.strings.Set("BusType", value)
		}
	}

	params, err := r.ResolveAddReg(addReg)
	if err != nil {
		return err
	}

	var sys sysFiles
	for _, directive := range copyFiles {
		r.copyFiles(directive, &sys)
	}

	conf := r.newConf(sys, params)

	filename := dev.ConfName()
	target := filepath.Join(r.opts.TargetDir, filename)

	if r.opts.AltInstall {
		local := fmt.Sprintf("driver%d", r.driverCount)

		err = r.appendManifest(local, filename)
		if err != nil {
			return err
		}

		r.driverCount++
		target = filepath.Join(r.opts.TargetDir, local)
	}

	out, err := conf.Render()
	if err != nil {
		return err
	}

	err = os.WriteFile(target, []byte(out), 0o644)
	if err != nil {
		return fmt.Errorf("Failed to write %q: %w: %w", target, ErrIO, err)
	}

	logger.WithField("conf", filename).Info("Wrote device configuration")
	r.confs = append(r.confs, filename)

	if dev.Bus == BusPCI || dev.Bus == BusPCMCIA {
		r.addFuzzEntry(dev)
	}

	return nil
}

// manifestName is the manifest written in alternate install mode.
const manifestName = "ndiswrapper"

func (r *Resolver) appendManifest(local string, name string) error {
	path := filepath.Join(r.opts.TargetDir, manifestName)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("Failed to open %q: %w: %w", path, ErrIO, err)
	}

	defer f.Close()

	_, err = fmt.Fprintf(f, "%s %s\n", local, name)
	if err != nil {
		return fmt.Errorf("Failed to write %q: %w: %w", path, ErrIO, err)
	}

	return nil
}
