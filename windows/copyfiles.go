package windows

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lxc/ndisbuilder/shared"
)

// sysFiles is the ordered set of driver binaries of a device.
type sysFiles []string

func (s *sysFiles) add(name string) {
	if !strings.HasSuffix(name, ".sys") || slices.Contains(*s, name) {
		return
	}

	*s = append(*s, name)
}

func (s sysFiles) String() string {
	return strings.Join(s, " ")
}

// copyFiles resolves a CopyFiles directive and copies every file it names
// into the target directory. Entries are either "@file" or the name of a
// section listing files.
func (r *Resolver) copyFiles(directive string, sys *sysFiles) {
	for _, entry := range tokenize(directive, ',') {
		entry = trim(entry)
		if entry == "" {
			continue
		}

		file, ok := strings.CutPrefix(entry, "@")
		if ok {
			r.copyFileLogged(file, sys)
			continue
		}

		section := r.doc.Section(entry)
		if section == nil {
			r.logger.WithField("section", entry).Warn("Unable to find CopyFiles section")
			continue
		}

		for _, line := range section.Lines {
			if strings.HasPrefix(line, "[") {
				break
			}

			for _, file := range tokenize(line, ',') {
				file = trim(file)
				if file == "" {
					continue
				}

				r.copyFileLogged(file, sys)
			}
		}
	}
}

func (r *Resolver) copyFileLogged(file string, sys *sysFiles) {
	name, err := r.copyFile(file)
	if err != nil {
		r.logger.WithFields(logrus.Fields{"file": file, "err": err}).Debug("Skipping file")
		return
	}

	sys.add(name)
}

// copyFile locates file on the driver media and copies it to the target
// directory under its lower-cased real name, which is returned.
func (r *Resolver) copyFile(file string) (string, error) {
	file = trim(stripComment(strings.TrimPrefix(file, ";")))
	if file == "" {
		return "", errors.New("Empty filename")
	}

	var src string
	var err error

	dir := r.diskDirectory(file)
	if dir != "" {
		src, err = shared.FindFirstMatch(r.opts.SourceDir, dir, file)
	}

	if src == "" {
		src, err = shared.FindFirstMatch(r.opts.SourceDir, file)
	}

	if err != nil {
		return "", fmt.Errorf("Failed to find %q in %q: %w", file, r.opts.SourceDir, err)
	}

	name := strings.ToLower(filepath.Base(src))
	dest := filepath.Join(r.opts.TargetDir, name)

	r.logger.WithFields(logrus.Fields{"src": src, "dest": dest}).Debug("Copying file")

	err = shared.Copy(src, dest)
	if err != nil {
		return "", fmt.Errorf("Failed to copy %q to %q: %w: %w", src, dest, ErrIO, err)
	}

	return name, nil
}

// diskDirectory returns the media subdirectory which SourceDisksFiles
// declares for file, or an empty string.
func (r *Resolver) diskDirectory(file string) string {
	section := r.doc.Section("SourceDisksFiles")
	if section == nil {
		section = r.doc.Section("SourceDisksFiles.x86")
	}

	if section == nil {
		return ""
	}

	for _, line := range section.Lines {
		eq := strings.LastIndexByte(line, '=')
		if eq == -1 {
			continue
		}

		name := trim(line[:eq])
		rest := line[eq+1:]

		comma := strings.LastIndexByte(rest, ',')
		if comma < 1 {
			continue
		}

		dir := trim(rest[comma+1:])
		if name != "" && dir != "" && strings.EqualFold(name, file) {
			return dir
		}
	}

	return ""
}
