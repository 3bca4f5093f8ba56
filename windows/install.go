package windows

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	incus "github.com/lxc/incus/v6/shared/util"
	"github.com/sirupsen/logrus"

	"github.com/lxc/ndisbuilder/shared"
)

// Installer manages drivers below a configuration directory.
type Installer struct {
	confDir    string
	altInstall bool
	logger     *logrus.Logger
}

// Result describes a completed install.
type Result struct {
	Driver    string
	ClassGUID string
	Confs     []string
	Links     []string

	// DeviceErrors holds the failures of individual devices. They don't fail the install.
	DeviceErrors error
}

// NewInstaller returns a new Installer object.
func NewInstaller(confDir string, altInstall bool, logger *logrus.Logger) *Installer {
	return &Installer{
		confDir:    confDir,
		altInstall: altInstall,
		logger:     logger,
	}
}

// DriverName returns the lower-cased driver name and the source directory of an INF path.
func DriverName(infPath string) (name string, sourceDir string, err error) {
	path, err := filepath.Abs(infPath)
	if err != nil {
		return "", "", fmt.Errorf("Failed to get absolute path of %q: %w", infPath, err)
	}

	ext := filepath.Ext(path)
	if !strings.EqualFold(ext, ".inf") {
		return "", "", fmt.Errorf("%q should be in the format /path/filename.inf: %w", infPath, ErrInvalidInfPath)
	}

	name = strings.ToLower(strings.TrimSuffix(filepath.Base(path), ext))
	if name == "" {
		return "", "", fmt.Errorf("%q has no driver name: %w", infPath, ErrInvalidInfPath)
	}

	return name, filepath.Dir(path), nil
}

// IsInstalled reports whether name is one of the driver directories of the
// configuration directory. Names that aren't a single path element never match.
func (i *Installer) IsInstalled(name string) bool {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return false
	}

	names, err := i.List()
	if err != nil {
		return false
	}

	return slices.Contains(names, name)
}

// Install resolves the INF file at infPath and writes the driver
// configuration below the configuration directory.
func (i *Installer) Install(infPath string) (*Result, error) {
	if !incus.PathExists(infPath) {
		return nil, fmt.Errorf("Unable to locate %q: %w", infPath, ErrIO)
	}

	name, sourceDir, err := DriverName(infPath)
	if err != nil {
		return nil, err
	}

	if i.IsInstalled(name) {
		return nil, fmt.Errorf("%q: %w", name, ErrAlreadyInstalled)
	}

	doc, err := Load(infPath)
	if err != nil {
		return nil, err
	}

	err = os.MkdirAll(i.confDir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("Failed to create directory %q: %w: %w", i.confDir, ErrIO, err)
	}

	installDir := filepath.Join(i.confDir, name)

	err = os.Mkdir(installDir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("Failed to create directory %q: %w: %w", installDir, ErrIO, err)
	}

	i.logger.WithField("driver", name).Info("Installing driver")

	resolver := NewResolver(doc, Options{
		SourceDir:  sourceDir,
		TargetDir:  installDir,
		AltInstall: i.altInstall,
	}, i.logger)

	err = resolver.Run()
	if err != nil {
		return nil, fmt.Errorf("Failed to resolve %q: %w", infPath, err)
	}

	target := filepath.Join(installDir, name+".inf")

	err = shared.Copy(infPath, target)
	if err != nil {
		return nil, fmt.Errorf("Failed to copy %q: %w: %w", infPath, ErrIO, err)
	}

	return &Result{
		Driver:       name,
		ClassGUID:    resolver.ClassGUID(),
		Confs:        resolver.Confs(),
		Links:        resolver.Links(),
		DeviceErrors: resolver.DeviceErrors(),
	}, nil
}

// Remove deletes the configuration directory of the named driver.
func (i *Installer) Remove(name string) error {
	if !i.IsInstalled(name) {
		return fmt.Errorf("%q: %w", name, ErrNotInstalled)
	}

	path := filepath.Join(i.confDir, name)

	err := os.RemoveAll(path)
	if err != nil {
		return fmt.Errorf("Failed to remove directory %q: %w: %w", path, ErrIO, err)
	}

	i.logger.WithField("driver", name).Info("Removed driver")

	return nil
}

// List returns the names of the installed drivers, sorted.
func (i *Installer) List() ([]string, error) {
	if !incus.PathExists(i.confDir) {
		return nil, nil
	}

	entries, err := os.ReadDir(i.confDir)
	if err != nil {
		return nil, fmt.Errorf("Failed to read directory %q: %w: %w", i.confDir, ErrIO, err)
	}

	var names []string

	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}

	slices.Sort(names)

	return names, nil
}
