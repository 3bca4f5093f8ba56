package windows

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

// Options controls where a Resolver finds driver files and writes its output.
type Options struct {
	// SourceDir is the directory holding the INF file and the driver media.
	SourceDir string

	// TargetDir is the per-driver configuration directory.
	TargetDir string

	// AltInstall writes conf files as driver<N> and records their real
	// names in a manifest.
	AltInstall bool
}

// Resolver walks an INF document and produces ndiswrapper conf files. It owns
// all state of a single install run.
type Resolver struct {
	doc    *Document
	opts   Options
	logger *logrus.Logger

	strings *Table
	version *Table
	fuzz    *Table
	bus     *Table

	classGUID      string
	vendorResolved bool
	driverCount    int

	confs []string
	links []string
	errs  *multierror.Error
}

// NewResolver returns a Resolver for doc.
func NewResolver(doc *Document, opts Options, logger *logrus.Logger) *Resolver {
	return &Resolver{
		doc:     doc,
		opts:    opts,
		logger:  logger,
		strings: NewTable(true),
		version: NewTable(false),
		fuzz:    NewTable(false),
		bus:     NewTable(false),
	}
}

// Run resolves the whole document: strings, version, manufacturer, vendor and
// devices, followed by the fuzz links. Device failures don't stop the run,
// they're available through DeviceErrors.
func (r *Resolver) Run() error {
	r.resolveStrings()

	err := r.resolveVersion()
	if err != nil {
		return err
	}

	err = r.resolveManufacturer()
	if err != nil {
		return err
	}

	return r.processFuzz()
}

// ClassGUID returns the lower-cased class GUID of the driver.
func (r *Resolver) ClassGUID() string {
	return r.classGUID
}

// Confs returns the names of the conf files written so far.
func (r *Resolver) Confs() []string {
	return r.confs
}

// Links returns the names of the fuzz links created.
func (r *Resolver) Links() []string {
	return r.links
}

// DeviceErrors returns the failures of individual devices, or nil.
func (r *Resolver) DeviceErrors() error {
	return r.errs.ErrorOrNil()
}

func (r *Resolver) resolveStrings() {
	section := r.doc.Section("strings")
	if section == nil {
		r.logger.Warn("Could not find section 'strings' in inf file")
		return
	}

	for _, line := range section.Lines {
		key, value, ok := splitKeyVal(line)
		if !ok {
			continue
		}

		// Keep the first run of characters that aren't quotes.
		value = strings.TrimLeft(value, `"`)
		value, _, _ = strings.Cut(value, `"`)
		if value == "" {
			continue
		}

		r.strings.Set(key, value)
	}
}

func (r *Resolver) resolveVersion() error {
	section := r.doc.Section("version")
	if section == nil {
		return fmt.Errorf("Failed to find section %q: %w", "version", ErrSectionNotFound)
	}

	for _, line := range section.Lines {
		key, value, ok := splitKeyVal(line)
		if !ok {
			continue
		}

		switch key {
		case "Provider", "DriverVer":
			r.version.Set(key, stripQuotes(value))
		case "ClassGUID":
			r.classGUID = parseClassGUID(value)
		}
	}

	return nil
}

func (r *Resolver) resolveManufacturer() error {
	section := r.doc.Section("manufacturer")
	if section == nil {
		return fmt.Errorf("Failed to find section %q: %w", "manufacturer", ErrSectionNotFound)
	}

	var errs error

	for _, line := range section.Lines {
		key, value, ok := splitKeyVal(line)
		if !ok {
			continue
		}

		if key == r.version.Lookup("Provider") {
			r.strings.Set(key, value)
		}

		// Only the first vendor which resolves drives device generation.
		if r.vendorResolved {
			continue
		}

		base, flavor := selectFlavor(value)
		if base == "" {
			continue
		}

		err := r.resolveVendor(flavor, base)
		if err != nil {
			r.logger.WithFields(logrus.Fields{"vendor": base, "flavor": flavor, "err": err}).Warn("Failed to resolve vendor")
			errs = errors.Join(errs, err)
		}
	}

	if !r.vendorResolved {
		if errs == nil {
			errs = ErrSectionNotFound
		}

		return fmt.Errorf("Failed to resolve any vendor section: %w", errs)
	}

	return nil
}

// selectFlavor splits a manufacturer value "Base[, flavor...]" and picks the
// preferred flavor. NT.5.1 wins outright, otherwise the first NT* flavor is used.
func selectFlavor(value string) (base string, flavor string) {
	tokens := tokenize(value, ',')
	if len(tokens) == 0 {
		return "", ""
	}

	base = stripQuotes(trim(tokens[0]))

	for _, token := range tokens[1:] {
		candidate := firstField(stripQuotes(trim(token)))

		if strings.EqualFold(candidate, "NT.5.1") {
			return base, candidate
		}

		if flavor == "" && hasPrefixFold(candidate, "NT") {
			flavor = candidate
		}
	}

	return base, flavor
}

func (r *Resolver) resolveVendor(flavor string, base string) error {
	var section *Section

	if flavor != "" {
		section = r.doc.Section(base + "." + flavor)
	}

	if section == nil {
		section = r.doc.Section(base)
	}

	if section == nil {
		return fmt.Errorf("Failed to find vendor section %q (flavor %q): %w", base, flavor, ErrSectionNotFound)
	}

	r.vendorResolved = true
	r.logger.WithFields(logrus.Fields{"section": section.Name, "flavor": flavor}).Debug("Resolving vendor")

	for _, line := range section.Lines {
		_, value, ok := splitKeyVal(line)
		if !ok {
			continue
		}

		tokens := tokenize(value, ',')
		if len(tokens) < 2 {
			continue
		}

		deviceSection := trim(tokens[0])
		hardwareID := strings.ToUpper(substitute(trim(tokens[1]), r.strings))

		dev, err := ParseDeviceID(hardwareID)
		if err != nil {
			r.logger.WithField("id", hardwareID).Debug("Skipping unsupported hardware id")
			continue
		}

		err = r.resolveDevice(flavor, deviceSection, dev)
		if err != nil {
			r.logger.WithFields(logrus.Fields{"section": deviceSection, "device": dev.Key(), "err": err}).Warn("Failed to resolve device")
			r.errs = multierror.Append(r.errs, err)
		}
	}

	return nil
}
