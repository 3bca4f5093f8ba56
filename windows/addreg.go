package windows

import (
	"fmt"
	"slices"
	"strings"
)

const defaultDriverDesc = "DriverDesc|NDIS Network Adapter"

// ResolveAddReg resolves the comma-separated AddReg section names of
// directive into a sorted list of unique "Name|Value" parameters.
func (r *Resolver) ResolveAddReg(directive string) ([]string, error) {
	var params []string

	for _, name := range tokenize(directive, ',') {
		name = trim(name)
		if name == "" {
			continue
		}

		section := r.doc.Section(name)
		if section == nil {
			return nil, fmt.Errorf("Failed to find AddReg section %q: %w", name, ErrSectionNotFound)
		}

		params = append(params, r.addReg(section)...)
	}

	if !slices.ContainsFunc(params, isDriverDesc) {
		params = append(params, defaultDriverDesc)
	}

	slices.Sort(params)

	return slices.Compact(params), nil
}

func isDriverDesc(param string) bool {
	name, _, _ := strings.Cut(param, "|")
	return strings.EqualFold(name, "DriverDesc")
}

// addReg collects the parameters of a single AddReg section. Lines have the
// form "root, subkey, value-name, flags, value-data".
func (r *Resolver) addReg(section *Section) []string {
	var params []string
	var param, value string
	found := 0

	for _, line := range section.Lines {
		fields := strings.SplitN(line, ",", 5)
		for len(fields) < 5 {
			fields = append(fields, "")
		}

		for i := 1; i < 5; i++ {
			fields[i] = stripQuotes(substitute(trim(fields[i]), r.strings))
		}

		subkey, valueName, data := fields[1], fields[2], fields[4]
		gotParam := false

		if subkey != "" {
			name, ok := ndiParam(subkey)
			if !ok {
				continue
			}

			if name != param {
				found = 0
				param = name
				value = ""
			}

			switch strings.ToLower(valueName) {
			case "type":
				found++
			case "default":
				found++
				value = data
			}

			gotParam = found == 2
		} else {
			param = valueName
			value = data
			gotParam = true
		}

		if !gotParam {
			continue
		}

		if param != "" && param != "BusType" {
			entry := param + "|" + value

			fixed, ok := applyQuirk(entry)
			if ok {
				r.logger.WithField("section", section.Name).Infof("Forcing parameter %s to %s", entry, fixed)
				entry = fixed
			}

			params = append(params, entry)
		}

		param = ""
	}

	return params
}

// ndiParam extracts the parameter name from a "ndi\params\<name>[\...]" subkey.
func ndiParam(subkey string) (string, bool) {
	const prefix = `ndi\params\`

	idx := strings.Index(strings.ToLower(subkey), prefix)
	if idx == -1 {
		return "", false
	}

	name, _, _ := strings.Cut(subkey[idx+len(prefix):], `\`)
	if name == "" {
		return "", false
	}

	return name, true
}
