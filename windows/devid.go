package windows

import (
	"fmt"
	"strings"
)

// BusType is the ndiswrapper bus classification. The values are part of the
// conf file format and must not change.
type BusType int

const (
	BusPCI    BusType = 5
	BusPCMCIA BusType = 8
	BusUSB    BusType = 15
)

// Hex returns the bus type as used in conf file names.
func (b BusType) Hex() string {
	return fmt.Sprintf("%X", int(b))
}

// DeviceID identifies a device matched by a driver.
type DeviceID struct {
	Vendor    string
	Device    string
	SubVendor string
	SubDevice string
	Bus       BusType
}

// BareKey returns "vendor:device".
func (d DeviceID) BareKey() string {
	return d.Vendor + ":" + d.Device
}

// Key returns "vendor:device" extended with ":subvendor:subdevice" if the
// device carries a subsystem id.
func (d DeviceID) Key() string {
	if d.SubVendor == "" {
		return d.BareKey()
	}

	return d.BareKey() + ":" + d.SubVendor + ":" + d.SubDevice
}

// ConfName returns the name of the conf file written for the device.
func (d DeviceID) ConfName() string {
	return confName(d.Key(), d.Bus.Hex())
}

func confName(key string, bus string) string {
	return fmt.Sprintf("%s.%s.conf", key, bus)
}

// ParseDeviceID extracts the device identity from a PCI or USB hardware id.
func ParseDeviceID(id string) (DeviceID, error) {
	id = strings.ToUpper(id)

	vendor, device, rest, ok := matchIDPair(id, `PCI\VEN_`, "&DEV_")
	if ok {
		dev := DeviceID{Vendor: vendor, Device: device, Bus: BusPCI}

		subsys, ok := strings.CutPrefix(rest, "&SUBSYS_")
		if ok && len(subsys) >= 8 && isHex(subsys[:8]) {
			dev.SubDevice = subsys[:4]
			dev.SubVendor = subsys[4:8]
		}

		return dev, nil
	}

	vendor, device, _, ok = matchIDPair(id, `USB\VID_`, "&PID_")
	if ok {
		return DeviceID{Vendor: vendor, Device: device, Bus: BusUSB}, nil
	}

	return DeviceID{}, fmt.Errorf("%w: %q", ErrNoMatch, id)
}

// matchIDPair finds "<first>XXXX<second>YYYY" in id, with XXXX and YYYY
// being four hex digits, and returns both groups and the text after them.
func matchIDPair(id string, first string, second string) (string, string, string, bool) {
	start := strings.Index(id, first)
	if start == -1 {
		return "", "", "", false
	}

	s := id[start+len(first):]
	if len(s) < 4+len(second)+4 || !isHex(s[:4]) {
		return "", "", "", false
	}

	a := s[:4]
	s = s[4:]

	if !strings.HasPrefix(s, second) {
		return "", "", "", false
	}

	s = s[len(second):]
	if !isHex(s[:4]) {
		return "", "", "", false
	}

	return a, s[:4], s[4:], true
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'F':
		case c >= 'a' && c <= 'f':
		default:
			return false
		}
	}

	return true
}
