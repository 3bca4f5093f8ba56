package windows

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveVersion(t *testing.T) {
	r, _ := newTestResolver(t, `[Version]
Provider="Acme"
DriverVer=01/01/2020,1.0.0.0
ClassGUID={4D36E972-E325-11CE-BFC1-08002BE10318}
`, Options{})

	err := r.resolveVersion()
	require.NoError(t, err)
	require.Equal(t, "4d36e972-e325-11ce-bfc1-08002be10318", r.ClassGUID())
	require.Equal(t, "Acme", r.version.Lookup("Provider"))
	require.Equal(t, "01/01/2020,1.0.0.0", r.version.Lookup("DriverVer"))
}

func TestSelectFlavor(t *testing.T) {
	tcs := []struct {
		value  string
		base   string
		flavor string
	}{
		{"AcmeDevices", "AcmeDevices", ""},
		{"AcmeDevices, NTx86, NT.5.1", "AcmeDevices", "NT.5.1"},
		{"AcmeDevices, nt.5.1, NTx86", "AcmeDevices", "nt.5.1"},
		{"AcmeDevices, NTx86, NTamd64", "AcmeDevices", "NTx86"},
		{"AcmeDevices, ME, NT", "AcmeDevices", "NT"},
		{"AcmeDevices, ME", "AcmeDevices", ""},
		{`"AcmeDevices" ,, NT.5.1`, "AcmeDevices", "NT.5.1"},
		{"", "", ""},
	}

	for _, tc := range tcs {
		t.Run(tc.value, func(t *testing.T) {
			base, flavor := selectFlavor(tc.value)
			require.Equal(t, tc.base, base)
			require.Equal(t, tc.flavor, flavor)
		})
	}
}

func TestResolveManufacturerFlavor(t *testing.T) {
	target := t.TempDir()

	r, _ := newTestResolver(t, `[Version]
Provider = "Acme"
[Manufacturer]
Acme = AcmeDevices, NTx86, NT.5.1
[AcmeDevices.NTx86]
Acme = Dev, PCI\VEN_1111&DEV_1111
[AcmeDevices.NT.5.1]
Acme = Dev, PCI\VEN_2222&DEV_2222
[Dev]
AddReg = Reg
[Reg]
HKR,,Mid,,3
`, Options{TargetDir: target})

	err := r.Run()
	require.NoError(t, err)
	require.Equal(t, []string{"2222:2222.5.conf"}, r.Confs())
	require.FileExists(t, filepath.Join(target, "2222:2222.5.conf"))

	// The manufacturer key equals the provider, so it's registered as a string.
	require.Equal(t, "AcmeDevices, NTx86, NT.5.1", r.strings.Lookup("Acme"))
}

func TestResolveVendorFallback(t *testing.T) {
	target := t.TempDir()

	r, _ := newTestResolver(t, `[Version]
Provider = "Acme"
[Manufacturer]
Acme = AcmeDevices, NT.5.1
[AcmeDevices]
Acme = Dev, PCI\VEN_1111&DEV_1111
[Dev.NT]
AddReg = Reg
[Reg]
HKR,,Mid,,3
`, Options{TargetDir: target})

	err := r.Run()
	require.NoError(t, err)
	require.Equal(t, []string{"1111:1111.5.conf"}, r.Confs())
}

func TestResolveOnlyFirstVendor(t *testing.T) {
	target := t.TempDir()

	r, _ := newTestResolver(t, `[Version]
Provider = "Acme"
[Manufacturer]
Missing = MissingDevices
First = FirstDevices
Second = SecondDevices
[FirstDevices]
Acme = Dev, PCI\VEN_1111&DEV_1111
[SecondDevices]
Acme = Dev, PCI\VEN_2222&DEV_2222
[Dev]
`, Options{TargetDir: target})

	err := r.Run()
	require.NoError(t, err)
	require.Equal(t, []string{"1111:1111.5.conf"}, r.Confs())
}

func TestResolveMissingSections(t *testing.T) {
	tcs := []struct {
		name string
		text string
	}{
		{"version", "[Manufacturer]\nAcme = AcmeDevices\n"},
		{"manufacturer", "[Version]\nProvider = Acme\n"},
		{"vendor", "[Version]\nProvider = Acme\n[Manufacturer]\nAcme = AcmeDevices, NT\n"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := newTestResolver(t, tc.text, Options{TargetDir: t.TempDir()})

			err := r.Run()
			require.ErrorIs(t, err, ErrSectionNotFound)
		})
	}
}

func TestResolveDeviceErrors(t *testing.T) {
	target := t.TempDir()

	r, _ := newTestResolver(t, `[Version]
Provider = "Acme"
[Manufacturer]
Acme = AcmeDevices
[AcmeDevices]
Acme = NoSuchSection, PCI\VEN_1111&DEV_1111
Acme = BadReg, PCI\VEN_2222&DEV_2222
Acme = Dev, PCI\VEN_3333&DEV_3333
Acme = Dev, *PNP0001
Acme = Dev
[BadReg]
AddReg = Missing
[Dev]
`, Options{TargetDir: target})

	err := r.Run()
	require.NoError(t, err)
	require.Equal(t, []string{"3333:3333.5.conf"}, r.Confs())

	err = r.DeviceErrors()
	require.ErrorIs(t, err, ErrSectionNotFound)

	_, err = os.Stat(filepath.Join(target, "2222:2222.5.conf"))
	require.True(t, os.IsNotExist(err))
}

func TestDeviceSectionFallback(t *testing.T) {
	tcs := []struct {
		name     string
		sections string
		base     string
		want     string
	}{
		{"RNDIS alias", "[RNDIS.NT]\n[RNDIS.NT.5.1.NT.5.1]\n", "RNDIS.NT.5.1", "RNDIS.NT"},
		{"flavor", "[Dev.NT.5.1]\n[Dev.NT]\n[Dev]\n", "Dev", "Dev.NT.5.1"},
		{"NT", "[Dev.NTx86]\n[Dev.NT]\n[Dev]\n", "Dev", "Dev.NT"},
		{"NTx86", "[Dev.NTx86]\n[Dev]\n", "Dev", "Dev.NTx86"},
		{"unqualified", "[Dev]\n", "Dev", "Dev"},
		{"missing", "[Other]\n", "Dev", ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := newTestResolver(t, "x = y\n"+tc.sections, Options{})

			section := r.deviceSection("NT.5.1", tc.base)
			if tc.want == "" {
				require.Nil(t, section)
				return
			}

			require.NotNil(t, section)
			require.Equal(t, tc.want, section.Name)
		})
	}
}
