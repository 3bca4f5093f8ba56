package windows

import (
	"fmt"

	"github.com/flosch/pongo2/v4"
)

// The key order and the literal values are read by loadndisdriver.
const confTemplate = `{% autoescape off %}sys_files|{{ sysFiles }}
NdisVersion|0x50001
Environment|1
class_guid|{{ classGuid }}
driver_version|{{ provider }},{{ driverVersion }}
BusType|{{ busType }}
SlotNumber|01
NetCfgInstanceId|{28022A01-1234-5678-ABCDE-123456789ABC}

{% for param in params %}{{ param }}
{% endfor %}{% endautoescape %}`

var confTpl = pongo2.Must(pongo2.FromString(confTemplate))

// Conf is the content of a device conf file.
type Conf struct {
	SysFiles      string
	ClassGUID     string
	Provider      string
	DriverVersion string
	BusType       string
	Params        []string
}

func (r *Resolver) newConf(sys sysFiles, params []string) Conf {
	return Conf{
		SysFiles:      sys.String(),
		ClassGUID:     r.classGUID,
		Provider:      stripQuotes(substitute(trim(r.version.Lookup("Provider")), r.strings)),
		DriverVersion: r.version.Lookup("DriverVer"),
		BusType:       r.strings.Lookup("BusType"),
		Params:        params,
	}
}

// Render returns the conf file content.
func (c Conf) Render() (string, error) {
	out, err := confTpl.Execute(pongo2.Context{
		"sysFiles":      c.SysFiles,
		"classGuid":     c.ClassGUID,
		"provider":      c.Provider,
		"driverVersion": c.DriverVersion,
		"busType":       c.BusType,
		"params":        c.Params,
	})
	if err != nil {
		return "", fmt.Errorf("Failed to render conf template: %w", err)
	}

	return out, nil
}
