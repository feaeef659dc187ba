package templates

import "fmt"

// License identifies one of the offered license bodies.
type License string

const (
	LicenseMIT     License = "mit"
	LicenseApache2 License = "apache2"
	LicenseGPL3    License = "gpl3"
	LicenseNone    License = "none"
)

// LicenseText renders the LICENSE file body for the given license choice.
// LicenseNone is not renderable; callers skip the file entirely.
func LicenseText(license License, data *Data) (string, error) {
	switch license {
	case LicenseMIT:
		return render("license-mit.tmpl", data)
	case LicenseApache2:
		return render("license-apache2.tmpl", data)
	case LicenseGPL3:
		return render("license-gpl3.tmpl", data)
	default:
		return "", fmt.Errorf("no license body for %q", license)
	}
}
