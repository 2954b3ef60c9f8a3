package domain

// PackageFlag is an advisory marker a repository attaches to a package.
// Flags never block resolution.
type PackageFlag string

const (
	FlagOutOfDate  PackageFlag = "out_of_date"
	FlagDeprecated PackageFlag = "deprecated"
	FlagInsecure   PackageFlag = "insecure"
	FlagMalicious  PackageFlag = "malicious"
)

// Warning returns the message shown when a flagged package is installed.
func (f PackageFlag) Warning(id PackageID) string {
	switch f {
	case FlagOutOfDate:
		return "package '" + id.String() + "' has been flagged as out of date"
	case FlagDeprecated:
		return "package '" + id.String() + "' has been flagged as deprecated"
	case FlagInsecure:
		return "package '" + id.String() + "' has been flagged as insecure"
	case FlagMalicious:
		return "package '" + id.String() + "' has been flagged as malicious"
	default:
		return "package '" + id.String() + "' has been flagged as " + string(f)
	}
}
