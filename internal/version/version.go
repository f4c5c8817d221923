package version

// Version is the anchorver release string. Release builds override it via
// -ldflags "-X anchorver/internal/version.Version=x.y.z".
var Version = "0.1.0"

// GetVersion returns the current tool version.
func GetVersion() string {
	return Version
}
