// Package version exposes the build version of the pets binary.
package version

// Version is the binary version, overridden at build time via
// -ldflags "-X github.com/Aliagaaaaaa/pets/pkg/version.Version=v1.2.3".
//
//nolint:gochecknoglobals // Set by the linker at build time.
var Version = "dev"

// GetVersion returns the current binary version.
func GetVersion() string {
	return Version
}
