// Package platform maps raw OS and architecture identifiers onto the
// canonical tags used in release asset names.
package platform

import (
	"fmt"
	"github.com/cockroachdb/errors"
	"runtime"
	"strings"
	"tasuki-setup/internal/failure"
)

// Canonical identifiers.
const (
	Linux   = "linux"
	X86_64  = "x86_64"
	AArch64 = "aarch64"
)

// Platform is a supported (os, arch) pair. Only Resolve builds one.
type Platform struct {
	os   string
	arch string
}

// Resolve normalizes raw identifiers such as runtime.GOOS/GOARCH or uname
// output. Anything outside linux on x86_64/aarch64 is ErrUnsupportedPlatform.
func Resolve(rawOS, rawArch string) (Platform, error) {
	osName := strings.ToLower(strings.TrimSpace(rawOS))
	if osName != Linux {
		err := errors.Newf("operating system %q is not supported: tasuki targets Waybar, which only runs on Linux", rawOS)
		return Platform{}, failure.Mark(err, failure.ErrUnsupportedPlatform)
	}

	var arch string
	switch strings.ToLower(strings.TrimSpace(rawArch)) {
	case "x86_64", "amd64":
		arch = X86_64
	case "aarch64", "arm64":
		arch = AArch64
	default:
		err := errors.Newf("architecture %q is not supported (need x86_64 or aarch64)", rawArch)
		return Platform{}, failure.Mark(err, failure.ErrUnsupportedPlatform)
	}

	return Platform{os: Linux, arch: arch}, nil
}

// Current resolves the platform this binary runs on.
func Current() (Platform, error) {
	return Resolve(runtime.GOOS, runtime.GOARCH)
}

// OS is the canonical operating system tag.
func (p Platform) OS() string { return p.os }

// Arch is the canonical architecture tag.
func (p Platform) Arch() string { return p.arch }

// AssetName is the release asset stem for this platform, e.g. tasuki-linux-x86_64.
func (p Platform) AssetName(binary string) string {
	return fmt.Sprintf("%s-%s-%s", binary, p.os, p.arch)
}

func (p Platform) String() string {
	return p.os + "/" + p.arch
}
