//go:build linux

package kernel

import (
	"bytes"
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

var (
	version    Version
	versionErr error
	once       sync.Once
)

const (
	firstNumberOfParts  = 2
	secondNumberOfParts = 1
)

func parseKernelVersion(release string) (major int, minor int, patch int, flavor string, err error) {
	var partial string

	parsed, _ := fmt.Sscanf(release, "%d.%d%s", &major, &minor, &partial)
	if parsed < firstNumberOfParts {
		err = fmt.Errorf("cannot parse kernel version: %s", release)
		return
	}

	parsed, _ = fmt.Sscanf(partial, ".%d%s", &patch, &flavor)
	if parsed < secondNumberOfParts {
		flavor = partial
	}

	return
}

// Get returns the running kernel version, read once per process.
func Get() (Version, error) {
	once.Do(func() {
		uts := &unix.Utsname{}
		if err := unix.Uname(uts); err != nil {
			versionErr = err
			return
		}
		release := string(uts.Release[:bytes.IndexByte(uts.Release[:], 0)])
		major, minor, patch, flavor, parseErr := parseKernelVersion(release)
		if parseErr != nil {
			versionErr = parseErr
			return
		}
		version = Version{Major: major, Minor: minor, Patch: patch, Flavor: flavor}
	})
	return version, versionErr
}
