package kernel

type Version struct {
	Major  int
	Minor  int
	Patch  int
	Flavor string
}

func Compare(a, b Version) int {
	if a.Major > b.Major {
		return 1
	} else if a.Major < b.Major {
		return -1
	}

	if a.Minor > b.Minor {
		return 1
	} else if a.Minor < b.Minor {
		return -1
	}

	if a.Patch > b.Patch {
		return 1
	} else if a.Patch < b.Patch {
		return -1
	}

	return 0
}

// Check reports whether the running kernel is at least major.minor.patch.
func Check(major, minor, patch int) (bool, error) {
	v, err := Get()
	if err != nil {
		return false, err
	}
	return Compare(v, Version{Major: major, Minor: minor, Patch: patch}) >= 0, nil
}
