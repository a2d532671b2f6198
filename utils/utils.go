package utils

// ContainsString returns true iff the provided string slice hay contains
// string needle.
func ContainsString(hay []string, needle string) bool {
	for _, str := range hay {
		if str == needle {
			return true
		}
	}
	return false
}

// RemoveString returns a new slice with every occurrence of needle removed.
// The input slice is never mutated.
func RemoveString(hay []string, needle string) []string {
	res := make([]string, 0, len(hay))
	for _, str := range hay {
		if str != needle {
			res = append(res, str)
		}
	}
	return res
}
