package scanner

import "strconv"

// childPath appends a mapping key to a path: "" + "a" -> "a", "a" + "b" -> "a.b".
func childPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// indexPath appends a sequence index to a path: "a" + 2 -> "a[2]".
func indexPath(path string, index int) string {
	return path + "[" + strconv.Itoa(index) + "]"
}
