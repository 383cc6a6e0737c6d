package post

import (
	"strings"

	"git.sr.ht/~mariusor/tagextractor"
)

func stringsContain(sl []string, v string) bool {
	for _, vs := range sl {
		if vs == v {
			return true
		}
	}
	return false
}

func uniqueValues[T comparable](sl []T, containsFn func(sl []T, u T) bool) []T {
	newSl := make([]T, 0, len(sl))
	for _, v := range sl {
		if !containsFn(newSl, v) {
			newSl = append(newSl, v)
		}
	}
	return newSl
}

func renderTags(t []string, tagPref string) string {
	for i, g := range t {
		t[i] = tagPref + tagextractor.TagNormalize(g)
	}
	return strings.Join(uniqueValues(t, stringsContain), " ")
}
