package configtree

import (
	"fmt"
	"strings"
)

// literals maps the full path of every number written as a bare literal to
// its source text, so that GetString returns "1.0" as written rather than
// the re-rendered "1".
type literals map[string]string

func (l literals) record(path, text string) {
	if text != "" {
		l[path] = text
	}
}

// forget drops path and everything below it, used when a later definition
// replaces an earlier one.
func (l literals) forget(path string) {
	for k := range l {
		if k == path || strings.HasPrefix(k, path+".") || strings.HasPrefix(k, path+"[") {
			delete(l, k)
		}
	}
}

func childPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func elemPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}
