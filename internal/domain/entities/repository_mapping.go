package entities

import (
	"fmt"
	"strings"
)

// RepositoryMapping maps a repository full name to the local directory of its working copy.
type RepositoryMapping map[string]string

// ParseRepositoryMapping reads "owner/name=path,owner2/name2=path2".
// Blank entries are skipped; an entry without "=" or with an empty side is rejected.
func ParseRepositoryMapping(value string) (RepositoryMapping, error) {
	mapping := RepositoryMapping{}
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, path, found := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		path = strings.TrimSpace(path)
		if !found || name == "" || path == "" {
			return nil, fmt.Errorf("malformed repository mapping entry %q, expected owner/name=path", entry)
		}
		if _, err := ParseRepositoryPath(name); err != nil {
			return nil, fmt.Errorf("malformed repository mapping entry %q: %w", entry, err)
		}

		mapping[name] = path
	}
	return mapping, nil
}

// Lookup returns the mapped directory for a repository, if any.
func (m RepositoryMapping) Lookup(path RepositoryPath) (string, bool) {
	dir, ok := m[path.FullName()]
	return dir, ok
}
