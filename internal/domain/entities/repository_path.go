package entities

import "strings"

// RepositoryPath identifies a hosted repository as "owner/name".
type RepositoryPath struct {
	Owner string
	Name  string
}

// ParseRepositoryPath accepts exactly two non-empty segments separated by "/".
func ParseRepositoryPath(value string) (RepositoryPath, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RepositoryPath{}, &MalformedRepositoryPathError{Value: value}
	}
	return RepositoryPath{Owner: parts[0], Name: parts[1]}, nil
}

// FullName returns "owner/name".
func (p RepositoryPath) FullName() string {
	return p.Owner + "/" + p.Name
}

func (p RepositoryPath) String() string { return p.FullName() }
