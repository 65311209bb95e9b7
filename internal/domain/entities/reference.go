package entities

import "strings"

const (
	branchRefPrefix = "refs/branches/"
	tagRefPrefix    = "refs/tags/"
)

// ReferenceKind tells a branch reference apart from a tag reference.
type ReferenceKind int

const (
	BranchReference ReferenceKind = iota
	TagReference
)

func (k ReferenceKind) String() string {
	switch k {
	case BranchReference:
		return "branch"
	case TagReference:
		return "tag"
	default:
		return "unknown"
	}
}

// Reference is a named pointer into version history, either a branch or a tag.
// The zero value is not valid; build one with ParseReference, NewBranch or NewTag.
type Reference struct {
	kind ReferenceKind
	name string
}

// NewBranch returns a branch reference.
func NewBranch(name string) Reference {
	return Reference{kind: BranchReference, name: name}
}

// NewTag returns a tag reference.
func NewTag(name string) Reference {
	return Reference{kind: TagReference, name: name}
}

// ParseReference resolves "refs/branches/<X>" and "refs/tags/<X>".
// Any other input fails with UnsupportedRefTypeError.
func ParseReference(value string) (Reference, error) {
	switch {
	case strings.HasPrefix(value, tagRefPrefix):
		return NewTag(strings.TrimPrefix(value, tagRefPrefix)), nil
	case strings.HasPrefix(value, branchRefPrefix):
		return NewBranch(strings.TrimPrefix(value, branchRefPrefix)), nil
	default:
		return Reference{}, &UnsupportedRefTypeError{Value: value}
	}
}

func (r Reference) Kind() ReferenceKind { return r.kind }

// Name is the reference without its prefix, as handed to the version control tool.
func (r Reference) Name() string { return r.name }

func (r Reference) String() string { return r.name }
