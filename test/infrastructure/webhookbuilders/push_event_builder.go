//go:build integration || unit || test

package webhookbuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"encoding/json"
	"strings"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/hookrunner/internal/infrastructure/webhook"
)

// PushEventBuilder helps create push deliveries with a fluent interface.
type PushEventBuilder struct {
	*testkit.BaseBuilder
	ref      string
	baseRef  *string
	fullName string
	message  string
	pusher   string
}

// NewPushEventBuilder creates a push to refs/branches/main of acme/widgets.
func NewPushEventBuilder() *PushEventBuilder {
	return &PushEventBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		ref:         "refs/branches/main",
		fullName:    "acme/widgets",
		message:     "Update README",
		pusher:      "octocat",
	}
}

// WithRef sets the pushed reference.
func (b *PushEventBuilder) WithRef(ref string) *PushEventBuilder {
	b.ref = ref
	return b
}

// WithBaseRef sets the base reference.
func (b *PushEventBuilder) WithBaseRef(baseRef string) *PushEventBuilder {
	b.baseRef = &baseRef
	return b
}

// WithRepository sets the repository full name; the short name is derived from it.
func (b *PushEventBuilder) WithRepository(fullName string) *PushEventBuilder {
	b.fullName = fullName
	return b
}

// Build creates the event (satisfies testkit.Builder interface).
func (b *PushEventBuilder) Build() interface{} {
	return b.BuildEvent()
}

// BuildEvent creates the event with a concrete return type.
func (b *PushEventBuilder) BuildEvent() webhook.PushEvent {
	name := b.fullName
	if i := strings.LastIndex(name, "/"); i >= 0 && i < len(name)-1 {
		name = name[i+1:]
	}
	return webhook.PushEvent{
		Ref:     b.ref,
		BaseRef: b.baseRef,
		HeadCommit: &webhook.HeadCommit{
			Message:   b.message,
			Timestamp: "2024-05-01T12:00:00Z",
		},
		Repository: webhook.Repository{FullName: b.fullName, Name: name},
		Pusher:     webhook.Pusher{Name: b.pusher, Email: b.pusher + "@example.com"},
	}
}

// BuildJSON serializes the event as it would be delivered.
func (b *PushEventBuilder) BuildJSON() []byte {
	data, err := json.Marshal(b.BuildEvent())
	if err != nil {
		panic(err)
	}
	return data
}

// Reset clears the builder state, allowing it to be reused.
func (b *PushEventBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.ref = "refs/branches/main"
	b.baseRef = nil
	b.fullName = "acme/widgets"
	b.message = "Update README"
	b.pusher = "octocat"
	return b
}

// Clone creates a deep copy of the PushEventBuilder.
func (b *PushEventBuilder) Clone() testkit.Builder {
	var baseRef *string
	if b.baseRef != nil {
		value := *b.baseRef
		baseRef = &value
	}
	return &PushEventBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		ref:         b.ref,
		baseRef:     baseRef,
		fullName:    b.fullName,
		message:     b.message,
		pusher:      b.pusher,
	}
}
