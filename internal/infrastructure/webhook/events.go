package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Repository is the repository block shared by every event.
type Repository struct {
	FullName string `json:"full_name"`
	Name     string `json:"name"`
}

// PingEvent is sent once when a hook is created.
type PingEvent struct {
	Zen        string     `json:"zen"`
	Repository Repository `json:"repository"`
}

// HeadCommit is the tip commit of a push.
type HeadCommit struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Pusher identifies who pushed.
type Pusher struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PushEvent is sent for every branch or tag push.
type PushEvent struct {
	Ref        string      `json:"ref"`
	BaseRef    *string     `json:"base_ref"`
	HeadCommit *HeadCommit `json:"head_commit"`
	Repository Repository  `json:"repository"`
	Pusher     Pusher      `json:"pusher"`
}

func (e *PingEvent) validate() error {
	if e.Zen == "" {
		return missingField("zen")
	}
	return e.Repository.validate()
}

func (e *PushEvent) validate() error {
	if e.Ref == "" {
		return missingField("ref")
	}
	return e.Repository.validate()
}

func (r *Repository) validate() error {
	if r.FullName == "" {
		return missingField("repository.full_name")
	}
	if r.Name == "" {
		return missingField("repository.name")
	}
	return nil
}

func missingField(name string) error {
	return fmt.Errorf("missing field `%s`", name)
}

type validatable interface {
	validate() error
}

// decodeEvent parses body into event and checks its required fields.
func decodeEvent(body []byte, event validatable) error {
	if len(body) == 0 {
		return errors.New("empty body")
	}
	if err := json.Unmarshal(body, event); err != nil {
		return err
	}
	return event.validate()
}
