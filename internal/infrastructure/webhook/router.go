package webhook

import (
	"context"
	"net/http"
	"unicode/utf8"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hookrunner/internal/domain/commands"
	"github.com/rios0rios0/hookrunner/internal/domain/entities"
)

const (
	EventHeader    = "X-GitHub-Event"
	DeliveryHeader = "X-GitHub-Delivery"

	eventPing = "ping"
	eventPush = "push"
)

// EventRouter dispatches deliveries on their event header.
type EventRouter struct {
	settings    *entities.Settings
	synchronize commands.Synchronize
}

// NewEventRouter creates an EventRouter that synchronizes pushed repositories.
func NewEventRouter(settings *entities.Settings, synchronize commands.Synchronize) *EventRouter {
	return &EventRouter{settings: settings, synchronize: synchronize}
}

func (h *EventRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	values := r.Header.Values(EventHeader)
	if len(values) == 0 {
		respondError(w, NewMissingEventHeader())
		return
	}
	event := values[0]
	if !utf8.ValidString(event) {
		respondError(w, NewMalformedEventHeader())
		return
	}

	switch event {
	case eventPing:
		h.handlePing(w, r)
	case eventPush:
		h.handlePush(w, r)
	default:
		respondError(w, NewUnsupportedEventHeader(event))
	}
}

func (h *EventRouter) handlePing(w http.ResponseWriter, r *http.Request) {
	var event PingEvent
	if errCode := h.decode(w, r, &event); errCode != nil {
		respondError(w, errCode)
		return
	}

	logger.Infof("Ping received for %s: %s", event.Repository.FullName, event.Zen)
	respondJSON(w, http.StatusOK, event)
}

func (h *EventRouter) handlePush(w http.ResponseWriter, r *http.Request) {
	var event PushEvent
	if errCode := h.decode(w, r, &event); errCode != nil {
		respondError(w, errCode)
		return
	}

	reference, err := entities.ParseReference(event.Ref)
	if err != nil {
		respondError(w, NewMalformedEventBodyField("ref", err.Error()))
		return
	}

	repository, err := entities.ParseRepositoryPath(event.Repository.FullName)
	if err != nil {
		respondError(w, NewMalformedEventBodyField("repository.full_name", err.Error()))
		return
	}

	logger.WithFields(logger.Fields{
		"repository": repository.FullName(),
		"reference":  reference.Name(),
		"pusher":     event.Pusher.Name,
	}).Info("Push received")

	// a dropped delivery connection must not abort git halfway through an update
	ctx := context.WithoutCancel(r.Context())
	err = h.synchronize.Execute(ctx, h.settings, commands.SynchronizeOptions{
		Backend:    entities.NewGitHubBackend(),
		Repository: repository,
		Reference:  reference,
	})
	if err != nil {
		logger.Errorf("Synchronization of %s failed: %v", repository.FullName(), err)
		respondError(w, NewUnhandledError(err.Error()))
		return
	}

	respondJSON(w, http.StatusOK, event)
}

func (h *EventRouter) decode(w http.ResponseWriter, r *http.Request, event validatable) *ErrorCode {
	body, err := readBody(w, r, h.settings.MaxBodyBytes)
	if err != nil {
		return NewMalformedEventBody(err.Error())
	}
	if err = decodeEvent(body, event); err != nil {
		return NewMalformedEventBody(err.Error())
	}
	return nil
}
