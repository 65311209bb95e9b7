//go:build unit

package webhook_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/hookrunner/internal/domain/commands"
	"github.com/rios0rios0/hookrunner/internal/domain/entities"
	infraRepos "github.com/rios0rios0/hookrunner/internal/infrastructure/repositories"
	"github.com/rios0rios0/hookrunner/internal/infrastructure/webhook"
	"github.com/rios0rios0/hookrunner/test/domain/commanddoubles"
	"github.com/rios0rios0/hookrunner/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/hookrunner/test/infrastructure/repositorydoubles"
	"github.com/rios0rios0/hookrunner/test/infrastructure/webhookbuilders"
)

func TestServerHandler(t *testing.T) {
	t.Parallel()

	t.Run("should describe itself on the root path", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()
		server := webhook.NewServer(settings, &commanddoubles.StubSynchronizeCommand{})
		rec := httptest.NewRecorder()

		// when
		server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		// then
		assert.Equal(t, http.StatusOK, rec.Code)
		var info webhook.ServerInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		assert.Equal(t, "hookrunner, ready for action!", info.Message)
		assert.Equal(t, entities.Version, info.Version)
	})

	t.Run("should echo the delivery id or generate one", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()
		handler := webhook.NewServer(settings, &commanddoubles.StubSynchronizeCommand{}).Handler()
		given := httptest.NewRequest(http.MethodGet, "/", nil)
		given.Header.Set(webhook.DeliveryHeader, "72d3162e-cc78-11e3-81ab-4c9367dc0958")
		withID, withoutID := httptest.NewRecorder(), httptest.NewRecorder()

		// when
		handler.ServeHTTP(withID, given)
		handler.ServeHTTP(withoutID, httptest.NewRequest(http.MethodGet, "/", nil))

		// then
		assert.Equal(t, "72d3162e-cc78-11e3-81ab-4c9367dc0958", withID.Header().Get(webhook.DeliveryHeader))
		assert.Len(t, withoutID.Header().Get(webhook.DeliveryHeader), 36)
	})

	t.Run("should only accept POST on the hook path", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()
		server := webhook.NewServer(settings, &commanddoubles.StubSynchronizeCommand{})
		rec := httptest.NewRecorder()

		// when
		server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, entities.DefaultHookPath, nil))

		// then
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("should clone a pushed repository end to end", func(t *testing.T) {
		t.Parallel()

		// given
		workDir := t.TempDir()
		spy := &doubles.SpyVersionControlRepository{CreateOnClone: true}
		engines := infraRepos.NewVersionControlRegistry()
		engines.Register(entities.GitEngineBinary, spy.Factory())
		settings := entitybuilders.NewSettingsBuilder().WithWorkingDir(workDir).WithSecret(secret).BuildSettings()
		server := webhook.NewServer(settings, commands.NewSynchronizeCommand(engines))
		body := webhookbuilders.NewPushEventBuilder().BuildJSON()

		req := httptest.NewRequest(http.MethodPost, entities.DefaultHookPath, bytes.NewReader(body))
		req.Header.Set("User-Agent", hookshotAgent)
		req.Header.Set(webhook.EventHeader, "push")
		req.Header.Set(webhook.SignatureHeader, webhook.FormatSignature(webhook.ComputeSignature(body, secret)))
		rec := httptest.NewRecorder()

		// when
		server.Handler().ServeHTTP(rec, req)

		// then
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, string(body), rec.Body.String())
		require.Equal(t, []string{"clone"}, spy.Operations())
		assert.Equal(t, "main", spy.Calls()[0].Reference)
		assert.Equal(t, "https://github.com/acme/widgets", spy.Calls()[0].RemoteURL)
		assert.DirExists(t, workDir+"/widgets")
	})

	t.Run("should reject unsigned pushes before touching the working copy", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSynchronizeCommand{}
		settings := entitybuilders.NewSettingsBuilder().WithSecret(secret).BuildSettings()
		server := webhook.NewServer(settings, stub)
		req := httptest.NewRequest(http.MethodPost, entities.DefaultHookPath,
			bytes.NewReader(webhookbuilders.NewPushEventBuilder().BuildJSON()))
		req.Header.Set("User-Agent", hookshotAgent)
		req.Header.Set(webhook.EventHeader, "push")
		rec := httptest.NewRecorder()

		// when
		server.Handler().ServeHTTP(rec, req)

		// then
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, webhook.CodeInvalidSignature, decodeErrorCode(t, rec).InternalCode)
		assert.Zero(t, stub.ExecuteCallCount())
	})
}
