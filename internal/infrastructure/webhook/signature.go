package webhook

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	logger "github.com/sirupsen/logrus"
)

const (
	// UserAgentPrefix is how GitHub identifies its hook deliveries.
	UserAgentPrefix = "GitHub-Hookshot/"

	SignatureHeader = "X-Hub-Signature-256"
	signaturePrefix = "sha256="
)

var errSignatureMismatch = errors.New("signature mismatch")

// SignatureGuard rejects POST requests that do not come from the hook agent
// or, when secret is set, whose body does not match X-Hub-Signature-256.
// The verified body is handed to next unchanged. An empty secret skips
// signature verification entirely; that mode is insecure.
func SignatureGuard(secret string, maxBodyBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			if !strings.HasPrefix(r.Header.Get("User-Agent"), UserAgentPrefix) {
				logger.Warnf("Rejected delivery from user agent %q", r.Header.Get("User-Agent"))
				respondError(w, NewInvalidUserAgent())
				return
			}

			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			signature := r.Header.Get(SignatureHeader)
			if signature == "" {
				logger.Warn("Rejected delivery without signature")
				respondError(w, NewInvalidSignature())
				return
			}

			body, err := readBody(w, r, maxBodyBytes)
			if err != nil {
				respondError(w, NewMalformedEventBody(err.Error()))
				return
			}

			if err = VerifySignature(body, signature, secret); err != nil {
				logger.Warnf("Rejected delivery: %v", err)
				respondError(w, NewInvalidSignature())
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			r.ContentLength = int64(len(body))
			next.ServeHTTP(w, r)
		})
	}
}

// VerifySignature checks a "sha256=<hex>" header value against the HMAC-SHA256
// of body keyed with secret, in constant time.
func VerifySignature(body []byte, signature, secret string) error {
	hexDigest, found := strings.CutPrefix(signature, signaturePrefix)
	if !found {
		return fmt.Errorf("signature lacks %q prefix", signaturePrefix)
	}

	actual, err := hex.DecodeString(hexDigest)
	if err != nil {
		return fmt.Errorf("signature is not hex encoded: %w", err)
	}

	if !hmac.Equal(ComputeSignature(body, secret), actual) {
		return errSignatureMismatch
	}
	return nil
}

// ComputeSignature returns the raw HMAC-SHA256 of body keyed with secret.
func ComputeSignature(body []byte, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return mac.Sum(nil)
}

// FormatSignature renders a digest the way GitHub sends it.
func FormatSignature(digest []byte) string {
	return signaturePrefix + hex.EncodeToString(digest)
}

// readBody drains the request body, refusing more than limit bytes.
func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("body exceeds %d bytes", tooLarge.Limit)
		}
		return nil, err
	}
	return body, nil
}
