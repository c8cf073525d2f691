package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/feral-file/ff-propfi-ledger/internal/adapter"
)

// SignaturePrefix prefixes the hex HMAC in the signature header
const SignaturePrefix = "sha256="

// GenerateSignedPayload serializes event as canonical JSON and signs it with HMAC-SHA256.
// Returns the JSON payload and the signature header value.
func GenerateSignedPayload(json adapter.JSON, secret string, event WebhookEvent, timestamp int64) (payload []byte, signature string, err error) {
	payload, err = json.MarshalCanonical(event)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal event: %w", err)
	}

	return payload, Sign(secret, timestamp, event.EventID, payload), nil
}

// Sign computes the signature header value over {timestamp}.{event_id}.{body}
func Sign(secret string, timestamp int64, eventID string, payload []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	_, _ = fmt.Fprintf(h, "%d.%s.", timestamp, eventID)
	h.Write(payload)

	return SignaturePrefix + hex.EncodeToString(h.Sum(nil))
}

// VerifySignature checks a signature header value in constant time
func VerifySignature(secret string, timestamp int64, eventID string, payload []byte, signature string) bool {
	if !strings.HasPrefix(signature, SignaturePrefix) {
		return false
	}
	expected := Sign(secret, timestamp, eventID, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}
