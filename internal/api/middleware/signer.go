package middleware

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mr-tron/base58"
	"go.uber.org/zap"

	"github.com/feral-file/ff-propfi-ledger/internal/adapter"
	"github.com/feral-file/ff-propfi-ledger/internal/api/shared/constants"
	apierrors "github.com/feral-file/ff-propfi-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-propfi-ledger/internal/domain"
	"github.com/feral-file/ff-propfi-ledger/internal/logger"
)

// Signer authentication headers
const (
	HeaderSigner    = "X-Signer"
	HeaderTimestamp = "X-Timestamp"
	HeaderSignature = "X-Signature"
)

// SignerConfig holds signer authentication configuration
type SignerConfig struct {
	// MaxSkew bounds the distance between X-Timestamp and the server clock
	MaxSkew time.Duration
	Clock   adapter.Clock
	// Replay rejects a signed request seen before. Nil keeps accepted requests in process.
	Replay ReplayGuard
}

// SignerMessage returns the bytes a signer signs: {timestamp}.{METHOD}.{request uri}.{hex(sha256(body))}.
// The request uri is the path plus the raw query, if any.
func SignerMessage(timestamp int64, method, requestURI string, body []byte) []byte {
	digest := sha256.Sum256(body)
	return fmt.Appendf(nil, "%d.%s.%s.%s", timestamp, method, requestURI, hex.EncodeToString(digest[:]))
}

// Signer returns a gin middleware that authenticates the caller of a ledger operation by
// an ed25519 signature over the request. The verified address is stored under SIGNER_KEY.
func Signer(cfg SignerConfig) gin.HandlerFunc {
	if cfg.Replay == nil {
		cfg.Replay = NewMemoryReplayGuard(cfg.Clock)
	}
	return func(c *gin.Context) {
		signer, err := verifySigner(c, cfg)
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Signer authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			status := http.StatusUnauthorized
			if errors.Is(err, errBodyTooLarge) {
				status = http.StatusRequestEntityTooLarge
			}
			c.AbortWithStatusJSON(status, gin.H{
				"error": apierrors.NewUnauthorizedError("Signature verification failed", err.Error()),
			})
			return
		}

		c.Set(string(SIGNER_KEY), signer)
		c.Request = c.Request.WithContext(logger.WithFields(c.Request.Context(), zap.String("signer", signer.String())))
		c.Next()
	}
}

var (
	errBodyTooLarge = errors.New("request body too large")
	errReplayed     = errors.New("request was already submitted")
)

func verifySigner(c *gin.Context, cfg SignerConfig) (domain.Address, error) {
	signer, err := domain.ParseAddress(c.GetHeader(HeaderSigner))
	if err != nil {
		return domain.Address{}, fmt.Errorf("invalid %s header: %w", HeaderSigner, err)
	}

	timestamp, err := strconv.ParseInt(c.GetHeader(HeaderTimestamp), 10, 64)
	if err != nil {
		return domain.Address{}, fmt.Errorf("invalid %s header", HeaderTimestamp)
	}
	skew := cfg.Clock.Now().Sub(time.Unix(timestamp, 0))
	if skew > cfg.MaxSkew || skew < -cfg.MaxSkew {
		return domain.Address{}, fmt.Errorf("timestamp outside allowed skew of %s", cfg.MaxSkew)
	}

	signature, err := base58.Decode(c.GetHeader(HeaderSignature))
	if err != nil || len(signature) != ed25519.SignatureSize {
		return domain.Address{}, fmt.Errorf("invalid %s header", HeaderSignature)
	}

	var body []byte
	if c.Request.Body != nil {
		body, err = io.ReadAll(io.LimitReader(c.Request.Body, constants.MAX_REQUEST_BODY_SIZE+1))
		if err != nil {
			return domain.Address{}, fmt.Errorf("failed to read request body: %w", err)
		}
		if len(body) > constants.MAX_REQUEST_BODY_SIZE {
			return domain.Address{}, errBodyTooLarge
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}

	message := SignerMessage(timestamp, c.Request.Method, c.Request.URL.RequestURI(), body)
	if !ed25519.Verify(signer.PublicKey(), message, signature) {
		return domain.Address{}, errors.New("signature does not match")
	}

	// A timestamp stays acceptable for 2*MaxSkew, so the claim must outlive that window
	digest := sha256.Sum256(message)
	claimed, err := cfg.Replay.Claim(c.Request.Context(), signer.String()+":"+hex.EncodeToString(digest[:]), 2*cfg.MaxSkew+time.Second)
	if err != nil {
		return domain.Address{}, fmt.Errorf("failed to check replay: %w", err)
	}
	if !claimed {
		return domain.Address{}, errReplayed
	}

	return signer, nil
}

// SignerFromContext returns the address authenticated by Signer
func SignerFromContext(c *gin.Context) (domain.Address, bool) {
	v, ok := c.Get(string(SIGNER_KEY))
	if !ok {
		return domain.Address{}, false
	}
	signer, ok := v.(domain.Address)
	return signer, ok
}
