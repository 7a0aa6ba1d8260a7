package http

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/duka-eats/payflow/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const signatureHeaderKey = "X-Callback-Signature"
const rawBodyKey = "raw_body"

// webhookAuth verifies the provider's HMAC-SHA256 signature over the raw
// request body before any state may change. The verified body is stashed in
// the context so the handler does not re-read the stream.
func webhookAuth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		signature := ctx.Request.Header.Get(signatureHeaderKey)
		if len(signature) == 0 {
			handleAbort(ctx, domain.ErrUnauthenticated)
			return
		}

		body, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			handleAbort(ctx, domain.ErrBadRequest)
			return
		}
		ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(body)
		expected := hex.EncodeToString(mac.Sum(nil))

		if !hmac.Equal([]byte(expected), []byte(signature)) {
			handleAbort(ctx, domain.ErrUnauthenticated)
			return
		}

		ctx.Set(rawBodyKey, body)

		ctx.Next()
	}
}

func getRawBody(ctx *gin.Context) []byte {
	return ctx.MustGet(rawBodyKey).([]byte)
}
