// Package sign implements the HMAC-SHA256 request signing shared by the
// streaming handshake and the REST API.
package sign

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
)

// ExpiresLookahead is added to the current time when computing the expiry of
// a streaming handshake.
const ExpiresLookahead = 2 * time.Second

// Sign returns the lowercase hex encoded HMAC-SHA256 of payload keyed by secret.
func Sign(payload, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// Canonical sorts the key=value tokens of an encoded query string so that the
// result does not depend on the order the pairs were written in.
func Canonical(encoded string) string {
	if encoded == "" {
		return ""
	}
	params := strings.Split(encoded, "&")
	sort.Strings(params)
	return strings.Join(params, "&")
}

// CanonicalValues encodes values and returns their canonical form.
func CanonicalValues(values url.Values) string {
	return Canonical(values.Encode())
}

// Params signs the canonical form of values.
func Params(values url.Values, secret string) string {
	return Sign(CanonicalValues(values), secret)
}

// Struct encodes a parameter struct using its `url` tags and signs the
// canonical form of the result.
func Struct(v interface{}, secret string) (string, error) {
	values, err := query.Values(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode parameters: %w", err)
	}
	return Params(values, secret), nil
}

// Expires returns the handshake expiry for now in milliseconds since epoch.
func Expires(now time.Time) int64 {
	return now.Add(ExpiresLookahead).UnixMilli()
}

// Handshake signs the decimal digits of expires.
func Handshake(expires int64, secret string) string {
	return Sign(strconv.FormatInt(expires, 10), secret)
}
