package apikey

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"
)

// DefaultWindow is how long a generated key stays current.
const DefaultWindow = time.Hour

// ErrNoSecret is returned when a generator is built without a secret.
var ErrNoSecret = errors.New("frontend key secret is empty")

// Generator derives short-lived frontend keys from a shared secret. A key is
// the hex HMAC-SHA256 of the index of the time window it was made in.
type Generator struct {
	secret []byte
	window time.Duration
}

// New creates a Generator. Windows shorter than a millisecond fall back to
// DefaultWindow.
func New(secret string, window time.Duration) (*Generator, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if window < time.Millisecond {
		window = DefaultWindow
	}
	return &Generator{secret: []byte(secret), window: window}, nil
}

// Window returns the key rotation period.
func (g *Generator) Window() time.Duration {
	return g.window
}

// Key returns the key valid for the window containing now.
func (g *Generator) Key(now time.Time) string {
	return g.keyFor(g.windowIndex(now))
}

// Verify reports whether key matches the window containing now or one of
// its neighbours, which absorbs client clock skew and rotation mid-request.
func (g *Generator) Verify(key string, now time.Time) bool {
	if key == "" {
		return false
	}
	idx := g.windowIndex(now)
	ok := false
	for _, i := range []int64{idx - 1, idx, idx + 1} {
		if hmac.Equal([]byte(key), []byte(g.keyFor(i))) {
			ok = true
		}
	}
	return ok
}

// Expires returns the end of the window containing now.
func (g *Generator) Expires(now time.Time) time.Time {
	next := (g.windowIndex(now) + 1) * int64(g.window/time.Millisecond)
	return time.UnixMilli(next).UTC()
}

func (g *Generator) windowIndex(now time.Time) int64 {
	ms := now.UnixMilli()
	w := int64(g.window / time.Millisecond)
	idx := ms / w
	if ms < 0 && ms%w != 0 {
		idx--
	}
	return idx
}

func (g *Generator) keyFor(idx int64) string {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(strconv.FormatInt(idx, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}
