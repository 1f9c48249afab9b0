package middleware

import (
	"bytes"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long keys are valid
	IdempotencyKeyTTL = 24 * time.Hour
)

type cachedResponse struct {
	code      int
	body      []byte
	expiresAt time.Time
}

// IdempotencyStore keeps replayed responses in memory, keyed by the
// client-supplied idempotency key.
type IdempotencyStore struct {
	mu      sync.Mutex
	entries map[string]cachedResponse
	ttl     time.Duration
}

// NewIdempotencyStore creates a store with the given TTL; zero means
// the default of 24 hours.
func NewIdempotencyStore(ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = IdempotencyKeyTTL
	}
	return &IdempotencyStore{
		entries: make(map[string]cachedResponse),
		ttl:     ttl,
	}
}

func (s *IdempotencyStore) get(key string) (cachedResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok {
		return cachedResponse{}, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, key)
		return cachedResponse{}, false
	}
	return entry, true
}

func (s *IdempotencyStore) put(key string, code int, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Opportunistic sweep keeps the map from growing unbounded.
	now := time.Now()
	for k, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, k)
		}
	}
	s.entries[key] = cachedResponse{code: code, body: body, expiresAt: now.Add(s.ttl)}
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response for a repeated mutation
// carrying the same Idempotency-Key. Requests without a key proceed
// normally; only 2xx responses are stored.
func Idempotency(store *IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "POST" && c.Request.Method != "PUT" && c.Request.Method != "PATCH" {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		key = c.Request.Method + " " + c.FullPath() + " " + key

		if cached, ok := store.get(key); ok {
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(cached.code, "application/json", cached.body)
			c.Abort()
			return
		}

		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			store.put(key, c.Writer.Status(), blw.body.Bytes())
		}
	}
}
