package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Limit(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	doRequest := func(limited http.Handler, remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/rules", nil)
		req.RemoteAddr = remoteAddr
		recorder := httptest.NewRecorder()
		limited.ServeHTTP(recorder, req)
		return recorder
	}

	t.Run("blocks a client that exceeds the limit", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute, time.Minute)
		limited := limiter.Limit(handler)

		first := doRequest(limited, "10.0.0.1:50000")
		assert.Equal(t, http.StatusOK, first.Code)

		second := doRequest(limited, "10.0.0.1:50001")
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.Equal(t, blockedClientMessage, strings.TrimSpace(second.Body.String()))

		third := doRequest(limited, "10.0.0.1:50002")
		assert.Equal(t, http.StatusTooManyRequests, third.Code)
		assert.Equal(t, blockedClientMessage, strings.TrimSpace(third.Body.String()))
	})

	t.Run("tracks clients independently", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute, time.Minute)
		limited := limiter.Limit(handler)

		assert.Equal(t, http.StatusOK, doRequest(limited, "10.0.0.1:50000").Code)
		assert.Equal(t, http.StatusTooManyRequests, doRequest(limited, "10.0.0.1:50001").Code)
		assert.Equal(t, http.StatusOK, doRequest(limited, "10.0.0.2:50000").Code)
	})

	t.Run("unblocks once the block window elapses", func(t *testing.T) {
		limiter := NewRateLimiter(1, 5*time.Millisecond, 10*time.Millisecond)
		limited := limiter.Limit(handler)

		assert.Equal(t, http.StatusOK, doRequest(limited, "10.0.0.3:50000").Code)
		assert.Equal(t, http.StatusTooManyRequests, doRequest(limited, "10.0.0.3:50001").Code)

		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, http.StatusOK, doRequest(limited, "10.0.0.3:50002").Code)
	})

	t.Run("rejects a remote address without a port", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute, time.Minute)
		limited := limiter.Limit(handler)

		assert.Equal(t, http.StatusInternalServerError, doRequest(limited, "10.0.0.4").Code)
	})
}
