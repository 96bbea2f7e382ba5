package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hanstar/webfront/internal/logctx"
)

// Тесты мидлваров веб-оболочки.
//
// Покрытие:
//   - RequestID: генерация и прокидывание X-Request-Id;
//   - Logging: request-scoped логгер в контексте;
//   - Recover: паника не роняет сервер и даёт 500;
//   - Timeout: дедлайн появляется, существующий уважается.

// TestRequestID_Generated — при отсутствии заголовка id генерируется
// и попадает в запрос и в ответ.
func TestRequestID_Generated(t *testing.T) {
	t.Parallel()

	var inner string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = r.Header.Get("X-Request-Id")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, inner)
	require.Equal(t, inner, rec.Header().Get("X-Request-Id"))
}

// TestRequestID_Propagated — входящий id сохраняется как есть.
func TestRequestID_Propagated(t *testing.T) {
	t.Parallel()

	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "abc-123", r.Header.Get("X-Request-Id"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc-123")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))
}

// TestLogging_LoggerInContext — обработчику доступен логгер из контекста.
func TestLogging_LoggerInContext(t *testing.T) {
	t.Parallel()

	h := Logging(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NotNil(t, logctx.From(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

// TestRecover_PanicTo500 — паника обработчика превращается в 500.
func TestRecover_PanicTo500(t *testing.T) {
	t.Parallel()

	h := Recover()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

// TestTimeout — дедлайн навешивается, существующий не перетирается.
func TestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("sets_deadline", func(t *testing.T) {
		t.Parallel()

		h := Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := r.Context().Deadline()
			require.True(t, ok)
		}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})

	t.Run("noop_when_zero", func(t *testing.T) {
		t.Parallel()

		h := Timeout(0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := r.Context().Deadline()
			require.False(t, ok)
		}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
