package httptransport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRequestLoggerSetsRequestID(t *testing.T) {
	logger := zaptest.NewLogger(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	rr := httptest.NewRecorder()
	RequestLogger(logger)(inner).ServeHTTP(rr, req)

	require.Equal(t, http.StatusTeapot, rr.Code)
	require.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}

func TestCORSShortCircuitsPreflight(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight should not reach inner handler")
	})

	req := httptest.NewRequest(http.MethodOptions, "/activities", nil)
	rr := httptest.NewRecorder()
	CORS("http://localhost:5173")(inner).ServeHTTP(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestChainAppliesOutermostFirst(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	Chain(inner, tag("outer"), tag("inner")).ServeHTTP(rr, req)

	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}
