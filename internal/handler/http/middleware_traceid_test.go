package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-api-starter/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// The trace ID must be the same in the response header and in both access
// log entries of the request.
func TestWithTraceID_PropagatesToAccessLog(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantKept bool
	}{
		{name: "incoming id is kept", incoming: "client-trace.1", wantKept: true},
		{name: "missing id is generated"},
		{name: "id with newline is replaced", incoming: "x\n{\"level\":\"fatal\"}"},
		{name: "overlong id is replaced", incoming: strings.Repeat("t", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.health.EXPECT().Check(gomock.Any()).Return(nil)

			var headers []string
			if tt.incoming != "" {
				headers = []string{traceIDHeader, tt.incoming}
			}
			rec := env.do(http.MethodGet, "/api/health", "", headers...)
			require.Equal(t, http.StatusOK, rec.Code)

			traceID := rec.Header().Get(traceIDHeader)
			if tt.wantKept {
				assert.Equal(t, tt.incoming, traceID)
			} else {
				parsed, err := uuid.Parse(traceID)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), parsed.Version())
			}

			entries := env.logEntries(t)
			require.Len(t, entries, 2)
			assert.Equal(t, "request received", entries[0]["message"])
			assert.Equal(t, "response sent", entries[1]["message"])
			for _, entry := range entries {
				assert.Equal(t, traceID, entry["trace_id"])
			}
		})
	}
}

func TestWithTraceID_RequestsGetDistinctIDs(t *testing.T) {
	env := newTestEnv(t)
	env.health.EXPECT().Check(gomock.Any()).Return(nil).Times(2)

	first := env.do(http.MethodGet, "/api/health", "").Header().Get(traceIDHeader)
	second := env.do(http.MethodGet, "/api/health", "").Header().Get(traceIDHeader)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestWithTraceID_ReplacedIDReachesHandlers(t *testing.T) {
	buf := &bytes.Buffer{}
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}

	var seen string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(traceIDHeader)
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "bad id")
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	traceID := rec.Header().Get(traceIDHeader)
	assert.NotEqual(t, "bad id", traceID)
	assert.Equal(t, traceID, seen)
	assert.Contains(t, buf.String(), `"trace_id":"`+traceID+`"`)
	assert.NotContains(t, buf.String(), "bad id")
}
