package cms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/QuillstackMedia/quillstack-go/internal/infrastructure/observability/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	config := logging.DefaultLoggerConfig()
	config.OutputToConsole = false
	logger, err := logging.NewChanneledLogger(config)
	require.NoError(t, err)
	return logger
}

func TestExecuteSuccess(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"pageList":{"items":[{"title":"Home"}]}}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client(), testLogger(t))

	payload, err := client.Execute(context.Background(), "page-by-slug", map[string]string{
		"slug":      "home",
		"variation": "summer",
	})
	require.NoError(t, err)

	assert.Equal(t, "/page-by-slug", gotPath)
	assert.Equal(t, []string{"home"}, gotQuery["slug"])
	assert.Equal(t, []string{"summer"}, gotQuery["variation"])
	assert.JSONEq(t, `{"pageList":{"items":[{"title":"Home"}]}}`, string(payload))
}

func TestExecuteEmptyQueryName(t *testing.T) {
	client := NewClient("http://localhost:0", nil, testLogger(t))

	_, err := client.Execute(context.Background(), "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be empty")
}

func TestExecuteNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client(), testLogger(t))

	_, err := client.Execute(context.Background(), "articles", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "articles")
	assert.Contains(t, err.Error(), "500")
}

func TestExecuteTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, nil, testLogger(t))

	_, err := client.Execute(context.Background(), "articles", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "articles")
}

func TestExecuteMalformedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client(), testLogger(t))

	_, err := client.Execute(context.Background(), "articles", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed envelope")
}

func TestExecuteEnvelopeWithoutData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"something":"else"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client(), testLogger(t))

	_, err := client.Execute(context.Background(), "articles", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without data")
}

func TestExecuteServerReportedErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"query not registered"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client(), testLogger(t))

	_, err := client.Execute(context.Background(), "missing-query", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query not registered")
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot) // any response counts as reachable
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client(), testLogger(t))
	require.NoError(t, client.Ping(context.Background()))

	srv.Close()
	down := NewClient(srv.URL, nil, testLogger(t))
	require.Error(t, down.Ping(context.Background()))
}
