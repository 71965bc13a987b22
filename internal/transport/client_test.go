package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyoK3N/Calendly-API/pkg/errors"
)

func TestGetAppliesAuthAndHeaders(t *testing.T) {
	var gotAuth, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(&BearerAuth{}, "secret-token")
	resp, err := client.Get(context.Background(), server.URL, nil)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
}

func TestGetEncodesQueryParams(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(&NoAuth{}, "")
	params := url.Values{}
	params.Set("organization", "https://api.calendly.com/organizations/ABC")
	params.Set("count", "100")

	resp, err := client.Get(context.Background(), server.URL, params)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, "https://api.calendly.com/organizations/ABC", gotQuery.Get("organization"))
	assert.Equal(t, "100", gotQuery.Get("count"))
}

func TestTimeoutRetriesWithBackoff(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		time.Sleep(200 * time.Millisecond) // always longer than the client timeout
	}))
	defer server.Close()

	var slept []time.Duration
	client := New(&NoAuth{}, "",
		WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}),
		WithSleep(func(d time.Duration) { slept = append(slept, d) }),
	)

	_, err := client.Get(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.True(t, errors.IsTimeout(err), "expected a timeout error, got %v", err)

	// MaxRetries attempts in total, with 2^1 and 2^2 second backoffs between them.
	assert.Equal(t, int32(3), calls.Load())
	require.Len(t, slept, 2)
	assert.Equal(t, 2*time.Second, slept[0])
	assert.Equal(t, 4*time.Second, slept[1])

	var timeoutErr *errors.TimeoutError
	require.True(t, errors.As(err, &timeoutErr))
	assert.Equal(t, 3, timeoutErr.Attempts)
}

func TestNonTimeoutFailureNotRetried(t *testing.T) {
	// A connection error to a closed port must fail fast without retry.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately, so the address refuses connections

	var sleeps int
	client := New(&NoAuth{}, "", WithSleep(func(time.Duration) { sleeps++ }))

	_, err := client.Get(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.False(t, errors.IsTimeout(err))
	assert.Zero(t, sleeps, "non-timeout failures must not back off")
}

func TestBadStatusNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"upstream broke"}`))
	}))
	defer server.Close()

	client := New(&NoAuth{}, "")
	resp, err := client.Get(context.Background(), server.URL, nil)
	require.NoError(t, err, "transport surfaces the response; the decoder rejects the status")

	var target map[string]any
	err = DecodeResponse(resp, &target)
	require.Error(t, err)

	var apiErr *errors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "upstream broke")
	assert.Equal(t, int32(1), calls.Load())
}

func TestDecodeResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"collection":[{"name":"a"}],"pagination":{"next_page":""}}`))
	}))
	defer server.Close()

	client := New(&NoAuth{}, "")
	resp, err := client.Get(context.Background(), server.URL, nil)
	require.NoError(t, err)

	var page struct {
		Collection []map[string]string `json:"collection"`
		Pagination struct {
			NextPage string `json:"next_page"`
		} `json:"pagination"`
	}
	require.NoError(t, DecodeResponse(resp, &page))
	require.Len(t, page.Collection, 1)
	assert.Equal(t, "a", page.Collection[0]["name"])
	assert.Empty(t, page.Pagination.NextPage)
}

func TestDecodeResponseMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := New(&NoAuth{}, "")
	resp, err := client.Get(context.Background(), server.URL, nil)
	require.NoError(t, err)

	var target map[string]any
	err = DecodeResponse(resp, &target)
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestPostSendsJSONBody(t *testing.T) {
	var gotContentType, gotAuth string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		buf := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(buf)
		gotBody = buf
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	client := New(&HeaderAuth{}, "raw-token")
	resp, err := client.Post(context.Background(), server.URL, map[string]string{"query": "{ boards { id } }"})
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "raw-token", gotAuth, "Monday tokens are sent without a scheme prefix")
	assert.JSONEq(t, `{"query":"{ boards { id } }"}`, string(gotBody))
}
