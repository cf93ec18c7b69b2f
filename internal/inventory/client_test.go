package inventory

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"steam-inventory/internal/config"
	"steam-inventory/internal/domain"
)

const testSteamID = "76561198000000000"

type recordingObserver struct {
	mu       sync.Mutex
	outcomes []string
}

func (o *recordingObserver) ObserveInventoryFetch(outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, outcome)
}

func newTestClient(t *testing.T, h http.HandlerFunc, timeout time.Duration) (*Client, *recordingObserver) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	obs := &recordingObserver{}
	c := NewClient(config.InventoryConfig{
		BaseURL:   srv.URL + "/inventory/",
		AppID:     730,
		ContextID: 2,
		Count:     2000,
		Timeout:   timeout,
	}, srv.Client(), WithObserver(obs))
	return c, obs
}

func TestClient_URL(t *testing.T) {
	c := NewClient(config.InventoryConfig{
		BaseURL: "https://steamcommunity.com/inventory/", AppID: 730, ContextID: 2, Count: 2000,
	}, nil)
	assert.Equal(t,
		"https://steamcommunity.com/inventory/76561198000000000/730/2?l=english&count=2000",
		c.URL(testSteamID))
}

func TestClient_Fetch(t *testing.T) {
	var gotPath, gotQuery string
	c, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": 1,
			"total_inventory_count": 1,
			"descriptions": [{
				"classid": "310776560",
				"instanceid": "302028390",
				"name": "AK-47 | Redline",
				"market_hash_name": "AK-47 | Redline (Field-Tested)",
				"icon_url": "abc123",
				"descriptions": [{"type": "html", "value": "Exterior: Field-Tested"}],
				"tags": [{"category": "Rarity", "localized_category_name": "Quality", "localized_tag_name": "Classified"}]
			}]
		}`))
	}, time.Second)

	inv, err := c.Fetch(context.Background(), testSteamID)
	require.NoError(t, err)

	assert.Equal(t, "/inventory/"+testSteamID+"/730/2", gotPath)
	assert.Equal(t, "l=english&count=2000", gotQuery)
	assert.Equal(t, 1, inv.TotalCount)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, "AK-47 | Redline", inv.Items[0].Name)
	assert.Equal(t, "Classified", inv.Items[0].Tags[0].LocalizedTagName)
	assert.Equal(t, []string{OutcomeOK}, obs.outcomes)
}

func TestClient_FetchFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "private", http.StatusForbidden)
			},
			check: func(t *testing.T, err error) {
				var upstream *domain.UpstreamError
				require.ErrorAs(t, err, &upstream)
				assert.Equal(t, http.StatusForbidden, upstream.StatusCode)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"descriptions": [`))
			},
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "decode inventory")
			},
		},
		{
			name: "success flag not set",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"success": 0}`))
			},
			check: func(t *testing.T, err error) {
				var upstream *domain.UpstreamError
				require.ErrorAs(t, err, &upstream)
				assert.Contains(t, upstream.Message, "success=0")
			},
		},
		{
			name: "null body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`null`))
			},
			check: func(t *testing.T, err error) {
				var upstream *domain.UpstreamError
				require.ErrorAs(t, err, &upstream)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, obs := newTestClient(t, tt.handler, time.Second)
			inv, err := c.Fetch(context.Background(), testSteamID)
			require.Error(t, err)
			tt.check(t, err)
			assert.Empty(t, inv.Items)
			assert.Equal(t, []string{OutcomeError}, obs.outcomes)
		})
	}
}

func TestClient_FetchTimeout(t *testing.T) {
	release := make(chan struct{})
	c, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, 50*time.Millisecond)
	defer close(release)

	_, err := c.Fetch(context.Background(), testSteamID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, []string{OutcomeTimeout}, obs.outcomes)
}

func TestClient_FetchRejectsInvalidID(t *testing.T) {
	called := false
	c, obs := newTestClient(t, func(http.ResponseWriter, *http.Request) { called = true }, time.Second)

	_, err := c.Fetch(context.Background(), "../../etc/passwd")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.False(t, called)
	assert.Empty(t, obs.outcomes)
}

func TestClient_FetchSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "busy", http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(config.InventoryConfig{BaseURL: srv.URL, AppID: 730, ContextID: 2, Count: 10}, srv.Client(),
		WithTracerProvider(tp))

	_, err := c.Fetch(context.Background(), testSteamID)
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "inventory.fetch", spans[0].Name())
	assert.Equal(t, trace.SpanKindClient, spans[0].SpanKind())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String("steam.id", testSteamID))
}

func TestClient_FetchPropagatesTraceContext(t *testing.T) {
	prev := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { otel.SetTextMapPropagator(prev) })

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	traceparent := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceparent <- r.Header.Get("traceparent")
		_, _ = w.Write([]byte(`{"success": 1}`))
	}))
	t.Cleanup(srv.Close)
	c := NewClient(config.InventoryConfig{BaseURL: srv.URL, AppID: 730, ContextID: 2, Count: 10}, srv.Client(),
		WithTracerProvider(tp))

	_, err := c.Fetch(context.Background(), testSteamID)
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	sc := spans[0].SpanContext()
	assert.Equal(t, "00-"+sc.TraceID().String()+"-"+sc.SpanID().String()+"-01", <-traceparent)
}
