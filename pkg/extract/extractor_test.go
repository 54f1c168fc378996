package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<!DOCTYPE html>
<html>
<body>
	<div class="product">
		<span id="price">  $19.99 </span>
		<span class="stock">In Stock</span>
	</div>
	<ul>
		<li class="item">first</li>
		<li class="item">second</li>
	</ul>
</body>
</html>`

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(testPage)) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestExtractor_Extract(t *testing.T) {
	srv := testServer(t)
	e := New(0, "")

	value, err := e.Extract(context.Background(), srv.URL, "#price")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, "$19.99", *value, "whitespace trimmed")
}

func TestExtractor_ExtractFirstMatch(t *testing.T) {
	srv := testServer(t)
	e := New(0, "")

	value, err := e.Extract(context.Background(), srv.URL, ".item")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, "first", *value)
}

func TestExtractor_NoMatchIsNotError(t *testing.T) {
	srv := testServer(t)
	e := New(0, "")

	value, err := e.Extract(context.Background(), srv.URL, "#does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestExtractor_InvalidSelector(t *testing.T) {
	e := New(0, "")

	_, err := e.Extract(context.Background(), "https://example.com", "div[unclosed")
	require.Error(t, err)
	assert.Equal(t, KindSelector, KindOf(err))
}

func TestExtractor_InvalidURL(t *testing.T) {
	e := New(0, "")

	_, err := e.Extract(context.Background(), "not-a-url", "#price")
	require.Error(t, err)
	assert.Equal(t, KindNetwork, KindOf(err))
}

func TestExtractor_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	e := New(0, "")
	_, err := e.Extract(context.Background(), srv.URL, "#price")
	require.Error(t, err)
	assert.Equal(t, KindHTTP, KindOf(err))
	assert.Contains(t, err.Error(), "404")
}

func TestExtractor_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	e := New(50*time.Millisecond, "")
	_, err := e.Extract(context.Background(), srv.URL, "#price")
	require.Error(t, err)
	assert.Equal(t, KindTimeout, KindOf(err))
}

func TestExtractor_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	e := New(0, "")
	_, err := e.Extract(ctx, srv.URL, "#price")
	require.Error(t, err)
	assert.Equal(t, KindTimeout, KindOf(err))
}

func TestExtractor_UserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(testPage)) //nolint:errcheck
	}))
	defer srv.Close()

	e := New(0, "pagewatch-test/1.0")
	_, err := e.Extract(context.Background(), srv.URL, "#price")
	require.NoError(t, err)
	assert.Equal(t, "pagewatch-test/1.0", gotUA)
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(assert.AnError))
}
