package evecache

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
)

// cdnPair serves a minimal binaries/resources CDN with one app file and one
// resource. requests records every path hit on either server.
func cdnPair(t *testing.T, requests *[]string) (binaries, resources *httptest.Server) {
	t.Helper()

	appIndex := "app:/resfileindex.txt,ri/resfileindex_1.txt,aaaa,64,64\n" +
		"app:/bin64/exefile.exe,bin/exe_1,bbbb,128,100,700\n"
	resIndex := "res:/ui/texture/icons/7_64_1.png,af/af1_hash,cccc,512,500\n"

	binaries = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests = append(*requests, r.URL.Path)
		switch r.URL.Path {
		case "/eveclient_TQ.json":
			_, _ = w.Write([]byte(`{"build":"2799475","protected":false}`))
		case "/eveonline_2799475.txt":
			_, _ = w.Write([]byte(appIndex))
		case "/ri/resfileindex_1.txt":
			_, _ = w.Write([]byte(resIndex))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(binaries.Close)

	resources = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests = append(*requests, r.URL.Path)
		if r.URL.Path == "/af/af1_hash" {
			_, _ = w.Write([]byte("png-bytes"))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(resources.Close)

	return binaries, resources
}

func TestInitialize(t *testing.T) {
	var requests []string
	binaries, resources := cdnPair(t, &requests)

	store, err := initialize(t.TempDir(), "test-agent", binaries.URL, resources.URL)
	require.NoError(t, err)

	assert.Equal(t, "2799475", store.Version())
	assert.True(t, store.HasResource("res:/ui/texture/icons/7_64_1.png"))
	assert.True(t, store.HasResource("app:/bin64/exefile.exe"))
	assert.False(t, store.HasResource("res:/absent.png"))

	// Keys are matched case- and slash-insensitively.
	assert.True(t, store.HasResource(`RES:\UI\texture\icons\7_64_1.PNG`))
}

func TestHashOf(t *testing.T) {
	var requests []string
	binaries, resources := cdnPair(t, &requests)

	store, err := initialize(t.TempDir(), "test-agent", binaries.URL, resources.URL)
	require.NoError(t, err)
	before := len(requests)

	hash, err := store.HashOf("res:/ui/texture/icons/7_64_1.png")
	require.NoError(t, err)
	assert.Equal(t, "cccc", hash)
	// The hash comes from the index, not a download.
	assert.Len(t, requests, before)

	_, err = store.HashOf("res:/absent.png")
	assert.True(t, errors.Is(err, domain.ErrResourceNotFound))
}

func TestPathOf_DownloadsOnce(t *testing.T) {
	var requests []string
	binaries, resources := cdnPair(t, &requests)

	store, err := initialize(t.TempDir(), "test-agent", binaries.URL, resources.URL)
	require.NoError(t, err)
	before := len(requests)

	path, err := store.PathOf("res:/ui/texture/icons/7_64_1.png")
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Len(t, requests, before+1)

	// Second resolution is served from the disk cache.
	again, err := store.PathOf("res:/ui/texture/icons/7_64_1.png")
	require.NoError(t, err)
	assert.Equal(t, path, again)
	assert.Len(t, requests, before+1)
}

func TestInitialize_ProtectedServer(t *testing.T) {
	binaries := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"build":"123","protected":true}`))
	}))
	defer binaries.Close()

	_, err := initialize(t.TempDir(), "test-agent", binaries.URL, binaries.URL)
	assert.Error(t, err)
}

func TestInitialize_SendsUserAgent(t *testing.T) {
	var agent string
	binaries := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent = r.Header.Get("User-Agent")
		http.NotFound(w, r)
	}))
	defer binaries.Close()

	_, err := initialize(t.TempDir(), "icons-test/1.0", binaries.URL, binaries.URL)
	assert.Error(t, err) // 404 on the version document
	assert.Equal(t, "icons-test/1.0", agent)
}

func TestParseIndex(t *testing.T) {
	index, err := parseIndex("res:/A.png,pa/th_1,deadbeef,10,9\r\n\nres:/b.png,pb/th_2,cafe,20,18,700\n")
	require.NoError(t, err)
	require.Len(t, index, 2)
	assert.Equal(t, indexEntry{path: "pa/th_1", md5: "deadbeef", size: 10, compressed: 9}, index["res:/a.png"])
	assert.Equal(t, indexEntry{path: "pb/th_2", md5: "cafe", size: 20, compressed: 18}, index["res:/b.png"])
}

func TestParseIndex_Malformed(t *testing.T) {
	_, err := parseIndex("res:/a.png,only,three\n")
	assert.Error(t, err)

	_, err = parseIndex("res:/a.png,p,h,notanumber,9\n")
	assert.Error(t, err)
}
