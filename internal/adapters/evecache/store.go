package evecache

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	defaultBinariesURL  = "https://binaries.eveonline.com"
	defaultResourcesURL = "https://resources.eveonline.com"
)

// Downloader implements ports.ResourceStore against the game CDN, downloading
// resources on demand into a local cache directory. There is no retry or
// backoff: any network failure is fatal and re-running is the recovery
// mechanism.
type Downloader struct {
	dir       string
	client    *http.Client
	userAgent string

	binariesURL  string
	resourcesURL string

	version  string
	appIndex map[string]indexEntry // "app:/..." keys, served from binaries
	resIndex map[string]indexEntry // "res:/..." keys, served from resources
}

var _ ports.ResourceStore = (*Downloader)(nil)

// Initialize loads the client version and both resource indices from the CDN.
// Downloaded files are cached under dir.
func Initialize(dir, userAgent string) (*Downloader, error) {
	return initialize(dir, userAgent, defaultBinariesURL, defaultResourcesURL)
}

func initialize(dir, userAgent, binariesURL, resourcesURL string) (*Downloader, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, zerr.Wrap(err, "failed to create resource cache directory")
	}

	d := &Downloader{
		dir:          dir,
		client:       &http.Client{},
		userAgent:    userAgent,
		binariesURL:  binariesURL,
		resourcesURL: resourcesURL,
	}

	meta, err := d.get(binariesURL + "/eveclient_TQ.json")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to fetch client version")
	}
	var client struct {
		Build     string `json:"build"`
		Protected bool   `json:"protected"`
	}
	if err := json.Unmarshal(meta, &client); err != nil {
		return nil, zerr.Wrap(err, "failed to parse client version document")
	}
	if client.Protected {
		return nil, zerr.New("game server is protected; resources are not downloadable")
	}
	d.version = client.Build

	appIndexText, err := d.fetchFile("eveonline_"+d.version+".txt", binariesURL+"/eveonline_"+d.version+".txt")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to fetch client index")
	}
	if d.appIndex, err = parseIndex(string(appIndexText)); err != nil {
		return nil, err
	}

	resIndexText, err := d.fetch("app:/resfileindex.txt")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to fetch resource index")
	}
	if d.resIndex, err = parseIndex(string(resIndexText)); err != nil {
		return nil, err
	}

	return d, nil
}

// Version returns the game client version the indices were loaded for.
func (d *Downloader) Version() string { return d.version }

// HasResource reports whether the key is listed in the resource index.
func (d *Downloader) HasResource(key string) bool {
	_, _, err := d.lookup(key)
	return err == nil
}

// HashOf returns the md5 content hash recorded for the resource. The payload
// is not downloaded.
func (d *Downloader) HashOf(key string) (string, error) {
	entry, _, err := d.lookup(key)
	if err != nil {
		return "", err
	}
	return entry.md5, nil
}

// PathOf returns a local path for the resource, downloading it on first use.
func (d *Downloader) PathOf(key string) (string, error) {
	entry, baseURL, err := d.lookup(key)
	if err != nil {
		return "", err
	}
	return d.ensureCached(entry.path, baseURL+"/"+entry.path)
}

// lookup resolves a key to its index entry and the CDN base URL serving it.
func (d *Downloader) lookup(key string) (indexEntry, string, error) {
	normalized := normalizeKey(key)
	if strings.HasPrefix(normalized, "app:/") {
		if entry, ok := d.appIndex[normalized]; ok {
			return entry, d.binariesURL, nil
		}
	} else if entry, ok := d.resIndex[normalized]; ok {
		return entry, d.resourcesURL, nil
	}
	return indexEntry{}, "", zerr.With(zerr.Wrap(domain.ErrResourceNotFound, "lookup resource"), "resource", key)
}

// ensureCached downloads the file to the cache directory unless it is already
// present, and returns its local path.
func (d *Downloader) ensureCached(relPath, url string) (string, error) {
	localPath := filepath.Join(d.dir, filepath.FromSlash(relPath))
	if _, err := os.Stat(localPath); err == nil {
		return localPath, nil
	}

	data, err := d.get(url)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(localPath), 0o750); err != nil {
		return "", zerr.Wrap(err, "failed to create cache subdirectory")
	}
	if err := os.WriteFile(localPath, data, 0o644); err != nil { //nolint:gosec // cache files are world-readable images
		return "", zerr.Wrap(err, "failed to write cached resource")
	}
	return localPath, nil
}

// fetchFile is ensureCached followed by a read of the cached bytes.
func (d *Downloader) fetchFile(relPath, url string) ([]byte, error) {
	localPath, err := d.ensureCached(relPath, url)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(localPath) //nolint:gosec // path is inside the cache directory
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read cached resource")
	}
	return data, nil
}

// fetch resolves a resource key and returns its bytes, caching on disk.
func (d *Downloader) fetch(key string) ([]byte, error) {
	entry, baseURL, err := d.lookup(key)
	if err != nil {
		return nil, err
	}
	return d.fetchFile(entry.path, baseURL+"/"+entry.path)
}

// get performs a plain HTTP GET with the configured user agent.
func (d *Downloader) get(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build request")
	}
	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "download failed"), "url", url)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode != http.StatusOK {
		return nil, zerr.With(zerr.With(zerr.New("unexpected HTTP status"), "status", resp.Status), "url", url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read response body"), "url", url)
	}
	return data, nil
}
