// Package sde loads the static data export (SDE) that supplies the
// classification inputs: item types and the group, icon, graphic, and skin
// lookup tables.
//
// The export is distributed as a zip of JSONL documents. Rather than
// materializing whole documents, each file is decoded line by line and only
// the fields the icon pipeline needs are kept.
package sde

import (
	"archive/zip"
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	defaultLatestURL  = "https://developers.eveonline.com/static-data/tranquility/latest.jsonl"
	defaultArchiveURL = "https://developers.eveonline.com/static-data/eve-online-static-data-latest-jsonl.zip"

	archiveName = "sde.zip"
)

// Skin license groups whose types must be retained even without an icon or
// graphic id; their icons come from the skin material table instead.
var skinLicenseGroups = []int32{1950, 1951, 1952, 1953, 1954, 1955, 4040}

// Loader implements ports.BuildDataSource by downloading and decoding the
// JSONL static data export, keeping a copy under the cache directory. The
// archive is only re-downloaded when the published build number changes.
type Loader struct {
	dir       string
	userAgent string
	client    *http.Client
	log       ports.Logger

	latestURL  string
	archiveURL string
}

var _ ports.BuildDataSource = (*Loader)(nil)

// NewLoader creates a Loader caching the export under dir.
func NewLoader(dir, userAgent string, log ports.Logger) *Loader {
	return &Loader{
		dir:        dir,
		userAgent:  userAgent,
		client:     &http.Client{},
		log:        log,
		latestURL:  defaultLatestURL,
		archiveURL: defaultArchiveURL,
	}
}

// Load ensures the local export matches the published build, then decodes the
// classification inputs.
func (l *Loader) Load(ctx context.Context) (*domain.IconBuildData, error) {
	archivePath := filepath.Join(l.dir, archiveName)
	if err := l.update(ctx, archivePath); err != nil {
		return nil, err
	}
	return l.parseArchive(archivePath)
}

// versionRow is the build-number record in latest.jsonl and _sde.jsonl.
type versionRow struct {
	Key         string `json:"_key"`
	BuildNumber int64  `json:"buildNumber"`
}

func parseVersion(document []byte) (int64, error) {
	scanner := bufio.NewScanner(bytes.NewReader(document))
	for scanner.Scan() {
		var row versionRow
		if err := json.Unmarshal(scanner.Bytes(), &row); err != nil {
			return 0, zerr.Wrap(err, "failed to parse version document")
		}
		if row.Key == "sde" {
			return row.BuildNumber, nil
		}
	}
	return 0, zerr.New("missing sde entry in version document")
}

// update downloads the export archive when the local copy is missing or
// behind the published build number.
func (l *Loader) update(ctx context.Context, archivePath string) error {
	latest, err := l.get(ctx, l.latestURL)
	if err != nil {
		return zerr.Wrap(err, "failed to fetch latest export version")
	}
	newVersion, err := parseVersion(latest)
	if err != nil {
		return err
	}

	if current, err := localVersion(archivePath); err == nil && current == newVersion {
		l.log.Info("static data export up to date")
		return nil
	}

	l.log.Info("downloading static data export")
	if err := os.MkdirAll(l.dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}
	archive, err := l.get(ctx, l.archiveURL)
	if err != nil {
		return zerr.Wrap(err, "failed to download static data export")
	}
	if err := os.WriteFile(archivePath, archive, 0o644); err != nil { //nolint:gosec // export archive is public data
		return zerr.Wrap(err, "failed to write static data export")
	}
	return nil
}

// localVersion reads the build number out of an already-downloaded archive.
func localVersion(archivePath string) (int64, error) {
	archive, err := zip.OpenReader(archivePath)
	if err != nil {
		return 0, err
	}
	defer archive.Close() //nolint:errcheck // Best effort close in defer

	file, err := archive.Open("_sde.jsonl")
	if err != nil {
		return 0, err
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	document, err := io.ReadAll(file)
	if err != nil {
		return 0, err
	}
	return parseVersion(document)
}

// parseArchive decodes the six export sections. The sections are independent,
// so they decode concurrently; zip entries open their own readers over the
// underlying file.
func (l *Loader) parseArchive(archivePath string) (*domain.IconBuildData, error) {
	archive, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open static data export")
	}
	defer archive.Close() //nolint:errcheck // Best effort close in defer

	data := &domain.IconBuildData{}
	var licenseSkins, skinMaterials map[int32]int32

	var group errgroup.Group
	group.Go(func() (err error) {
		data.Types, err = readTypes(&archive.Reader)
		return err
	})
	group.Go(func() (err error) {
		data.GroupCategories, err = readGroups(&archive.Reader)
		return err
	})
	group.Go(func() (err error) {
		data.IconFiles, err = readIcons(&archive.Reader)
		return err
	})
	group.Go(func() (err error) {
		data.GraphicFolders, err = readGraphics(&archive.Reader)
		return err
	})
	group.Go(func() (err error) {
		licenseSkins, err = readKeyedIDs(&archive.Reader, "skinLicenses.jsonl", "skinID")
		return err
	})
	group.Go(func() (err error) {
		skinMaterials, err = readKeyedIDs(&archive.Reader, "skinMaterials.jsonl", "skinMaterialID")
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	// Join license -> skin -> material. Some unused licenses reference skins
	// that do not exist in the data.
	data.SkinMaterials = make(map[int32]int32)
	for license, skin := range licenseSkins {
		if material, ok := skinMaterials[skin]; ok {
			data.SkinMaterials[license] = material
		}
	}

	return data, nil
}

func readTypes(archive *zip.Reader) (map[int32]domain.TypeInfo, error) {
	type typeRow struct {
		Key         int32 `json:"_key"`
		GroupID     int32 `json:"groupID"`
		IconID      int32 `json:"iconID"`
		GraphicID   int32 `json:"graphicID"`
		MetaGroupID int32 `json:"metaGroupID"`
	}

	types := make(map[int32]domain.TypeInfo)
	err := readSection(archive, "types.jsonl", func(line []byte) error {
		var row typeRow
		if err := json.Unmarshal(line, &row); err != nil {
			return err
		}
		types[row.Key] = domain.TypeInfo{
			GroupID:     row.GroupID,
			IconID:      row.IconID,
			GraphicID:   row.GraphicID,
			MetaGroupID: row.MetaGroupID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Types without icon or graphic references have no icon and are dropped
	// up front, except skin licenses whose icons resolve via the material
	// table.
	for id, info := range types {
		if info.IconID == 0 && info.GraphicID == 0 && !isSkinLicenseGroup(info.GroupID) {
			delete(types, id)
		}
	}
	return types, nil
}

func isSkinLicenseGroup(groupID int32) bool {
	for _, id := range skinLicenseGroups {
		if id == groupID {
			return true
		}
	}
	return false
}

func readGroups(archive *zip.Reader) (map[int32]int32, error) {
	return readKeyedIDs(archive, "groups.jsonl", "categoryID")
}

func readIcons(archive *zip.Reader) (map[int32]string, error) {
	type iconRow struct {
		Key      int32  `json:"_key"`
		IconFile string `json:"iconFile"`
	}

	icons := make(map[int32]string)
	err := readSection(archive, "icons.jsonl", func(line []byte) error {
		var row iconRow
		if err := json.Unmarshal(line, &row); err != nil {
			return err
		}
		icons[row.Key] = row.IconFile
		return nil
	})
	if err != nil {
		return nil, err
	}
	return icons, nil
}

func readGraphics(archive *zip.Reader) (map[int32]string, error) {
	type graphicRow struct {
		Key        int32   `json:"_key"`
		IconFolder *string `json:"iconFolder"`
	}

	folders := make(map[int32]string)
	err := readSection(archive, "graphics.jsonl", func(line []byte) error {
		var row graphicRow
		if err := json.Unmarshal(line, &row); err != nil {
			return err
		}
		if row.IconFolder != nil {
			folders[row.Key] = *row.IconFolder
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return folders, nil
}

// readKeyedIDs decodes a section whose rows carry a single numeric field of
// interest next to the key.
func readKeyedIDs(archive *zip.Reader, name, field string) (map[int32]int32, error) {
	ids := make(map[int32]int32)
	err := readSection(archive, name, func(line []byte) error {
		var row map[string]json.RawMessage
		if err := json.Unmarshal(line, &row); err != nil {
			return err
		}
		var key, value int32
		if err := json.Unmarshal(row["_key"], &key); err != nil {
			return err
		}
		raw, ok := row[field]
		if !ok {
			return nil
		}
		if err := json.Unmarshal(raw, &value); err != nil {
			return err
		}
		ids[key] = value
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// readSection streams a JSONL file from the archive line by line.
func readSection(archive *zip.Reader, name string, handle func(line []byte) error) error {
	file, err := archive.Open(name)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "missing export section"), "section", name)
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := handle(line); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to parse export row"), "section", name)
		}
	}
	if err := scanner.Err(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read export section"), "section", name)
	}
	return nil
}

// get performs a plain HTTP GET with the configured user agent.
func (l *Loader) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build request")
	}
	if l.userAgent != "" {
		req.Header.Set("User-Agent", l.userAgent)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "download failed"), "url", url)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode != http.StatusOK {
		return nil, zerr.With(zerr.New("unexpected HTTP status"), "url", url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read response body"), "url", url)
	}
	return data, nil
}
