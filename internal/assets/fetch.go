// Package assets resolves asset sources to local files.
package assets

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"
)

// ErrNoSource is returned for an empty source string.
var ErrNoSource = errors.New("assets: empty source")

// Fetch returns a local path for src. Existing local files are used in
// place. Anything else is handed to go-getter (http, s3, gcs, git, or a
// forced "file::" source) and stored under cacheDir, keyed by the source,
// so later runs reuse the download.
func Fetch(ctx context.Context, src, cacheDir string) (string, error) {
	if src == "" {
		return "", ErrNoSource
	}
	if fi, err := os.Stat(src); err == nil && !fi.IsDir() {
		return src, nil
	}

	dst := CachePath(src, cacheDir)
	if _, err := os.Stat(dst); err == nil {
		return dst, nil
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	pwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	client := &getter.Client{
		Ctx:     ctx,
		Src:     src,
		Dst:     dst,
		Pwd:     pwd,
		Mode:    getter.ClientModeFile,
		Getters: getters(),
	}
	if err := client.Get(); err != nil {
		return "", fmt.Errorf("fetch %s: %w", src, err)
	}
	return dst, nil
}

// getters copies file sources into the cache instead of symlinking them.
func getters() map[string]getter.Getter {
	out := make(map[string]getter.Getter, len(getter.Getters))
	for k, v := range getter.Getters {
		out[k] = v
	}
	out["file"] = &getter.FileGetter{Copy: true}
	return out
}

// CachePath is where Fetch stores a downloaded src.
func CachePath(src, cacheDir string) string {
	sum := sha256.Sum256([]byte(src))
	name := hex.EncodeToString(sum[:8]) + filepath.Ext(src)
	return filepath.Join(cacheDir, name)
}
