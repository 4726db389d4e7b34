package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// File cache for rendered public portfolio pages. One portfolio maps to
// exactly one public page, so the slug is the whole key.

const cacheRoot = "cache"

// GetCachePath returns the cache file path for a portfolio slug.
func GetCachePath(slug string) string {
	hash := xxhash.Sum64String(slug)
	return filepath.Join(cacheRoot, fmt.Sprintf("%s_%016x.html", slug, hash))
}

func ensureCacheDir() error {
	return os.MkdirAll(cacheRoot, 0755)
}

// Write stores rendered HTML for a slug.
func Write(slug, html string) error {
	if err := ensureCacheDir(); err != nil {
		return err
	}
	return os.WriteFile(GetCachePath(slug), []byte(html), 0644)
}

// Read returns cached HTML if present and younger than maxAge.
func Read(slug string, maxAge time.Duration) (string, bool) {
	cachePath := GetCachePath(slug)

	info, err := os.Stat(cachePath)
	if err != nil {
		return "", false
	}

	if time.Since(info.ModTime()) > maxAge {
		return "", false
	}

	content, err := os.ReadFile(cachePath)
	if err != nil {
		return "", false
	}

	return string(content), true
}

// ClearPortfolio drops the cached page for a slug. Called whenever a save,
// publish toggle or delete could change what the public URL serves.
func ClearPortfolio(slug string) error {
	err := os.Remove(GetCachePath(slug))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ClearOldCache removes cached pages older than maxAge.
func ClearOldCache(maxAge time.Duration) error {
	return filepath.Walk(cacheRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}

		if info.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		if time.Since(info.ModTime()) > maxAge {
			os.Remove(path)
		}

		return nil
	})
}
