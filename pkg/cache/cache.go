package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/edwin0cheng/omega-tile/pkg/wtileerr"
)

// Cache is a content-addressed on-disk store. It is safe for the
// content-addressed scheme itself (equal keys imply equal content) but
// performs no locking of its own; Clear must not run concurrently with
// a build.
type Cache struct {
	dir string
}

// Open records dir as the cache's backing directory. The directory need
// not exist yet; it is created lazily on the first Put.
func Open(dir string) *Cache {
	return &Cache{dir: dir}
}

// Dir returns the cache's backing directory.
func (c *Cache) Dir() string {
	return c.dir
}

func (c *Cache) pathFor(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".png")
}

// Get looks up key and decodes its PNG entry. A cache miss — whether
// because no entry exists, the file is unreadable, or it is not a
// valid PNG — is reported as (nil, false), never as an error. A nil
// *Cache is the "no cache" case (spec's optional cache? parameter) and
// always reports a miss.
func (c *Cache) Get(key string) (image.Image, bool) {
	if c == nil {
		return nil, false
	}

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, false
	}
	return img, true
}

// Put PNG-encodes img and stores it under key. The write goes to a
// temp file in the same directory and is renamed into place, so a
// concurrent reader never observes a partially written entry. A nil
// *Cache silently discards the write — callers that opted out of
// caching get a no-op, not an error.
func (c *Cache) Put(key string, img image.Image) error {
	if c == nil {
		return nil
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return wtileerr.Wrap(wtileerr.IO, "fail to create cache directory", err)
	}

	tmp, err := os.CreateTemp(c.dir, "tmp-*.png")
	if err != nil {
		return wtileerr.Wrap(wtileerr.IO, "fail to create temp cache entry", err)
	}
	tmpPath := tmp.Name()

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return wtileerr.Wrap(wtileerr.IO, "fail to encode cache entry", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return wtileerr.Wrap(wtileerr.IO, "fail to close temp cache entry", err)
	}

	if err := os.Rename(tmpPath, c.pathFor(key)); err != nil {
		os.Remove(tmpPath)
		return wtileerr.Wrap(wtileerr.IO, "fail to finalize cache entry", err)
	}
	return nil
}

// Clear removes every entry (file or subdirectory) in the cache
// directory. A missing directory is not an error. A nil *Cache has
// nothing to clear.
func (c *Cache) Clear() error {
	if c == nil {
		return nil
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return wtileerr.Wrap(wtileerr.IO, "fail to list cache directory", err)
	}

	for _, entry := range entries {
		full := filepath.Join(c.dir, entry.Name())
		if entry.IsDir() {
			if err := os.RemoveAll(full); err != nil {
				return wtileerr.Wrap(wtileerr.IO, "fail to remove cache subdirectory", err)
			}
			continue
		}
		if err := os.Remove(full); err != nil {
			return wtileerr.Wrap(wtileerr.IO, "fail to remove cache entry", err)
		}
	}
	return nil
}
