package dedup

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

const historyFile = "compiled_links.json"

type seenEntry struct {
	URL       string `json:"url"`
	Timestamp int64  `json:"timestamp"`
}

// JobCache remembers the links reported by earlier compilations so a run
// can tell which jobs are new. It never filters records.
type JobCache struct {
	mu       sync.Mutex
	filePath string
	seen     map[string]int64
	ttl      time.Duration
	now      func() time.Time
}

const defaultTTL = 30 * 24 * time.Hour

// NewJobCache creates or loads the history kept in cacheDir.
func NewJobCache(cacheDir string) *JobCache {
	return newJobCache(cacheDir, defaultTTL, time.Now)
}

func newJobCache(cacheDir string, ttl time.Duration, now func() time.Time) *JobCache {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create cache directory: %v", err)
	}
	jc := &JobCache{
		filePath: filepath.Join(cacheDir, historyFile),
		seen:     make(map[string]int64),
		ttl:      ttl,
		now:      now,
	}
	jc.load()
	return jc
}

// IsSeen checks if a link was reported by an earlier run.
func (jc *JobCache) IsSeen(url string) bool {
	jc.mu.Lock()
	defer jc.mu.Unlock()
	_, exists := jc.seen[url]
	return exists
}

// Len returns the number of remembered links.
func (jc *JobCache) Len() int {
	jc.mu.Lock()
	defer jc.mu.Unlock()
	return len(jc.seen)
}

// Add registers links and persists the cache when something changed.
func (jc *JobCache) Add(urls []string) error {
	jc.mu.Lock()
	defer jc.mu.Unlock()

	ts := jc.now().UnixMilli()
	changed := false
	for _, url := range urls {
		if url == "" {
			continue
		}
		if _, exists := jc.seen[url]; !exists {
			jc.seen[url] = ts
			changed = true
		}
	}

	if !changed {
		return nil
	}
	return jc.save()
}

// load reads the cache from disk, dropping expired entries.
func (jc *JobCache) load() {
	data, err := os.ReadFile(jc.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read %s: %v", historyFile, err)
		}
		return
	}

	var entries []seenEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("⚠️ Failed to parse %s: %v", historyFile, err)
		return
	}

	cutoff := jc.now().Add(-jc.ttl).UnixMilli()
	loaded := 0
	for _, e := range entries {
		if e.Timestamp > cutoff {
			jc.seen[e.URL] = e.Timestamp
			loaded++
		}
	}
	log.Printf("📋 Loaded %d previously compiled links (%d expired and removed)", loaded, len(entries)-loaded)
}

// save writes the current cache to disk. Callers hold jc.mu.
func (jc *JobCache) save() error {
	entries := make([]seenEntry, 0, len(jc.seen))
	for url, ts := range jc.seen {
		entries = append(entries, seenEntry{URL: url, Timestamp: ts})
	}
	sort.Slice(entries, func(i, k int) bool { return entries[i].URL < entries[k].URL })
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(jc.filePath, data, 0644); err != nil {
		return err
	}
	log.Printf("💾 Saved %d compiled links to history", len(entries))
	return nil
}
