// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"
)

// ErrBackend is returned by [FailingBackend] operations that are set to fail.
var ErrBackend = errors.New("backend unavailable")

// FailingBackend is a storage backend double whose reads and writes can be made to fail.
//
// Values written while writes succeed are kept, so it also records what was persisted.
type FailingBackend struct {
	mu        sync.Mutex
	FailGet   bool
	FailPut   bool
	values    map[string][]byte
	putCounts map[string]int
}

func NewFailingBackend() *FailingBackend {
	return &FailingBackend{values: map[string][]byte{}, putCounts: map[string]int{}}
}

func (b *FailingBackend) Get(key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailGet {
		return nil, false, ErrBackend
	}
	v, ok := b.values[key]
	return v, ok, nil
}

func (b *FailingBackend) Put(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailPut {
		return ErrBackend
	}
	b.values[key] = append([]byte(nil), value...)
	b.putCounts[key]++
	return nil
}

func (b *FailingBackend) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.values, key)
	return nil
}

func (b *FailingBackend) Keys() ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	keys := make([]string, 0, len(b.values))
	for k := range b.values {
		keys = append(keys, k)
	}
	return keys, nil
}

func (b *FailingBackend) Close() error { return nil }

// Seed stores a raw value without counting it as a write.
func (b *FailingBackend) Seed(key string, value []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[key] = value
}

// Writes returns the number of successful writes for key.
func (b *FailingBackend) Writes(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.putCounts[key]
}

// TotalWrites returns the number of successful writes across all keys.
func (b *FailingBackend) TotalWrites() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.putCounts {
		n += c
	}
	return n
}

// Clock is a settable time source.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Sequence returns an ID generator yielding prefix-1, prefix-2, ...
func Sequence(prefix string) func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
