//go:build unix

package secrandom

import (
	"errors"
	"io"
	"testing"

	"golang.org/x/sys/unix"
)

func TestURandomWithoutCache(t *testing.T) {
	b := make([]byte, 600) // crosses typical read sizes
	oc, err := fillURandom(b, nil)
	if oc != outcomeSuccess {
		t.Fatalf("fill failed: %v", err)
	}
}

func TestURandomCacheReuse(t *testing.T) {
	cache := NewDeviceCache()
	defer func() {
		_ = cache.Close()
	}()

	if cache.IsCached() {
		t.Fatal("fresh cache reports a descriptor")
	}

	b := make([]byte, 32)
	oc, err := fillURandom(b, cache)
	if oc != outcomeSuccess {
		t.Fatalf("fill failed: %v", err)
	}
	if !cache.IsCached() {
		t.Fatal("cache not populated after successful fill")
	}

	fd := cache.descriptor()
	oc, err = fillURandom(b, cache)
	if oc != outcomeSuccess {
		t.Fatalf("second fill failed: %v", err)
	}
	if cache.descriptor() != fd {
		t.Errorf("descriptor not reused: %d != %d", cache.descriptor(), fd)
	}

	if err := cache.Close(); err != nil {
		t.Errorf("close failed: %s", err)
	}
	if cache.IsCached() {
		t.Error("cache still populated after close")
	}
}

func TestURandomZeroValueCache(t *testing.T) {
	// A zero-value cache is empty: the fill must open the device instead
	// of reading whatever descriptor 0 happens to be.
	cache := &DeviceCache{}
	b := make([]byte, 16)
	oc, err := fillURandom(b, cache)
	if oc != outcomeSuccess {
		t.Fatalf("fill with zero-value cache failed: %v", err)
	}
	if !cache.IsCached() {
		t.Error("cache not populated after successful fill")
	}
	_ = cache.Close()
}

func TestURandomOpenFailure(t *testing.T) {
	origPath := urandomPath
	urandomPath = "/dev/secrandom-does-not-exist"
	defer func() {
		urandomPath = origPath
	}()

	cache := NewDeviceCache()
	oc, err := fillURandom(make([]byte, 8), cache)
	if oc != outcomeFailure {
		t.Fatalf("expected failure, got outcome %d", oc)
	}
	if err == nil {
		t.Fatal("open failure carries no error")
	}
	if cache.IsCached() {
		t.Error("cache populated after open failure")
	}

	// The device is available again, the next call must recover.
	urandomPath = origPath
	oc, err = fillURandom(make([]byte, 8), cache)
	if oc != outcomeSuccess {
		t.Fatalf("fill did not recover: %v", err)
	}
	if !cache.IsCached() {
		t.Error("cache not repopulated after recovery")
	}
	_ = cache.Close()
}

func TestURandomFatalErrorEmptiesCache(t *testing.T) {
	cache := NewDeviceCache()
	oc, err := fillURandom(make([]byte, 8), cache)
	if oc != outcomeSuccess {
		t.Fatalf("fill failed: %v", err)
	}

	// Break the cached descriptor behind the cache's back.
	_ = unix.Close(cache.descriptor())

	oc, err = fillURandom(make([]byte, 8), cache)
	if oc != outcomeFailure {
		t.Fatalf("expected failure on broken descriptor, got outcome %d (err: %v)", oc, err)
	}
	if cache.IsCached() {
		t.Error("cache not emptied after fatal error")
	}

	// A subsequent call reopens fresh.
	oc, err = fillURandom(make([]byte, 8), cache)
	if oc != outcomeSuccess {
		t.Fatalf("fill did not recover: %v", err)
	}
	_ = cache.Close()
}

func TestURandomZeroRead(t *testing.T) {
	origPath := urandomPath
	urandomPath = "/dev/null" // reads as immediate EOF
	defer func() {
		urandomPath = origPath
	}()

	cache := NewDeviceCache()
	oc, err := fillURandom(make([]byte, 8), cache)
	if oc != outcomeFailure {
		t.Fatalf("expected failure on EOF, got outcome %d", oc)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected unexpected EOF, got: %v", err)
	}
	if cache.IsCached() {
		t.Error("cache not emptied after EOF")
	}
}
