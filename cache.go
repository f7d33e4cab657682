package secrandom

// DeviceCache is a caller-owned handle that allows the device-file source to
// reuse its open descriptor across calls instead of opening and closing the
// device every time. A nil DeviceCache disables caching. The zero value (and
// NewDeviceCache) is an empty cache; the device-file source populates it on
// the first successful open and empties it again when it hits a fatal error,
// so that the next call reopens the device instead of reusing a broken
// descriptor.
//
// A DeviceCache must not be shared between goroutines without external
// synchronization.
type DeviceCache struct {
	// fd holds the cached descriptor offset by one, so that the zero value
	// is the empty state and descriptor 0 stays representable.
	fd int
}

// NewDeviceCache returns an empty descriptor cache.
func NewDeviceCache() *DeviceCache {
	return &DeviceCache{}
}

// IsCached reports whether the cache currently holds an open descriptor.
func (c *DeviceCache) IsCached() bool {
	return c != nil && c.fd > 0
}

// descriptor returns the cached descriptor. Only valid if IsCached.
func (c *DeviceCache) descriptor() int {
	return c.fd - 1
}

// store populates the cache with an open descriptor.
func (c *DeviceCache) store(fd int) {
	c.fd = fd + 1
}

// clear empties the cache without closing the descriptor.
func (c *DeviceCache) clear() {
	c.fd = 0
}

// Close releases the cached descriptor, if any. The cache may be used again
// afterwards and will be repopulated on the next successful fill.
func (c *DeviceCache) Close() error {
	if !c.IsCached() {
		return nil
	}
	fd := c.descriptor()
	c.clear()
	return closeDescriptor(fd)
}
