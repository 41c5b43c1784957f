package cache

// instrumentedCache counts hits and misses of inner under a group label.
type instrumentedCache struct {
	inner Cache
	group string
}

// newInstrumentedCache wraps inner. A failure to register the entries gauge
// only loses that gauge; logger may be nil.
func newInstrumentedCache(inner Cache, group string, logger Logger) *instrumentedCache {
	if err := registerEntriesCollector(group, inner.Len); err != nil && logger != nil {
		logger.Warn("cache entries gauge not registered for group "+group, err)
	}
	return &instrumentedCache{inner: inner, group: group}
}

func (c *instrumentedCache) Get(key string) ([]byte, bool) {
	val, ok := c.inner.Get(key)
	if ok {
		HitsTotal.WithLabelValues(c.group).Inc()
	} else {
		MissesTotal.WithLabelValues(c.group).Inc()
	}
	return val, ok
}

func (c *instrumentedCache) Set(key string, value []byte) {
	c.inner.Set(key, value)
}

func (c *instrumentedCache) Len() int {
	return c.inner.Len()
}

func (c *instrumentedCache) Close() error {
	unregisterEntriesCollector(c.group)
	return c.inner.Close()
}
