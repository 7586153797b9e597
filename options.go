package pak

type readConfig struct {
	limits    Limits
	chunkSize int
}

type ReadOption func(*readConfig)

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}

// WithReadChunkSize sets the transfer block size used by DecodeContext
// when copying entry data. Cancellation is observed between blocks.
func WithReadChunkSize(n int) ReadOption {
	return func(c *readConfig) { c.chunkSize = n }
}

type writeConfig struct {
	limits    Limits
	chunkSize int
}

type WriteOption func(*writeConfig)

func WithWriteLimits(l Limits) WriteOption {
	return func(c *writeConfig) { c.limits = l }
}

// WithWriteChunkSize sets the transfer block size used by EncodeContext
// when copying entry data. Cancellation is observed between blocks.
func WithWriteChunkSize(n int) WriteOption {
	return func(c *writeConfig) { c.chunkSize = n }
}
