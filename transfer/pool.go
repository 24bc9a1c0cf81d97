package transfer

import "sync"

// Pool is a thread-safe pool for reusing transfer buffers.
//
// Pool groups buffers by their length, so updates of identical shape can
// recycle each other's memory. Buffers handed out by Get are always zeroed.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]byte
	maxSize int // max buffers per bucket
}

// NewPool creates a buffer pool retaining at most maxPerBucket buffers of
// each length. A maxPerBucket of 0 or less means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed buffer of exactly size bytes, reusing a pooled one
// when available.
func (p *Pool) Get(size int) []byte {
	p.mu.Lock()
	bucket := p.buckets[size]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		p.buckets[size] = bucket[:n-1]
		p.mu.Unlock()

		clear(buf)
		return buf
	}
	p.mu.Unlock()

	return make([]byte, size)
}

// Put returns buf to the pool. Empty buffers and buffers arriving at a
// full bucket are discarded.
func (p *Pool) Put(buf []byte) {
	if len(buf) == 0 {
		return
	}
	size := len(buf)

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[size]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[size] = append(bucket, buf[:size:size])
}

// Len returns the number of pooled buffers of the given size.
func (p *Pool) Len(size int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[size])
}

func alloc(p *Pool, size int) []byte {
	if p == nil {
		return make([]byte, size)
	}
	return p.Get(size)
}
