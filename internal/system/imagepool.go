package system

import (
	"image"
	"sync"
)

// imagePool reuses *image.RGBA buffers between preview renders to keep GC
// pressure down when a scene renders many path previews at the same size.
type imagePool struct {
	pools map[string]*sync.Pool
	mu    sync.RWMutex
}

var globalPool = &imagePool{
	pools: make(map[string]*sync.Pool),
}

// GetImage returns an *image.RGBA of the given size from the pool, or a new
// one when none is available. The buffer may contain stale pixels; callers
// are expected to clear it.
func GetImage(rect image.Rectangle) *image.RGBA {
	return globalPool.get(rect)
}

// PutImage returns an *image.RGBA to the pool for reuse.
func PutImage(img *image.RGBA) {
	globalPool.put(img)
}

func (p *imagePool) get(rect image.Rectangle) *image.RGBA {
	key := rect.String()
	p.mu.RLock()
	pool, exists := p.pools[key]
	p.mu.RUnlock()

	if !exists {
		p.mu.Lock()
		// Double check
		pool, exists = p.pools[key]
		if !exists {
			pool = &sync.Pool{
				New: func() interface{} {
					return image.NewRGBA(rect)
				},
			}
			p.pools[key] = pool
		}
		p.mu.Unlock()
	}

	return pool.Get().(*image.RGBA)
}

func (p *imagePool) put(img *image.RGBA) {
	if img == nil {
		return
	}
	key := img.Rect.String()
	p.mu.RLock()
	pool, exists := p.pools[key]
	p.mu.RUnlock()

	if exists {
		pool.Put(img)
	}
}
