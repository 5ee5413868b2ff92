package render

import (
	"image"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"retinoscope/utils"
)

type cachedImage struct {
	img               image.Image
	expireAtTimestamp int64
}

// Cache Keeps decoded images in memory so repeated overlay renders do not
// re-decode the file every time. Entries expire and are swept by a background
// loop.
type Cache struct {
	stop chan struct{}

	wg     sync.WaitGroup
	mu     sync.RWMutex
	ttl    time.Duration
	images map[string]cachedImage
}

// NewCache Create a cache whose entries live for ttl, swept every
// cleanupInterval.
func NewCache(ttl, cleanupInterval time.Duration) *Cache {
	log.Info("Creating image cache with cleanup interval ", cleanupInterval)
	c := &Cache{
		stop:   make(chan struct{}),
		ttl:    ttl,
		images: make(map[string]cachedImage),
	}

	c.wg.Add(1)
	go func(cleanupInterval time.Duration) {
		defer c.wg.Done()
		c.cleanupLoop(cleanupInterval)
	}(cleanupInterval)

	return c
}

// cleanupLoop Evict expired images until Stop is called
func (c *Cache) cleanupLoop(interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-t.C:
			c.mu.Lock()
			for id, cu := range c.images {
				if cu.expireAtTimestamp <= time.Now().Unix() {
					log.Debug("Image expired from cache: ", id)
					delete(c.images, id)
				}
			}
			c.mu.Unlock()
		}
	}
}

// Stop Halt the cleanup loop and wait for it to exit.
func (c *Cache) Stop() {
	close(c.stop)
	c.wg.Wait()
}

// Image Return the decoded image for id, loading it from path on a miss.
func (c *Cache) Image(id, path string) (image.Image, error) {
	c.mu.RLock()
	cu, ok := c.images[id]
	c.mu.RUnlock()
	if ok {
		return cu.img, nil
	}

	img, err := utils.LoadImage(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[id] = cachedImage{
		img:               img,
		expireAtTimestamp: time.Now().Add(c.ttl).Unix(),
	}
	log.Debug("Cached decoded image ", id)
	c.mu.Unlock()

	return img, nil
}

// Evict Drop one image from the cache.
func (c *Cache) Evict(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.images, id)
}
