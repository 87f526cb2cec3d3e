package notify

import (
	"crypto/md5"
	"fmt"
	"sync"
	"time"
)

// Deduper remembers the hash of every sent message for a cooldown window.
type Deduper struct {
	mu           sync.Mutex
	sentMessages map[string]time.Time
	expiration   time.Duration
}

func NewDeduper(expiry time.Duration) *Deduper {
	return &Deduper{
		sentMessages: make(map[string]time.Time),
		expiration:   expiry,
	}
}

// ShouldSend reports whether the message was not sent inside the cooldown
// window, recording it as sent when it passes.
func (d *Deduper) ShouldSend(message string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	hash := fmt.Sprintf("%x", md5.Sum([]byte(message)))

	lastSent, exists := d.sentMessages[hash]
	if exists && time.Since(lastSent) < d.expiration {
		return false
	}

	d.sentMessages[hash] = time.Now()

	// Drop expired entries so the map never grows unbounded.
	for h, t := range d.sentMessages {
		if time.Since(t) > d.expiration {
			delete(d.sentMessages, h)
		}
	}

	return true
}
