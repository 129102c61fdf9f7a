package sessions

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const weekCacheExpireSeconds = 15 * 60

// weekCache keeps the current week of every active user as JSON.
type weekCache struct {
	cache *freecache.Cache
}

func newWeekCache(sizeMB int) *weekCache {
	megabyte := 1024 * 1024
	if sizeMB <= 0 {
		sizeMB = 10
	}
	return &weekCache{
		cache: freecache.NewCache(sizeMB * megabyte),
	}
}

func weekCacheKey(userID uuid.UUID, weekStart time.Time) []byte {
	return []byte(fmt.Sprintf("week::%s::%s", userID, weekStart.Format(time.DateOnly)))
}

func (c *weekCache) get(userID uuid.UUID, weekStart time.Time) ([]Session, bool) {
	b, err := c.cache.Get(weekCacheKey(userID, weekStart))
	if err != nil {
		return nil, false
	}
	var sessions []Session
	if err := json.Unmarshal(b, &sessions); err != nil {
		log.Errorf("unmarshal cached week for %s: %s", userID, err)
		return nil, false
	}
	return sessions, true
}

func (c *weekCache) set(userID uuid.UUID, weekStart time.Time, sessions []Session) {
	b, err := json.Marshal(sessions)
	if err != nil {
		log.Errorf("marshal week for cache, user %s: %s", userID, err)
		return
	}
	if err := c.cache.Set(weekCacheKey(userID, weekStart), b, weekCacheExpireSeconds); err != nil {
		log.Errorf("set week cache for %s: %s", userID, err)
	}
}

func (c *weekCache) del(userID uuid.UUID, weekStart time.Time) {
	c.cache.Del(weekCacheKey(userID, weekStart))
}

// replaceSession swaps in the updated session if its week is cached.
func (c *weekCache) replaceSession(updated Session, weekStart time.Time) {
	sessions, ok := c.get(updated.UserID, weekStart)
	if !ok {
		return
	}
	for i := range sessions {
		if sessions[i].ID == updated.ID {
			sessions[i] = updated
			c.set(updated.UserID, weekStart, sessions)
			return
		}
	}
}
