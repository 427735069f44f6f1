// app/seenmw.go
package app

import (
	"Gin_postgres_rental_backoffice/db"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// TouchLastSeen updates users.last_seen_at, throttled through a Redis SETNX
// gate so a chatty client does not hammer the users table. With no Redis
// client (tests) it touches directly.
func TouchLastSeen(repo *db.Repo, rdb *redis.Client, throttle time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("userID")
		if !ok {
			c.Next()
			return
		}
		uid, _ := v.(uint)
		if uid == 0 {
			c.Next()
			return
		}

		if rdb == nil {
			_ = repo.TouchUserSeen(c, uid)
			c.Next()
			return
		}

		key := fmt.Sprintf("user:lastseen:%d", uid)
		if ok, _ := rdb.SetNX(c, key, "1", throttle).Result(); ok {
			_ = repo.TouchUserSeen(c, uid) // 忽略错误，不阻塞请求
		}
		c.Next()
	}
}
