package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// AuthRateLimit 认证接口限流中间件
// 每 IP 每个时间窗口最多 maxAttempts 次尝试，超过则返回 429
// 过期数据在请求路径上顺带清理，不额外起后台协程
func AuthRateLimit(maxAttempts int, window time.Duration) gin.HandlerFunc {
	type entry struct {
		timestamps []time.Time
	}
	var (
		mu        sync.Mutex
		store     = make(map[string]*entry)
		lastSweep = time.Now()
	)

	// 调用方需持有 mu
	sweep := func(cutoff time.Time) {
		for ip, e := range store {
			newTs := e.timestamps[:0]
			for _, t := range e.timestamps {
				if t.After(cutoff) {
					newTs = append(newTs, t)
				}
			}
			if len(newTs) == 0 {
				delete(store, ip)
			} else {
				e.timestamps = newTs
			}
		}
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()
		cutoff := now.Add(-window)

		mu.Lock()
		// 每过一个窗口整体清扫一次，避免冷 IP 的残留堆积
		if now.Sub(lastSweep) > window {
			sweep(cutoff)
			lastSweep = now
		}

		e, ok := store[ip]
		if !ok {
			e = &entry{}
			store[ip] = e
		}
		// 移除窗口外的记录
		newTs := e.timestamps[:0]
		for _, t := range e.timestamps {
			if t.After(cutoff) {
				newTs = append(newTs, t)
			}
		}
		e.timestamps = newTs
		if len(e.timestamps) >= maxAttempts {
			mu.Unlock()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many attempts, please try again later",
			})
			c.Abort()
			return
		}
		e.timestamps = append(e.timestamps, now)
		mu.Unlock()
		c.Next()
	}
}
