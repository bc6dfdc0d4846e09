package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	CacheNoCache = 0
	// CacheStaticAssets is the max-age applied to the served page trees.
	CacheStaticAssets = 3600
)

type CacheRouter struct {
	CacheTime int // defaults to CacheNoCache = 0
}

func (cr *CacheRouter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cr.CacheTime == CacheNoCache {
			c.Header("cache-control", "no-cache")
		} else {
			c.Header("cache-control", "private, max-age="+strconv.Itoa(cr.CacheTime))
		}
		c.Next()
	}
}
