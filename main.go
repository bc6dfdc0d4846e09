package main

import (
	"net/http"
	"strings"
	"time"

	"tourserver/config"
	"tourserver/db"
	"tourserver/handlers"
	"tourserver/logger"
	"tourserver/metrics"
	"tourserver/models"
	"tourserver/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	config.Load()
	log := logger.Get()
	defer func() { _ = log.Sync() }()

	dbc, err := db.Connect()
	if err != nil {
		log.Fatal("Failed to open store", zap.Error(err))
	}
	if err := models.Init(dbc); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}
	// Seeding finishes before the listener starts, so no request can observe
	// a transiently empty table.
	models.Seed(dbc, log)

	metrics.Init(config.METRICS_PREFIX)

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware(log))
	}
	router.Use(utils.RequestIDMiddleware(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	router.Use(metrics.Middleware())
	// No cache by default; the static routes below override it
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler())

	handlers.Register(router, handlers.New(dbc))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	registerStatic(router)

	addr := config.ListenAddress()
	log.Info("Server started", zap.String("address", addr))
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(addr)
	}
	log.Fatal("Server stopped", zap.Error(err))
}

// registerStatic mounts the two page trees: admin under /admin, public at the
// site root. Both get the short static max-age; NoRoute keeps the public
// fallback from shadowing /api and /metrics.
func registerStatic(router *gin.Engine) {
	staticCache := (&utils.CacheRouter{CacheTime: utils.CacheStaticAssets}).Handler()
	admin := router.Group("/admin", staticCache)
	admin.Static("/", config.ADMIN_DIR)
	publicFS := http.Dir(config.PUBLIC_DIR)
	router.NoRoute(staticCache, func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.FileFromFS(c.Request.URL.Path, publicFS)
	})
}
