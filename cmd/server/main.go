package main

import (
	"log"

	"github.com/galwayseo/site/internal/config"
	"github.com/galwayseo/site/internal/content"
	"github.com/galwayseo/site/internal/db"
	"github.com/galwayseo/site/internal/router"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// 根据环境变量创建后台管理员
	if err := db.EnsureUser(cfg.SuperRootUserName, cfg.SuperRootPassword); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}

	// 内容目录在启动时一次性加载，坏记录直接拒绝启动
	store, err := content.Load(cfg.ContentDir)
	if err != nil {
		log.Fatalf("failed to load content: %v", err)
	}

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(db.DB, store, cfg.SessionSecret, cfg.SiteBaseURL)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
