package main

import (
	"fmt"
	"log"

	"github.com/galwayseo/site/internal/config"
	"github.com/galwayseo/site/internal/content"
)

// 内容校验工具：加载内容目录并输出统计，发现坏记录时以非零状态退出。
func main() {
	cfg := config.Load()

	store, err := content.Load(cfg.ContentDir)
	if err != nil {
		log.Fatalf("content validation failed: %v", err)
	}

	fmt.Printf("content directory %s OK\n", cfg.ContentDir)
	fmt.Printf("  services:  %d\n", len(store.Services()))
	fmt.Printf("  locations: %d\n", len(store.Locations()))
	fmt.Printf("  pages:     %d\n", len(store.Pages()))
	fmt.Printf("  routes:    %d\n", len(store.Routes()))
	fmt.Printf("  sitemap:   %d entries\n", len(store.SitemapEntries(cfg.SiteBaseURL)))
}
