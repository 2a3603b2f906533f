package router

import (
	"net/http"

	"github.com/galwayseo/site/internal/content"
	"github.com/galwayseo/site/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(gdb *gorm.DB, store *content.Store, sessionSecret, siteBaseURL string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件。显式设置 Lax 而非默认的 Secure/SameSite=None，
	// 否则会话 cookie 在 http 反向代理后面不会被客户端回传。
	cookieStore := cookie.NewStore([]byte(sessionSecret))
	cookieStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("agency_session", cookieStore))

	api := handler.NewAPI(gdb, store, siteBaseURL)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	r.GET("/sitemap.xml", api.Sitemap)

	// 表单与内容 API
	public := r.Group("/api")
	{
		public.POST("/contact", api.SubmitContact)
		public.POST("/quote", api.SubmitQuote)
		public.POST("/callback", api.SubmitCallback)
		public.POST("/newsletter", api.SubscribeNewsletter)
		public.DELETE("/newsletter", api.UnsubscribeNewsletter)
		public.POST("/analytics", api.TrackPageView)

		// 静态站点生成器消费的只读内容接口
		catalog := public.Group("/content")
		{
			catalog.GET("/pages", api.ListContentPages)
			catalog.GET("/pages/:id", api.GetContentPage)
			catalog.GET("/services", api.ListContentServices)
			catalog.GET("/services/:slug", api.GetContentService)
			catalog.GET("/locations", api.ListContentLocations)
			catalog.GET("/locations/:slug", api.GetContentLocation)
			catalog.GET("/routes", api.ListContentRoutes)
		}
	}

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		// 需要认证的后台 API
		auth := admin.Group("/api")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/contacts", api.ListContacts)
			auth.PUT("/contacts/:id/status", api.UpdateContactStatus)
			auth.GET("/quotes", api.ListQuotes)
			auth.PUT("/quotes/:id/status", api.UpdateQuoteStatus)
			auth.GET("/callbacks", api.ListCallbacks)
			auth.PUT("/callbacks/:id/status", api.UpdateCallbackStatus)
			auth.GET("/newsletter/subscribers", api.ListSubscribers)
			auth.GET("/analytics/overview", api.AnalyticsOverview)
		}
	}

	return r
}
