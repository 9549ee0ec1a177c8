package router

import (
	"net/http"
	"net/url"
	"time"

	"fintrack/api"
	"fintrack/config"
	_ "fintrack/docs"
	"fintrack/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 设置路由，数据库句柄注入到各处理器
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(CORSMiddleware(cfg))

	// 认证相关路由（无需登录），登录/注册共用一个限流器
	authHandler := api.NewAuthHandler(cfg, db)
	authLimit := middleware.AuthRateLimit(10, time.Minute)
	auth := r.Group("/auth")
	{
		auth.POST("/signup", authLimit, authHandler.Signup)
		auth.POST("/login", authLimit, authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}

	// 需要会话认证的路由
	userHandler := api.NewUserHandler(db)
	expenseHandler := api.NewExpenseHandler(db)
	debtHandler := api.NewDebtHandler(db)
	authorized := r.Group("")
	authorized.Use(middleware.JWTAuth(db))
	{
		user := authorized.Group("/user")
		{
			user.GET("/profile", userHandler.GetProfile)
			user.PUT("/profile", userHandler.UpdateProfile)
		}

		expense := authorized.Group("/expense")
		{
			expense.GET("", expenseHandler.List)
			expense.POST("", expenseHandler.Create)
			expense.GET("/summary", expenseHandler.Summary)
			expense.GET("/statistics", expenseHandler.Statistics)
			expense.PUT("/:id", expenseHandler.Update)
			expense.DELETE("/:id", expenseHandler.Delete)
		}

		debt := authorized.Group("/debt")
		{
			debt.GET("", debtHandler.List)
			debt.POST("", debtHandler.Create)
			debt.GET("/summary", debtHandler.Summary)
			debt.PUT("/:id", debtHandler.Update)
			debt.DELETE("/:id", debtHandler.Delete)
		}
	}

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	return r
}

// isLocalhostOrigin 判断来源是否为本地开发地址
func isLocalhostOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Hostname() == "localhost" || u.Hostname() == "127.0.0.1"
}

// CORSMiddleware CORS 跨域中间件
// 带凭证的跨域不允许通配符来源：只回显配置的前端地址，非 release 模式额外放行本地地址
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := origin != "" &&
			(origin == cfg.Server.FrontendURL ||
				(cfg.Server.Mode != "release" && isLocalhostOrigin(origin)))

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Add("Vary", "Origin")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
