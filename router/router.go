package router

import (
	"time"

	"fintrack/api"
	"fintrack/config"
	_ "fintrack/docs"
	"fintrack/legacy"
	"fintrack/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 路由组
	v1 := r.Group("/api/v1")
	{
		// 认证相关路由（无需登录）
		authHandler := api.NewAuthHandler(cfg)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			// 登录接口限流：每IP每分钟最多5次
			auth.POST("/login", middleware.LoginRateLimit(5, time.Minute), authHandler.Login)
		}

		// 密码重置（无需登录）
		passwordResetHandler := api.NewPasswordResetHandler(cfg)
		password := v1.Group("/password")
		{
			password.POST("/request-reset", passwordResetHandler.RequestPasswordReset)
			password.GET("/verify-token", passwordResetHandler.VerifyResetToken)
			password.POST("/reset", passwordResetHandler.ResetPassword)
		}

		// 需要 JWT 认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			// 用户相关
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.PUT("/auth/profile", authHandler.UpdateProfile)
			authorized.PUT("/auth/password", authHandler.ChangePassword)

			// 交易记录相关
			transactionHandler := api.NewTransactionHandler()
			transactions := authorized.Group("/transactions")
			{
				transactions.POST("", transactionHandler.Create)
				transactions.GET("", transactionHandler.List)
				transactions.GET("/statistics", transactionHandler.GetStatistics)
				transactions.GET("/:id", transactionHandler.Get)
				transactions.PUT("/:id", transactionHandler.Update)
				transactions.DELETE("/:id", transactionHandler.Delete)
			}

			// 预算相关
			budgetHandler := api.NewBudgetHandler()
			budgets := authorized.Group("/budgets")
			{
				budgets.POST("", budgetHandler.Create)
				budgets.GET("", budgetHandler.List)
				budgets.GET("/:id", budgetHandler.Get)
				budgets.GET("/:id/progress", budgetHandler.GetProgress)
				budgets.PUT("/:id", budgetHandler.Update)
				budgets.DELETE("/:id", budgetHandler.Delete)
			}

			// 收入来源相关
			incomeSourceHandler := api.NewIncomeSourceHandler()
			incomeSources := authorized.Group("/income-sources")
			{
				incomeSources.POST("", incomeSourceHandler.Create)
				incomeSources.GET("", incomeSourceHandler.List)
				incomeSources.GET("/monthly-total", incomeSourceHandler.GetMonthlyTotal)
				incomeSources.GET("/:id", incomeSourceHandler.Get)
				incomeSources.PUT("/:id", incomeSourceHandler.Update)
				incomeSources.DELETE("/:id", incomeSourceHandler.Delete)
			}

			// 银行账户相关
			bankAccountHandler := api.NewBankAccountHandler()
			bankAccounts := authorized.Group("/bank-accounts")
			{
				bankAccounts.POST("", bankAccountHandler.Create)
				bankAccounts.GET("", bankAccountHandler.List)
				bankAccounts.GET("/:id", bankAccountHandler.Get)
				bankAccounts.PUT("/:id", bankAccountHandler.Update)
				bankAccounts.DELETE("/:id", bankAccountHandler.Delete)
				bankAccounts.POST("/:id/connect", bankAccountHandler.Connect)
				bankAccounts.POST("/:id/sync", bankAccountHandler.Sync)
			}

			// 汇总统计相关
			summaryHandler := api.NewSummaryHandler()
			authorized.GET("/summary", summaryHandler.GetOverview)
			authorized.GET("/summary/monthly", summaryHandler.GetMonthlySeries)

			// 导出相关
			exportHandler := api.NewExportHandler()
			export := authorized.Group("/export")
			{
				export.GET("/csv", exportHandler.ExportCSV)
				export.GET("/json", exportHandler.ExportJSON)
				export.GET("/excel", exportHandler.ExportExcel)
			}
		}
	}

	// 早期原型的占位接口（内存存储，无需登录）
	legacyHandler := legacy.NewHandler(legacy.NewStore())
	legacyHandler.RegisterRoutes(r.Group("/api"))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
