package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"holidayapi/config"
	"holidayapi/controllers"
	_ "holidayapi/docs"
	"holidayapi/middlewares"
	"holidayapi/services"
)

// SetupRoutes đăng ký toàn bộ route của ứng dụng
func SetupRoutes(router *gin.Engine, cfg *config.Config, db *gorm.DB, rdb *redis.Client, log *zap.Logger) {
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	source := services.NewNagerClient(services.NagerClientOptions{
		BaseURL: cfg.HolidayBaseURL,
		Timeout: cfg.UpstreamTimeout,
		Logger:  log.Named("nager"),
	})
	holidayController := controllers.NewHolidayController(source, services.SystemClock, log)

	api := router.Group("/api/v1")

	var guard gin.HandlerFunc
	if cfg.AuthEnabled() && db != nil {
		opts := services.TokenServiceOptions{Secret: cfg.JWTSecret, ExpiresIn: cfg.JWTExpiresIn}
		if rdb != nil {
			opts.Revoked = services.NewRedisRevocationStore(rdb)
		}
		tokens := services.NewTokenService(opts)
		users := services.NewUserService(services.UserServiceOptions{
			Store:  services.NewGormUserStore(db),
			Logger: log,
		})
		guard = middlewares.Authenticated(tokens, users, log)
		RegisterAuthRoutes(api.Group("/auth"), controllers.NewAuthController(users, tokens, log), guard)
	}

	holidays := api.Group("/holidays")
	if cfg.RequireAuth && guard != nil {
		holidays.Use(guard)
	}
	RegisterHolidayRoutes(holidays, holidayController)
}

func RegisterHolidayRoutes(rg *gin.RouterGroup, h *controllers.HolidayController) {
	rg.GET("/upcoming", h.GetUpcomingHolidays)
	rg.GET("/check/:date", h.CheckHoliday)
	rg.GET("/:year/types", h.GetHolidayTypes)
	rg.GET("/:year/search", h.SearchHolidays)
	rg.GET("/:year/summary", h.GetHolidaySummaries)
	rg.GET("/:year/:month", h.GetMonthHolidays)
	rg.GET("/:year", h.GetYearHolidays)
}

func RegisterAuthRoutes(rg *gin.RouterGroup, a *controllers.AuthController, guard gin.HandlerFunc) {
	rg.POST("/sign-up", a.SignUp)
	rg.POST("/sign-in", a.SignIn)
	rg.POST("/sign-out", guard, a.SignOut)
}

// corsConfig: "*" cho phép mọi origin nhưng không kèm credentials,
// danh sách cụ thể thì bật credentials để cookie token dùng được
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
