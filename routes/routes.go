package routes

import (
	"Gin_postgres_rental_backoffice/app"
	"Gin_postgres_rental_backoffice/controllers"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes wires the HTTP surface. rdb may be nil (tests), the
// last-seen middleware degrades to direct touches.
func RegisterRoutes(r *gin.Engine, s *controllers.Srv, rdb *redis.Client) {
	ac := controllers.NewAuthController(s)
	ec := controllers.NewEquipmentController(s)
	rc := controllers.NewRentController(s)

	// 复用的中间件
	authMW := app.AuthRequired(s.Signer, s.Repo)
	seenMW := app.TouchLastSeen(s.Repo, rdb, 5*time.Minute)

	// ------------------------------
	// 登录/登出
	// ------------------------------
	auth := r.Group("/api/auth")
	{
		auth.POST("/signin", ac.SignIn)
		auth.POST("/signout", ac.SignOut)
	}

	// ------------------------------
	// 设备 CRUD + 可用数量
	// ------------------------------
	eq := r.Group("/api/equipment")
	{
		eq.GET("", ec.List)           // ?name=&limit=&offset=
		eq.GET("/names", ec.Names)    // 查下拉选项
		eq.GET("/:id", ec.Get)
		eq.POST("", ec.Create)
		eq.PUT("/:id", ec.Update)
		eq.PATCH("/:id", ec.Update)
		eq.DELETE("/:id", ec.Delete)
	}

	// ------------------------------
	// 借还 / 报修（需登录）
	// ------------------------------
	rents := r.Group("/api/rents", authMW, seenMW)
	{
		rents.POST("", rc.Create)
		rents.GET("", rc.List) // ?equipmentId=&status=open|returned|pending|approved|rejected
		rents.POST("/:id/status", rc.SetStatus)
		rents.POST("/:id/return", rc.Return)
	}

	brokens := r.Group("/api/brokens", authMW, seenMW)
	{
		brokens.POST("", rc.Report)
		brokens.POST("/:id/resolve", rc.Resolve)
	}
}
