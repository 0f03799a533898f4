package attendance

import (
	"github.com/gin-gonic/gin"

	"github.com/Rohini2302/Sk-enterprises/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	records := r.Group("/attendance")
	records.Use(middleware.AuthMiddleware())
	{
		records.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "attendance", "create"),
			handler.Mark,
		)

		records.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			handler.GetAll,
		)

		records.GET("/employee/:employeeId",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			handler.GetByEmployee,
		)

		records.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "attendance", "delete"),
			handler.Delete,
		)
	}
}
