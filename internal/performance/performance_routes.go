package performance

import (
	"github.com/gin-gonic/gin"

	"github.com/Rohini2302/Sk-enterprises/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	reviews := r.Group("/performance-reviews")
	reviews.Use(middleware.AuthMiddleware())
	{
		reviews.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "performance", "create"),
			handler.Create,
		)

		reviews.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "performance", "read"),
			handler.GetAll,
		)

		reviews.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "performance", "read"),
			handler.GetById,
		)

		reviews.GET("/employee/:employeeId",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "performance", "read"),
			handler.GetByEmployee,
		)

		reviews.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "performance", "update"),
			handler.Update,
		)

		reviews.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "performance", "delete"),
			handler.Delete,
		)
	}
}
