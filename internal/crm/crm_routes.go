package crm

import (
	"github.com/gin-gonic/gin"

	"github.com/Rohini2302/Sk-enterprises/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	clients := r.Group("/clients")
	clients.Use(middleware.AuthMiddleware())
	{
		clients.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "client", "create"),
			handler.CreateClient,
		)
		clients.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "client", "read"),
			handler.GetAllClients,
		)
		clients.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "client", "read"),
			handler.GetClientById,
		)
		clients.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "client", "update"),
			handler.UpdateClient,
		)
		clients.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "client", "delete"),
			handler.DeleteClient,
		)
	}

	leads := r.Group("/leads")
	leads.Use(middleware.AuthMiddleware())
	{
		leads.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "lead", "create"),
			handler.CreateLead,
		)
		leads.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "lead", "read"),
			handler.GetAllLeads,
		)
		leads.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "lead", "read"),
			handler.GetLeadById,
		)
		leads.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "lead", "update"),
			handler.UpdateLead,
		)
		leads.POST("/:id/status",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "lead", "update"),
			handler.UpdateLeadStatus,
		)
		leads.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "lead", "delete"),
			handler.DeleteLead,
		)
	}
}
