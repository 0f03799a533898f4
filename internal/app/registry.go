package app

import (
	"database/sql"
	"path/filepath"

	"github.com/Rohini2302/Sk-enterprises/internal/attendance"
	"github.com/Rohini2302/Sk-enterprises/internal/auth"
	"github.com/Rohini2302/Sk-enterprises/internal/crm"
	"github.com/Rohini2302/Sk-enterprises/internal/employee"
	"github.com/Rohini2302/Sk-enterprises/internal/leave"
	"github.com/Rohini2302/Sk-enterprises/internal/messaging/kafka"
	"github.com/Rohini2302/Sk-enterprises/internal/payroll"
	"github.com/Rohini2302/Sk-enterprises/internal/performance"
	"github.com/Rohini2302/Sk-enterprises/internal/rbac"
	"github.com/Rohini2302/Sk-enterprises/internal/rbac/infra"
	"github.com/Rohini2302/Sk-enterprises/internal/salarystructure"
	"github.com/Rohini2302/Sk-enterprises/internal/shared/counter"
	"github.com/Rohini2302/Sk-enterprises/internal/shift"
	"github.com/Rohini2302/Sk-enterprises/internal/site"
	"github.com/Rohini2302/Sk-enterprises/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	crmRepo := crm.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	performanceRepo := performance.NewRepository(gormDB)
	structureRepo := salarystructure.NewRepository(gormDB)
	shiftRepo := shift.NewRepository(gormDB)
	siteRepo := site.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	authService := auth.NewService(authRepo, rbacService, employeeRepo)
	attendanceService := attendance.NewService(db, attendanceRepo)
	crmService := crm.NewService(db, crmRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	leaveService := leave.NewService(db, leaveRepo)
	payrollService := payroll.NewServiceWithOutbox(db, payrollRepo, outboxRepo)
	performanceService := performance.NewService(db, performanceRepo)
	structureService := salarystructure.NewService(db, structureRepo)
	shiftService := shift.NewService(db, shiftRepo)
	siteService := site.NewService(db, siteRepo)
	userService := user.NewService(userRepo, rbacService)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	crmHandler := crm.NewHandler(crmService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	performanceHandler := performance.NewHandler(performanceService)
	structureHandler := salarystructure.NewHandler(structureService)
	shiftHandler := shift.NewHandler(shiftService)
	siteHandler := site.NewHandler(siteService)
	rbacHandler := rbac.NewHandler(rbacService, rbacRepo)
	userHandler := user.NewHandler(userService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		crm.RegisterRoutes(api, crmHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		performance.RegisterRoutes(api, performanceHandler, rbacService)
		salarystructure.RegisterRoutes(api, structureHandler, rbacService)
		shift.RegisterRoutes(api, shiftHandler, rbacService)
		site.RegisterRoutes(api, siteHandler, rbacService)
		rbac.RegisterRoutes(api, rbacHandler, rbacService)
		user.RegisterRoutes(api, userHandler, rbacService, zap.L())
	}

	return nil
}
