package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SiGNAL-Team/server/config"
	"github.com/SiGNAL-Team/server/internal/api/handler"
	"github.com/SiGNAL-Team/server/internal/api/middleware"
	"github.com/SiGNAL-Team/server/pkg/jwt"
	"github.com/SiGNAL-Team/server/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		v1.POST("/auth/login", h.Auth.Login)

		// 学期模块
		semesters := v1.Group("/semesters")
		{
			semesters.GET("", h.Semester.ListSemesters)
			semesters.GET("/jw/:jw_id", h.Semester.GetSemesterByJwID)
			semesters.GET("/:id", h.Semester.GetSemester)
			semesters.GET("/:id/sections.xlsx", h.Export.ExportSemesterXlsx)
		}

		// 课程模块
		courses := v1.Group("/courses")
		{
			courses.GET("", h.Course.ListCourses)
			courses.GET("/jw/:jw_id", h.Course.GetCourseByJwID)
			courses.GET("/code/:code", h.Course.GetCourseByCode)
			courses.GET("/:id", h.Course.GetCourse)
		}

		// 开课模块
		sections := v1.Group("/sections")
		{
			sections.GET("", h.Section.ListSections)
			sections.GET("/jw/:jw_id", h.Section.GetSectionByJwID)
			sections.GET("/:id", h.Section.GetSection)
			sections.GET("/:id/schedules", h.Section.ListSectionSchedules)
			sections.GET("/:id/groups", h.Section.ListSectionGroups)
			sections.GET("/:id/calendar.ics", h.Export.ExportSectionCalendar)
		}

		// 开课单位与教师
		v1.GET("/departments", h.Department.ListDepartments)
		v1.GET("/teachers", h.Teacher.ListTeachers)

		// 参照表与行政班
		v1.GET("/lookups", h.Reference.ListLookupKinds)
		v1.GET("/lookups/:kind", h.Reference.ListLookup)
		v1.GET("/admin-classes", h.Reference.ListAdminClasses)

		// 校区/楼栋/教室
		v1.GET("/campuses", h.Location.ListCampuses)
		v1.GET("/buildings", h.Location.ListBuildings)
		v1.GET("/rooms", h.Location.ListRooms)

		// 需要认证的路由
		// rdb 为 nil 时黑名单校验降级跳过
		var blacklist middleware.BlacklistChecker
		if rdb != nil {
			blacklist = rdb
		}
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, blacklist, logger))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)

			// 管理端数据同步
			admin := authorized.Group("/admin")
			{
				admin.POST("/sync/semesters", h.Admin.SyncSemesters)
				admin.POST("/sync/catalog", h.Admin.ImportCatalog)
			}
		}
	}

	return r
}
