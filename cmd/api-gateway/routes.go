package main

import (
	"github.com/gin-gonic/gin"

	"github.com/smashpoint/academy-api/internal/handler"
	"github.com/smashpoint/academy-api/internal/middleware"
	"github.com/smashpoint/academy-api/internal/models"
	"github.com/smashpoint/academy-api/internal/service"
)

type handlerSet struct {
	auth       *handler.AuthHandler
	sessions   *handler.SessionHandler
	generator  *handler.SessionGeneratorHandler
	blackouts  *handler.BlackoutHandler
	classes    *handler.ClassHandler
	locations  *handler.LocationHandler
	coaches    *handler.CoachHandler
	players    *handler.PlayerHandler
	attendance *handler.AttendanceHandler
	exports    *handler.ExportHandler
}

// registerRoutes mounts the API surface. The blackout endpoints keep the
// session-blackouts prefix the legacy frontend calls.
func registerRoutes(r *gin.Engine, authSvc *service.AuthService, h handlerSet) {
	r.POST("/auth/login", h.auth.Login)

	staff := r.Group("/", middleware.JWT(authSvc))
	staff.GET("/auth/me", h.auth.Me)
	staff.GET("/sessions", h.sessions.List)
	staff.GET("/sessions/:id/participants", h.sessions.ListParticipants)
	staff.GET("/session-blackouts", h.blackouts.List)
	staff.GET("/session-blackouts/check", h.blackouts.Check)
	staff.GET("/classes", h.classes.List)
	staff.GET("/locations", h.locations.List)
	staff.GET("/coaches", h.coaches.List)
	staff.GET("/players", h.players.List)
	staff.GET("/attendance", h.attendance.List)
	staff.GET("/sessions/export", h.exports.Sessions)

	// Coaches may run sessions and record attendance; schedule and roster
	// changes stay with admins and supervisors.
	scheduling := staff.Group("", middleware.RequireRoles(models.RoleAdmin, models.RoleSupervisor))
	scheduling.POST("/sessions", h.sessions.Create)
	scheduling.PUT("/sessions/:id", h.sessions.Update)
	scheduling.DELETE("/sessions/:id", h.sessions.Delete)
	scheduling.POST("/sessions/generate", h.generator.Generate)
	scheduling.POST("/session-blackouts", h.blackouts.Create)
	scheduling.DELETE("/session-blackouts/:id", h.blackouts.Delete)
	scheduling.POST("/classes", h.classes.Create)
	scheduling.PUT("/classes/:id", h.classes.Update)
	scheduling.DELETE("/classes/:id", h.classes.Delete)
	scheduling.POST("/locations", h.locations.Create)
	scheduling.PUT("/locations/:id", h.locations.Update)
	scheduling.DELETE("/locations/:id", h.locations.Delete)
	scheduling.POST("/coaches", h.coaches.Create)
	scheduling.PUT("/coaches/:id", h.coaches.Update)
	scheduling.DELETE("/coaches/:id", h.coaches.Delete)
	scheduling.POST("/players", h.players.Create)
	scheduling.PUT("/players/:id", h.players.Update)
	scheduling.DELETE("/players/:id", h.players.Delete)

	running := staff.Group("", middleware.RequireRoles(models.RoleAdmin, models.RoleSupervisor, models.RoleCoach))
	running.POST("/sessions/:id/participants", h.sessions.AddParticipant)
	running.DELETE("/sessions/:id/participants/:participantId", h.sessions.RemoveParticipant)
	running.POST("/attendance", h.attendance.Record)
}
