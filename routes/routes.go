package routes

import (
	"github.com/dhall711/health-coach/controllers"
	"github.com/dhall711/health-coach/middlewares"
	"github.com/dhall711/health-coach/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub, ps *services.PushService) *gin.Engine {
	r := gin.Default()

	cal := services.NewCalendarService()
	scheduleCtl := controllers.NewScheduleController(cal)
	coachCtl := controllers.NewCoachController(services.NewCoachService())
	deviceCtl := controllers.NewDeviceController(ps)
	realtimeCtl := controllers.NewRealtimeController(rt)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
		user.GET("/alerts", controllers.ListAlerts)
		user.POST("/devices", deviceCtl.Register)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/weight", controllers.AddWeighIn)
		api.GET("/weight", controllers.ListWeighIns)
		api.DELETE("/weight/:id", controllers.DeleteWeighIn)
		api.GET("/weight/trend", controllers.GetWeightTrend)
		api.GET("/weight/trajectory", controllers.GetWeightTrajectory)
		api.POST("/import/csv", controllers.ImportWeightCSV)

		api.POST("/food", controllers.AddFoodLog)
		api.GET("/food", controllers.ListFoodLogs)
		api.DELETE("/food/:id", controllers.DeleteFoodLog)

		api.POST("/workouts", controllers.AddWorkout)
		api.GET("/workouts", controllers.ListWorkouts)
		api.DELETE("/workouts/:id", controllers.DeleteWorkout)

		api.POST("/activity", controllers.UpdateDailyActivity)
		api.GET("/activity", controllers.GetDailyActivity)

		api.GET("/insights/weekly", controllers.GetWeeklyInsights)
		api.GET("/insights/patterns", controllers.GetPatternInsights)
		api.GET("/insights/adherence", controllers.GetCalorieAdherence)
		api.GET("/insights/macros", controllers.GetMacroBreakdown)
		api.POST("/insights/weekly/email", controllers.EmailWeeklyDigest)

		api.POST("/calendar/connect", scheduleCtl.ConnectCalendar)
		api.POST("/calendar/disconnect", scheduleCtl.DisconnectCalendar)
		api.GET("/smart-schedule", scheduleCtl.SmartSchedule)
		api.GET("/schedule/today", scheduleCtl.TodaySchedule)

		api.GET("/streaks", controllers.GetStreak)
		api.POST("/streaks/check-in", controllers.StreakCheckIn)

		api.GET("/coach/suggestions", coachCtl.GetSuggestions)

		api.GET("/ws/alerts", realtimeCtl.AlertsWS)
	}

	return r
}
