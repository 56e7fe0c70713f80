package main

import (
	"net/http"

	"sathi/cmd/internal/config"
	"sathi/cmd/internal/domain/sqlite"
	"sathi/cmd/internal/domain/sqlite/repository"
	handler2 "sathi/cmd/internal/http/handler"
	middleware2 "sathi/cmd/internal/http/middleware"
	"sathi/cmd/internal/service"
	"sathi/cmd/internal/utils/uid"
	"sathi/cmd/internal/validators"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const version = "1.0.0"

func main() {
	validate := validator.New()
	registerValidators(validate)

	settings := config.Load()
	uid.Init(1)

	// Init SQLite
	db, err := sqlite.Init(settings.DatabasePath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Getting repos
	noteRepo := repository.NewNoteRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)
	careerRepo := repository.NewCareerRepository(db)
	roadmapRepo := repository.NewRoadmapRepository(db)
	tipRepo := repository.NewTipRepository(db)

	// Getting services
	noteService := service.NewNoteService(noteRepo, validate)
	reminderService := service.NewReminderService(reminderRepo, validate)
	calendarService := service.NewCalendarService(calendarRepo, validate)
	careerService := service.NewCareerService(careerRepo, validate)
	roadmapService := service.NewRoadmapService(roadmapRepo, validate)
	tipService := service.NewTipService(tipRepo, validate)
	voiceService := service.NewVoiceService(validate)

	// Getting handlers
	noteRoutes := handler2.NewNoteDefault(noteService)
	reminderRoutes := handler2.NewReminderDefault(reminderService)
	calendarRoutes := handler2.NewCalendarDefault(calendarService)
	careerRoutes := handler2.NewCareerDefault(careerService)
	roadmapRoutes := handler2.NewRoadmapDefault(roadmapService)
	tipRoutes := handler2.NewTipDefault(tipService)
	voiceRoutes := handler2.NewVoiceDefault(voiceService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("2M"))
	e.Use(middleware2.RequestID())
	e.Use(middleware2.NewIdentityMiddleware(&middleware2.IdentityConfig{Secret: settings.JWTSecret}))

	// Probes
	e.GET("/health", healthCheckRoute)
	e.GET("/ready", readinessRoute)
	e.GET("/version", versionRoute)

	api := e.Group(settings.APIPrefix)

	// Tips
	api.GET("/tips", tipRoutes.GetTips)
	api.POST("/tips", tipRoutes.CreateTip)

	// Roadmap
	api.POST("/roadmap", roadmapRoutes.CreateRoadmap)
	api.GET("/roadmap/:user_id", roadmapRoutes.GetRoadmap)
	api.PATCH("/roadmap/:user_id", roadmapRoutes.UpdateRoadmap)
	api.DELETE("/roadmap/:user_id", roadmapRoutes.DeleteRoadmap)

	// Career goals
	api.POST("/career/goals", careerRoutes.CreateGoal)
	api.GET("/career/goals", careerRoutes.GetGoals)
	api.PATCH("/career/goals/:id", careerRoutes.UpdateGoal)
	api.DELETE("/career/goals/:id", careerRoutes.DeleteGoal)

	// Notes
	api.POST("/notes", noteRoutes.CreateNote)
	api.GET("/notes", noteRoutes.GetNotes)
	api.GET("/notes/:id", noteRoutes.GetNote)
	api.PATCH("/notes/:id", noteRoutes.UpdateNote)
	api.DELETE("/notes/:id", noteRoutes.DeleteNote)

	// Reminders
	api.POST("/reminders", reminderRoutes.CreateReminder)
	api.GET("/reminders/:user_id", reminderRoutes.GetReminders)
	api.PATCH("/reminders/:id", reminderRoutes.UpdateReminder)
	api.DELETE("/reminders/:id", reminderRoutes.DeleteReminder)

	// Calendar
	api.POST("/calendar/events", calendarRoutes.CreateEvent)
	api.GET("/calendar/daily/:user_id", calendarRoutes.GetDailyEvents)
	api.GET("/calendar/weekly/:user_id", calendarRoutes.GetWeeklyEvents)
	api.PATCH("/calendar/events/:id", calendarRoutes.UpdateEvent)
	api.DELETE("/calendar/events/:id", calendarRoutes.DeleteEvent)

	// Follow-ups
	api.GET("/followups/:user_id", reminderRoutes.GetFollowups)
	api.POST("/followups", reminderRoutes.CreateFollowup)

	// Voice stubs
	api.POST("/voice/speech-to-text", voiceRoutes.SpeechToText)
	api.POST("/voice/text-to-speech", voiceRoutes.TextToSpeech)

	if err := e.Start(":" + settings.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("iso8601", validators.IsIso8601)
	_ = validate.RegisterValidation("nodupes", validators.NoDupes)
}

func healthCheckRoute(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func readinessRoute(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ready"})
}

func versionRoute(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"version": version})
}
