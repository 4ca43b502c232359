package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(requestLogger())
	if handler := corsMiddleware(cfg.CORS); handler != nil {
		router.Use(handler)
	}

	healthController := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", healthController.Status)
	router.GET("/ping", healthController.Ping)

	if cfg.Categories != nil {
		categoriesController := NewCategoriesController(cfg.Categories)
		router.GET("/categories", categoriesController.List)
		router.GET("/categories/assigned", categoriesController.ListAssigned)
		router.GET("/categories/:id", categoriesController.Get)
		router.POST("/categories", categoriesController.Create)
		router.PUT("/categories/:id", categoriesController.Update)
		router.DELETE("/categories/:id", categoriesController.Delete)
	}

	if cfg.Exercises != nil {
		exercisesController := NewExercisesController(cfg.Exercises)
		router.GET("/exercises", exercisesController.List)
		router.GET("/exercises/category/:category_id", exercisesController.ListByCategory)
		router.GET("/exercises/:id", exercisesController.Get)
		router.POST("/exercises", exercisesController.Create)
		router.PUT("/exercises/:id", exercisesController.Update)
		router.DELETE("/exercises/:id", exercisesController.Delete)
	}

	if cfg.ExerciseRecords != nil {
		recordsController := NewExerciseRecordsController(cfg.ExerciseRecords)
		router.GET("/exercise_records", recordsController.List)
		router.GET("/exercise_records/:id", recordsController.Get)
		router.POST("/exercise_records", recordsController.Create)
		router.PUT("/exercise_records/:id", recordsController.Update)
		router.DELETE("/exercise_records/:id", recordsController.Delete)
	}

	return router
}
