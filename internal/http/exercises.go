package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const exerciseResource = "Exercise"

type ExercisesController struct {
	store ExerciseStore
}

func NewExercisesController(store ExerciseStore) *ExercisesController {
	return &ExercisesController{store: store}
}

// List returns all exercises with their categories
// GET /exercises
func (ec *ExercisesController) List(c *gin.Context) {
	exercises, err := ec.store.List(c.Request.Context())
	if err != nil {
		respondAppError(c, err, exerciseResource, "list exercises")
		return
	}
	c.JSON(http.StatusOK, newExerciseResponses(exercises))
}

// ListByCategory returns the exercises of one category
// GET /exercises/category/:category_id
func (ec *ExercisesController) ListByCategory(c *gin.Context) {
	categoryID, ok := parseIDParam(c, "category_id")
	if !ok {
		return
	}

	exercises, err := ec.store.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		respondAppError(c, err, exerciseResource, "list exercises by category")
		return
	}
	c.JSON(http.StatusOK, newExerciseResponses(exercises))
}

// Get returns a single exercise
// GET /exercises/:id
func (ec *ExercisesController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	exercise, err := ec.store.Get(c.Request.Context(), id)
	if err != nil {
		respondAppError(c, err, exerciseResource, "get exercise")
		return
	}
	c.JSON(http.StatusOK, newExerciseResponse(*exercise))
}

// Create adds an exercise to an existing category
// POST /exercises
func (ec *ExercisesController) Create(c *gin.Context) {
	var req ExerciseCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	exercise, err := ec.store.Create(c.Request.Context(), req.Name, req.CategoryID)
	if err != nil {
		respondAppError(c, err, exerciseResource, "create exercise")
		return
	}
	c.JSON(http.StatusOK, newExerciseResponse(*exercise))
}

// Update renames an exercise; category_id in the body is ignored
// PUT /exercises/:id
func (ec *ExercisesController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req ExerciseUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	exercise, err := ec.store.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		respondAppError(c, err, exerciseResource, "update exercise")
		return
	}
	c.JSON(http.StatusOK, newExerciseResponse(*exercise))
}

// Delete removes an exercise that has no records
// DELETE /exercises/:id
func (ec *ExercisesController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ec.store.Delete(c.Request.Context(), id); err != nil {
		respondAppError(c, err, exerciseResource, "delete exercise")
		return
	}
	respondSuccess(c, "Exercise deleted successfully")
}
