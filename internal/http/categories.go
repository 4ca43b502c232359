package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const categoryResource = "Category"

type CategoriesController struct {
	store CategoryStore
}

func NewCategoriesController(store CategoryStore) *CategoriesController {
	return &CategoriesController{store: store}
}

// List returns all categories
// GET /categories
func (cc *CategoriesController) List(c *gin.Context) {
	categories, err := cc.store.List(c.Request.Context())
	if err != nil {
		respondAppError(c, err, categoryResource, "list categories")
		return
	}
	c.JSON(http.StatusOK, newCategoryResponses(categories))
}

// ListAssigned returns categories that have at least one exercise
// GET /categories/assigned
func (cc *CategoriesController) ListAssigned(c *gin.Context) {
	categories, err := cc.store.ListAssigned(c.Request.Context())
	if err != nil {
		respondAppError(c, err, categoryResource, "list assigned categories")
		return
	}
	c.JSON(http.StatusOK, newCategoryResponses(categories))
}

// Get returns a single category
// GET /categories/:id
func (cc *CategoriesController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	category, err := cc.store.Get(c.Request.Context(), id)
	if err != nil {
		respondAppError(c, err, categoryResource, "get category")
		return
	}
	c.JSON(http.StatusOK, newCategoryResponse(*category))
}

// Create adds a category
// POST /categories
func (cc *CategoriesController) Create(c *gin.Context) {
	var req CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := cc.store.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondAppError(c, err, categoryResource, "create category")
		return
	}
	c.JSON(http.StatusOK, newCategoryResponse(*category))
}

// Update renames a category
// PUT /categories/:id
func (cc *CategoriesController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := cc.store.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		respondAppError(c, err, categoryResource, "update category")
		return
	}
	c.JSON(http.StatusOK, newCategoryResponse(*category))
}

// Delete removes a category that no exercise uses
// DELETE /categories/:id
func (cc *CategoriesController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := cc.store.Delete(c.Request.Context(), id); err != nil {
		respondAppError(c, err, categoryResource, "delete category")
		return
	}
	respondSuccess(c, "Category deleted successfully")
}
