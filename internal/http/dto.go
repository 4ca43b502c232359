package http

import (
	"time"

	"github.com/broccoli/backend/internal/database/records"
	"github.com/broccoli/backend/internal/entities"
)

// --- Requests ---

type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=64"`
}

type ExerciseCreateRequest struct {
	Name       string `json:"name" binding:"required,max=64"`
	CategoryID uint   `json:"category_id" binding:"required,gt=0"`
}

// ExerciseUpdateRequest accepts category_id for symmetry with create; only the
// name is applied.
type ExerciseUpdateRequest struct {
	Name       string `json:"name" binding:"required,max=64"`
	CategoryID *uint  `json:"category_id"`
}

type ExerciseRecordRequest struct {
	ExerciseID   uint   `json:"exercise_id" binding:"required,gt=0"`
	Weight       *int   `json:"weight" binding:"required,gte=0"`
	Rep          *int   `json:"rep" binding:"required,gte=0"`
	ExerciseDate string `json:"exercise_date" binding:"omitempty,datetime=2006-01-02"`
}

func (r ExerciseRecordRequest) toInput() (records.Input, error) {
	in := records.Input{
		ExerciseID: r.ExerciseID,
		Weight:     *r.Weight,
		Rep:        *r.Rep,
	}
	if r.ExerciseDate != "" {
		d, err := time.Parse(entities.DateLayout, r.ExerciseDate)
		if err != nil {
			return records.Input{}, err
		}
		in.ExerciseDate = &d
	}
	return in, nil
}

// --- Responses ---

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ExerciseResponse struct {
	ID         uint             `json:"id"`
	Name       string           `json:"name"`
	CategoryID uint             `json:"category_id"`
	Category   CategoryResponse `json:"category"`
}

type ExerciseRecordResponse struct {
	ID           uint             `json:"id"`
	ExerciseID   uint             `json:"exercise_id"`
	Weight       int              `json:"weight"`
	Rep          int              `json:"rep"`
	ExerciseDate string           `json:"exercise_date"`
	Exercise     ExerciseResponse `json:"exercise"`
}

func newCategoryResponse(c entities.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

func newCategoryResponses(categories []entities.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, newCategoryResponse(c))
	}
	return out
}

func newExerciseResponse(e entities.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:         e.ID,
		Name:       e.Name,
		CategoryID: e.CategoryID,
		Category:   newCategoryResponse(e.Category),
	}
}

func newExerciseResponses(exercises []entities.Exercise) []ExerciseResponse {
	out := make([]ExerciseResponse, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, newExerciseResponse(e))
	}
	return out
}

func newExerciseRecordResponse(r entities.ExerciseRecord) ExerciseRecordResponse {
	return ExerciseRecordResponse{
		ID:           r.ID,
		ExerciseID:   r.ExerciseID,
		Weight:       r.Weight,
		Rep:          r.Rep,
		ExerciseDate: entities.FormatDate(r.ExerciseDate),
		Exercise:     newExerciseResponse(r.Exercise),
	}
}

func newExerciseRecordResponses(rs []entities.ExerciseRecord) []ExerciseRecordResponse {
	out := make([]ExerciseRecordResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, newExerciseRecordResponse(r))
	}
	return out
}
