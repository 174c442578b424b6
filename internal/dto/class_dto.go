package dto

import (
	"github.com/noah-isme/alhafizh-api/internal/catalog"
	"github.com/noah-isme/alhafizh-api/internal/models"
)

// TargetRangePayload carries an inclusive chapter interval in either order.
type TargetRangePayload struct {
	From int `json:"from" validate:"min=1,max=114"`
	To   int `json:"to" validate:"min=1,max=114"`
}

// ClassCreateRequest captures the payload for a new class.
type ClassCreateRequest struct {
	Name        string              `json:"name" validate:"required,min=1,max=120"`
	TargetRange *TargetRangePayload `json:"target_range"`
}

// ClassUpdateRequest captures partial updates merged into an existing class.
type ClassUpdateRequest struct {
	Name        *string             `json:"name" validate:"omitempty,min=1,max=120"`
	TargetRange *TargetRangePayload `json:"target_range"`
}

// ClassResponse serializes a class with its derived chapter count.
type ClassResponse struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	TargetRange  models.TargetRange `json:"target_range"`
	ChapterCount int                `json:"chapter_count"`
	StudentCount int                `json:"student_count"`
}

// NewClassResponse converts a class model into a DTO.
func NewClassResponse(class models.Class, studentCount int) ClassResponse {
	return ClassResponse{
		ID:           class.ID,
		Name:         class.Name,
		TargetRange:  class.TargetRange,
		ChapterCount: len(catalog.TargetChapters(class.TargetRange.From, class.TargetRange.To)),
		StudentCount: studentCount,
	}
}

// ToModel converts the payload into a target range.
func (p TargetRangePayload) ToModel() models.TargetRange {
	return models.TargetRange{From: p.From, To: p.To}
}
