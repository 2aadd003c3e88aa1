package dto

import (
	"strings"

	"github.com/map-my-world-service/internal/domain"
)

// CategoryAddInput is the body of POST /api/rest/add-categories. Name and
// description are trimmed before the length limits apply.
type CategoryAddInput struct {
	Name        string  `json:"name" validate:"required,max=150"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// Normalize trims surrounding whitespace in place.
func (in *CategoryAddInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	if in.Description != nil {
		trimmed := strings.TrimSpace(*in.Description)
		in.Description = &trimmed
	}
}

type CategoryType struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func NewCategoryType(category *domain.Category) CategoryType {
	t := CategoryType{
		ID:   category.ID,
		Name: category.Name,
	}
	if category.Description.Valid {
		desc := category.Description.String
		t.Description = &desc
	}
	return t
}

func NewCategoryTypeList(categories []domain.Category) []CategoryType {
	types := make([]CategoryType, 0, len(categories))
	for i := range categories {
		types = append(types, NewCategoryType(&categories[i]))
	}
	return types
}

type CreateCategoryPayload struct {
	Category *CategoryType `json:"category"`
	Response Response      `json:"response"`
}

// EmptyCategoryPayload is the error-state body: null category plus the
// error envelope.
func EmptyCategoryPayload(resp Response) CreateCategoryPayload {
	return CreateCategoryPayload{Category: nil, Response: resp}
}
