package dto

import dom "github.com/techpark-119/Todo-App/internal/domain"

// CreateCategoryRequest is the JSON body for POST /categories.
type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type ListCategoriesResponse struct {
	Items []dom.Category `json:"items"`
}
