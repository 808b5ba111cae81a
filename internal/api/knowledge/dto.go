package knowledge

import "HelpdeskGolang/internal/entity"

type CreateArticleRequest struct {
	Title    string   `json:"title" validate:"required,min=3,max=256"`
	Category string   `json:"category" validate:"required"`
	Keywords []string `json:"keywords" validate:"omitempty,dive,min=2"`
	Problem  string   `json:"problem" validate:"required"`
	Solution string   `json:"solution" validate:"required"`
	Steps    []string `json:"steps" validate:"omitempty,dive,min=3"`
}

type UpdateArticleRequest struct {
	Title    string   `json:"title" validate:"omitempty,min=3,max=256"`
	Category string   `json:"category" validate:"omitempty"`
	Keywords []string `json:"keywords" validate:"omitempty,dive,min=2"`
	Problem  string   `json:"problem" validate:"omitempty"`
	Solution string   `json:"solution" validate:"omitempty"`
	Steps    []string `json:"steps" validate:"omitempty,dive,min=3"`
}

type SearchResponse struct {
	Results           []entity.ScoredArticle `json:"results"`
	SuggestedCategory string                 `json:"suggested_category"`
	Confidence        int                    `json:"confidence"`
}
