package knowledge

import "HelpdeskGolang/pkg/response"

var (
	ErrArticleNotFound    = response.NewError(404, "knowledge article not found")
	ErrCreateArticle      = response.NewError(500, "failed to create knowledge article")
	ErrUpdateArticle      = response.NewError(500, "failed to update knowledge article")
	ErrInvalidArticleData = response.NewError(400, "invalid knowledge article data")
)
