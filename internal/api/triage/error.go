package triage

import "HelpdeskGolang/pkg/response"

var (
	ErrModelUnavailable   = response.NewError(500, "classifier model could not be trained or loaded")
	ErrInvalidExample     = response.NewError(400, "invalid training example")
	ErrUnknownCategory    = response.NewError(400, "unknown training category")
	ErrFallbackNotAllowed = response.NewError(400, "fallback category cannot receive training weight")
)
