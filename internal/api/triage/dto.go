package triage

type RetrainExample struct {
	Text     string `json:"text" validate:"required,min=3"`
	Category string `json:"category" validate:"required"`
}

type RetrainRequest struct {
	Examples []RetrainExample `json:"examples" validate:"omitempty,dive"`
}

type RetrainResponse struct {
	Success     bool `json:"success"`
	SampleCount int  `json:"sample_count"`
}
