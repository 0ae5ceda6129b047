package model

// GetResumeRequest is the (empty) payload of GET /api/resume.
type GetResumeRequest struct{}

func (r *GetResumeRequest) Validate() error {
	return nil
}
