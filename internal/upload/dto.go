// AngelaMos | 2026
// dto.go

package upload

type FromURLRequest struct {
	URL      string `json:"url"      validate:"required,max=2048"`
	Filename string `json:"filename" validate:"omitempty,max=255"`
}

type Response struct {
	URL string `json:"url"`
}
