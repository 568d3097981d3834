package models

// BannerMode is the display state derived from a file selection.
type BannerMode string

const (
	BannerNoFiles    BannerMode = "no-files"
	BannerAllInvalid BannerMode = "all-invalid"
	BannerSomeValid  BannerMode = "some-valid"
)

// FileDescriptor is what the browser hands over per selected file.
type FileDescriptor struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// SelectionRow is one rendered file-list entry.
type SelectionRow struct {
	Name  string `json:"name"`
	Size  int64  `json:"size"`
	Valid bool   `json:"valid"`
}

// SelectionReport is the full state for a selection event. SubmitEnabled
// holds iff ValidCount > 0.
type SelectionReport struct {
	Rows          []SelectionRow `json:"rows"`
	ValidCount    int            `json:"valid_count"`
	Mode          BannerMode     `json:"mode"`
	SubmitEnabled bool           `json:"submit_enabled"`
}

type SelectionRequest struct {
	Files []FileDescriptor `json:"files"`
}

type UploadFileResult struct {
	Filename string `json:"filename"`
	ResumeID string `json:"resume_id,omitempty"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

type UploadResponse struct {
	ParsedCount int                `json:"parsed_count"`
	FailedCount int                `json:"failed_count"`
	Files       []UploadFileResult `json:"files"`
}
