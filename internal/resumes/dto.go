package resumes

import "time"

// UploadResponse is returned after a successful upload.
type UploadResponse struct {
	ResumeID  string `json:"resumeId"`
	FileName  string `json:"fileName"`
	WordCount int    `json:"wordCount"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message"`
}

// ResumeResponse is the list representation of a resume.
type ResumeResponse struct {
	ResumeID   string    `json:"resumeId"`
	FileName   string    `json:"fileName"`
	MimeType   string    `json:"mimeType"`
	SizeBytes  int64     `json:"sizeBytes"`
	WordCount  int       `json:"wordCount"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func toUploadResponse(r Resume) UploadResponse {
	return UploadResponse{
		ResumeID:  r.ID,
		FileName:  r.FileName,
		WordCount: r.WordCount,
		Email:     r.Email,
		Phone:     r.Phone,
		Message:   "Resume uploaded successfully",
	}
}

func toResponse(r Resume) ResumeResponse {
	return ResumeResponse{
		ResumeID:   r.ID,
		FileName:   r.FileName,
		MimeType:   r.MimeType,
		SizeBytes:  r.SizeBytes,
		WordCount:  r.WordCount,
		UploadedAt: r.CreatedAt,
	}
}
