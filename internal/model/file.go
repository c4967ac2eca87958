package model

import "time"

// StoredFile is the metadata record for a user-uploaded file. The bytes
// themselves live on disk under the uploads directory; FileURL is the
// public path they are served from.
type StoredFile struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	FileName     string    `json:"fileName"`     // name on disk, generated
	OriginalName string    `json:"originalName"` // name as uploaded by the client
	FileType     string    `json:"fileType"`
	FileSize     int64     `json:"fileSize"`
	FileURL      string    `json:"fileUrl"`
	UploadedAt   time.Time `json:"uploadedAt"`
}
