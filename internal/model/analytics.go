package model

// StorageStats is the per-user usage overview shown on the dashboard.
type StorageStats struct {
	FileCount     int64            `json:"fileCount"`
	TotalFileSize int64            `json:"totalFileSize"` // bytes
	ByFileType    map[string]int64 `json:"byFileType"`    // content type -> bytes
	NoteCount     int64            `json:"noteCount"`
	TextCount     int64            `json:"textCount"`
}
