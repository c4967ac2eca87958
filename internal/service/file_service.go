package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"secure_vault/internal/model"
	"secure_vault/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrBlockedFileType  = errors.New("Executable files are not allowed for security reasons")
	ErrFileSizeExceeded = errors.New("File size exceeds 50MB limit")
	ErrFileNotFound     = errors.New("File not found")
)

const MaxFileSize = 50 * 1024 * 1024 // 50MB

// Executable-ish extensions are rejected before anything touches disk
var blockedExtensions = map[string]bool{
	".exe": true, ".bat": true, ".sh": true, ".cmd": true,
	".com": true, ".app": true, ".msi": true, ".dmg": true,
}

// FileService defines operations for user file storage
type FileService interface {
	Upload(ctx context.Context, userID string, fileHeader *multipart.FileHeader) (*model.StoredFile, error)
	GetUserFiles(ctx context.Context, userID string) ([]model.StoredFile, error)
	Delete(ctx context.Context, userID, fileID string) error
}

type fileService struct {
	repo       repository.FileRepository
	uploadsDir string
}

// NewFileService creates a new FileService
func NewFileService(repo repository.FileRepository, uploadsDir string) FileService {
	return &fileService{repo: repo, uploadsDir: uploadsDir}
}

// Upload validates the file, writes it to the uploads directory under a
// generated name and persists its metadata scoped to the owner.
func (s *fileService) Upload(ctx context.Context, userID string, fileHeader *multipart.FileHeader) (*model.StoredFile, error) {
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileSizeExceeded
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if blockedExtensions[ext] {
		return nil, ErrBlockedFileType
	}

	if err := os.MkdirAll(s.uploadsDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	fileName := fmt.Sprintf("file-%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
	filePath := filepath.Join(s.uploadsDir, fileName)

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file on server: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	fileType := fileHeader.Header.Get("Content-Type")
	if fileType == "" {
		fileType = mime.TypeByExtension(ext)
	}
	if fileType == "" {
		fileType = "application/octet-stream"
	}

	file := &model.StoredFile{
		ID:           uuid.NewString(),
		UserID:       userID,
		FileName:     fileName,
		OriginalName: fileHeader.Filename,
		FileType:     fileType,
		FileSize:     fileHeader.Size,
		FileURL:      "/uploads/" + fileName,
		UploadedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, file); err != nil {
		os.Remove(filePath) // Attempt to clean up the orphaned file
		return nil, fmt.Errorf("failed to persist file metadata: %w", err)
	}

	return file, nil
}

// GetUserFiles lists a user's files, newest first
func (s *fileService) GetUserFiles(ctx context.Context, userID string) ([]model.StoredFile, error) {
	files, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user files from repo: %w", err)
	}
	return files, nil
}

// Delete removes a user's file from disk and its metadata row. A file that
// does not exist or belongs to someone else reports not found.
func (s *fileService) Delete(ctx context.Context, userID, fileID string) error {
	file, err := s.repo.FindByIDAndUser(ctx, fileID, userID)
	if err != nil {
		return fmt.Errorf("failed to find file for deletion: %w", err)
	}
	if file == nil {
		return ErrFileNotFound
	}

	filePath := filepath.Join(s.uploadsDir, file.FileName)
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file from disk: %w", err)
	}

	if err := s.repo.Delete(ctx, fileID); err != nil {
		return fmt.Errorf("failed to delete file record: %w", err)
	}
	return nil
}
