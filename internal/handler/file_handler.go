package handler

import (
	"errors"
	"log"
	"net/http"

	"secure_vault/internal/model"
	"secure_vault/internal/service"

	"github.com/gin-gonic/gin"
)

// FileHandler handles file storage requests
type FileHandler struct {
	service service.FileService
}

// NewFileHandler creates a new FileHandler
func NewFileHandler(s service.FileService) *FileHandler {
	return &FileHandler{service: s}
}

func (h *FileHandler) Upload(c *gin.Context) {
	identity, err := getAuthIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	file, err := h.service.Upload(c.Request.Context(), identity.UserID, fileHeader)
	if err != nil {
		if errors.Is(err, service.ErrBlockedFileType) || errors.Is(err, service.ErrFileSizeExceeded) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error uploading file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "File upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"file":    file,
	})
}

func (h *FileHandler) GetMyFiles(c *gin.Context) {
	identity, err := getAuthIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	files, err := h.service.GetUserFiles(c.Request.Context(), identity.UserID)
	if err != nil {
		log.Printf("Error getting user files: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch files"})
		return
	}
	if files == nil {
		files = []model.StoredFile{}
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}

func (h *FileHandler) DeleteFile(c *gin.Context) {
	identity, err := getAuthIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity.UserID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error deleting file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}

// RegisterFileRoutes registers file storage routes behind the auth gate
func (h *FileHandler) RegisterFileRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	fileRoutes := rg.Group("/files")
	fileRoutes.Use(authMW)
	{
		fileRoutes.POST("/upload", h.Upload)
		fileRoutes.GET("", h.GetMyFiles)
		fileRoutes.DELETE("/:id", h.DeleteFile)
	}
}
