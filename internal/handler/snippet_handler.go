package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"secure_vault/internal/model"
	"secure_vault/internal/service"

	"github.com/gin-gonic/gin"
)

// SnippetHandler serves notes or saved texts, depending on how it is wired
type SnippetHandler struct {
	service service.SnippetService
	label   string // "Note" or "Text", used in messages
	listKey string // "notes" or "texts", used in list responses
}

// NewNoteHandler creates the handler for the notes surface
func NewNoteHandler(s service.SnippetService) *SnippetHandler {
	return &SnippetHandler{service: s, label: "Note", listKey: "notes"}
}

// NewTextHandler creates the handler for the saved-texts surface
func NewTextHandler(s service.SnippetService) *SnippetHandler {
	return &SnippetHandler{service: s, label: "Text", listKey: "texts"}
}

func (h *SnippetHandler) Create(c *gin.Context) {
	identity, err := getAuthIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreateSnippetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	snippet, err := h.service.Create(c.Request.Context(), identity.UserID, req)
	if err != nil {
		log.Printf("Error creating %s: %v", h.listKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save " + h.listKey})
		return
	}

	resp := gin.H{"message": h.label + " saved successfully"}
	resp[strings.ToLower(h.label)] = snippet
	c.JSON(http.StatusCreated, resp)
}

func (h *SnippetHandler) GetMySnippets(c *gin.Context) {
	identity, err := getAuthIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	snippets, err := h.service.GetUserSnippets(c.Request.Context(), identity.UserID)
	if err != nil {
		log.Printf("Error getting user %s: %v", h.listKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch " + h.listKey})
		return
	}
	if snippets == nil {
		snippets = []model.Snippet{}
	}
	c.JSON(http.StatusOK, gin.H{h.listKey: snippets})
}

func (h *SnippetHandler) Delete(c *gin.Context) {
	identity, err := getAuthIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity.UserID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNoteNotFound) || errors.Is(err, service.ErrTextNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error deleting from %s: %v", h.listKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete " + h.listKey})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.label + " deleted successfully"})
}

// RegisterSnippetRoutes registers the snippet routes under the given path
func (h *SnippetHandler) RegisterSnippetRoutes(rg *gin.RouterGroup, path string, authMW gin.HandlerFunc) {
	routes := rg.Group(path)
	routes.Use(authMW)
	{
		routes.POST("", h.Create)
		routes.GET("", h.GetMySnippets)
		routes.DELETE("/:id", h.Delete)
	}
}
