// Package handler provides HTTP handlers for the contacts feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"contact_backend/internal/feature/contacts/domain/entity"
	"contact_backend/internal/feature/contacts/transport/http/dto"
	"contact_backend/internal/feature/contacts/usecase"
	"contact_backend/internal/platform/sessionmw"
)

// ContactsUsecase defines the contact operations the handlers invoke.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type ContactsUsecase interface {
	Create(ctx context.Context, ownerID uint, name, email, mobile string) (*entity.Contact, error)
	Get(ctx context.Context, callerID, contactID uint) (*entity.Contact, error)
	Edit(ctx context.Context, callerID, contactID uint, name, email, mobile string) error
	Delete(ctx context.Context, callerID, contactID uint) error
	ListByOwner(ctx context.Context, ownerID uint) ([]entity.Contact, error)
}

// ContactHandler handles HTTP requests for contact management.
// All routes sit behind the session middleware; the owner identity comes
// from the resolved session, never from the request body.
type ContactHandler struct {
	contacts ContactsUsecase
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contacts ContactsUsecase) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// List returns the caller's contacts.
func (h *ContactHandler) List(c *gin.Context) {
	ownerID, ok := sessionmw.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	contacts, err := h.contacts.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		slog.Error("contact list error", "error", err, "account_id", ownerID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	out := make([]dto.ContactItem, 0, len(contacts))
	for i := range contacts {
		out = append(out, dto.ContactItemFromEntity(&contacts[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create adds a contact owned by the caller.
func (h *ContactHandler) Create(c *gin.Context) {
	ownerID, ok := sessionmw.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var req dto.ContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	contact, err := h.contacts.Create(c.Request.Context(), ownerID, req.Name, req.Email, req.Mobile)
	if err != nil {
		slog.Error("contact create error", "error", err, "account_id", ownerID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	slog.Info("contact created", "contact_id", contact.ID, "account_id", ownerID)
	c.JSON(http.StatusCreated, dto.ContactItemFromEntity(contact))
}

// Get returns one of the caller's contacts. Missing contacts and contacts
// owned by someone else both answer 404.
func (h *ContactHandler) Get(c *gin.Context) {
	ownerID, ok := sessionmw.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	contactID, err := contactParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}
	contact, err := h.contacts.Get(c.Request.Context(), ownerID, contactID)
	if err != nil {
		if errors.Is(err, usecase.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
			return
		}
		slog.Error("contact get error", "error", err, "contact_id", contactID, "account_id", ownerID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.ContactItemFromEntity(contact))
}

// Edit updates a contact the caller owns. Contacts that are missing or
// belong to someone else are skipped without telling the caller which.
func (h *ContactHandler) Edit(c *gin.Context) {
	ownerID, ok := sessionmw.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	contactID, err := contactParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}
	var req dto.ContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.contacts.Edit(c.Request.Context(), ownerID, contactID, req.Name, req.Email, req.Mobile); err != nil {
		slog.Error("contact edit error", "error", err, "contact_id", contactID, "account_id", ownerID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// Delete removes a contact the caller owns, with the same silent-skip
// semantics as Edit.
func (h *ContactHandler) Delete(c *gin.Context) {
	ownerID, ok := sessionmw.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	contactID, err := contactParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}
	if err := h.contacts.Delete(c.Request.Context(), ownerID, contactID); err != nil {
		slog.Error("contact delete error", "error", err, "contact_id", contactID, "account_id", ownerID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// contactParam parses the :id route parameter.
func contactParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
