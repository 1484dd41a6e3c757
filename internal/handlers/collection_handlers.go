package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"rei_do_lanche_backend/internal/middleware"
	"rei_do_lanche_backend/internal/repositories"
	"rei_do_lanche_backend/internal/services"
	"rei_do_lanche_backend/pkg/utils"
)

// CollectionHandler serves the uniform per-collection CRUD surface the
// terminal synchronizes against. One route set is registered per collection,
// closing over its typed adapter.
type CollectionHandler struct {
	collectionService services.CollectionService
}

// NewCollectionHandler creates a new CollectionHandler.
func NewCollectionHandler(cs services.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: cs}
}

// Collections lists every adapter so the router can register one route set
// per collection name.
func (h *CollectionHandler) Collections() []services.Collection {
	return h.collectionService.All()
}

// List returns every record of one collection for the authenticated account.
func (h *CollectionHandler) List(col services.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := col.List(middleware.AccountID(c))
		if err != nil {
			utils.LogError(err, "List: Error listing collection "+col.Name())
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch records.", "Internal error"))
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

// Upsert inserts or replaces one record. The terminal writes whole records,
// so POST is an upsert keyed by (account, id).
func (h *CollectionHandler) Upsert(col services.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Failed to read request body.", err.Error()))
			return
		}

		record, err := col.Upsert(middleware.AccountID(c), body)
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				utils.RespondValidationFailed(c, err.Error())
				return
			}
			utils.LogError(err, "Upsert: Error upserting into collection "+col.Name())
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to save record.", "Internal error"))
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

// Update applies a partial field update to one record.
func (h *CollectionHandler) Update(col services.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			utils.RespondValidationFailed(c, err.Error())
			return
		}

		err := col.Update(middleware.AccountID(c), c.Param("id"), fields)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Record not found.", ""))
				return
			}
			utils.LogError(err, "Update: Error updating collection "+col.Name())
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update record.", "Internal error"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": true})
	}
}

// Delete removes one record.
func (h *CollectionHandler) Delete(col services.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := col.Delete(middleware.AccountID(c), c.Param("id"))
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Record not found.", ""))
				return
			}
			utils.LogError(err, "Delete: Error deleting from collection "+col.Name())
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete record.", "Internal error"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}
