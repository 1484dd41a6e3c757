package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rei_do_lanche_backend/internal/middleware"
	"rei_do_lanche_backend/internal/models"
	"rei_do_lanche_backend/internal/monitoring"
	"rei_do_lanche_backend/internal/services"
	"rei_do_lanche_backend/pkg/utils"
)

// MigrationHandler serves the bulk snapshot import endpoint.
type MigrationHandler struct {
	migrationService services.MigrationService
}

// NewMigrationHandler creates a new MigrationHandler.
func NewMigrationHandler(ms services.MigrationService) *MigrationHandler {
	return &MigrationHandler{migrationService: ms}
}

// Migrate imports a terminal's full snapshot into the durable store in one
// transaction.
func (h *MigrationHandler) Migrate(c *gin.Context) {
	var snapshot models.Snapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		utils.LogError(err, "Migrate: Failed to bind snapshot")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	result, err := h.migrationService.ImportSnapshot(middleware.AccountID(c), &snapshot)
	monitoring.ObserveMigration(err == nil)
	if err != nil {
		utils.LogError(err, "Migrate: Error from migrationService.ImportSnapshot")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to import snapshot.", "Internal error"))
		return
	}

	utils.LogInfo("Snapshot imported", map[string]interface{}{
		"account_id": result.AccountID,
		"imported":   result.Imported,
	})
	c.JSON(http.StatusOK, result)
}
