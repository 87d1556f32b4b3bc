package controllers

import (
	"context"
	"net/http"
	"time"

	"civic-reporter-be/config"
	"civic-reporter-be/migration"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MigrateCollections runs the one-shot merge of the legacy mapObjects and
// qrCodes collections into civicObjects. Safe to call repeatedly.
func MigrateCollections(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	migrator := migration.NewMigrator(config.ConnectDB(), zap.L())
	stats, err := migrator.Run(ctx)
	if err != nil {
		zap.L().Error("migration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Migration failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Migration complete",
		"stats":   stats,
	})
}
