package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"rei_do_lanche_backend/internal/pos"
	"rei_do_lanche_backend/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	utils.InitLogger()

	cachePath := utils.Getenv("POS_CACHE_PATH", "pos_cache.db")
	remoteURL := utils.Getenv("POS_REMOTE_URL", "http://localhost:8080")
	accountID := utils.Getenv("POS_ACCOUNT_ID", "")
	email := utils.Getenv("POS_EMAIL", "")
	password := utils.Getenv("POS_PASSWORD", "")

	cache, err := pos.OpenCache(cachePath)
	if err != nil {
		log.Fatalf("Failed to open local cache: %v", err)
	}
	defer cache.Close()

	ctx := context.Background()
	remote := pos.NewHTTPRemote(remoteURL, "")

	if email != "" && password != "" {
		loggedInAccount, err := remote.Login(ctx, email, password)
		if err != nil {
			utils.LogWarn(err, "login failed, continuing with configured account id")
		} else {
			accountID = loggedInAccount
		}
	}
	if accountID == "" {
		log.Fatal("No account: set POS_ACCOUNT_ID or POS_EMAIL/POS_PASSWORD")
	}

	store := pos.NewStore(accountID, remote, cache)

	degraded, err := store.LoadSession(ctx)
	if err != nil {
		log.Fatalf("Failed to load session: %v", err)
	}
	if degraded {
		utils.LogWarn(nil, "running in degraded mode on the local cache")
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(utils.GinLogger())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "degraded": degraded})
	})
	pos.RegisterRoutes(engine.Group("/api/pos"), store)

	port := utils.Getenv("POS_PORT", "8090")
	utils.LogInfo("Terminal starting", map[string]interface{}{"port": port, "account_id": accountID})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start terminal")
		log.Fatalf("Failed to start terminal: %v", err)
	}
}
