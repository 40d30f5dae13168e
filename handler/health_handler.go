package handler

import (
	"context"
	"time"

	"courtsync/services"
	"courtsync/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// HealthHandler reports backend reachability and host load. It is public so
// probes can hit it without a session.
func HealthHandler(c *gin.Context, client *mongo.Client) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	mongoStatus := "ok"
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		mongoStatus = "unreachable"
	}

	redisStatus := "ok"
	if services.TokenBlacklist == nil || services.TokenBlacklist.Client.Ping(ctx).Err() != nil {
		redisStatus = "unreachable"
	}

	utils.Success(c, gin.H{
		"mongo":          mongoStatus,
		"redis":          redisStatus,
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
	})
}
