package database

import (
	"context"
	"geics-service/internal/app/config"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoProbeTimeout = 5 * time.Second

// NewMongoDB probes the configured MongoDB deployment with a short timeout.
// Unreachability is not fatal: the caller falls back to the in-memory
// appointment store, so a nil client is a valid result.
func NewMongoDB(driverConfig *config.DriverConfig, log *logrus.Logger) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), mongoProbeTimeout)
	defer cancel()

	dbOptions := options.Client().
		ApplyURI(driverConfig.MongoDB.URI).
		SetServerSelectionTimeout(mongoProbeTimeout)
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Warnf("MongoDB not available, using in-memory storage: %s", err.Error())
		return nil
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Warnf("MongoDB not available, using in-memory storage: %s", err.Error())
		return nil
	}
	log.Println("Successfully connected to mongo database")
	return client
}
