// Package mongo connects to MongoDB with retries and exposes a readiness
// check for the connected client.
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//	client, err := mongo.New(ctx, cfg)
//	db := client.Database(cfg.Database)
package mongo
