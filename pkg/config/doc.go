// Package config loads typed configuration structs from the environment.
//
// Values are read from an optional .env file (github.com/joho/godotenv) and
// then parsed into the target struct by field tags
// (github.com/caarlos0/env/v11). Every struct type is parsed once per
// process; later calls to Load for the same type are served from a cache.
//
//	type Config struct {
//		JWTSecret string `env:"JWT_SECRET,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
package config
