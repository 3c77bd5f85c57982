package constants

import "time"

const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultTimeout        = 30 * time.Second
	ProviderHTTPTimeout   = 10 * time.Second

	DatabaseMaxOpenConns    = 10
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	PersonalizedLimit          = 10
	DefaultRecommendationScore = 0.5
	AvailabilityWindow         = 48 * time.Hour
	DefaultServiceFeeRate      = 0.10
)

const (
	RedisKeyProviderPrefix = "provider"
	TaskCatalogRefresh     = "catalog:refresh"
	RefreshTaskUniqueTTL   = 10 * time.Minute
)

const (
	ContextRequestID = "request_id"
	HeaderRequestID  = "X-Request-ID"
)
