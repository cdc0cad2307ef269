// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP/HTTPS ports,
// TLS, logging level/format, CORS, request limits). AppConfig is everything
// specific to rollcall itself.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Bearer-token verification. Tokens are issued by an external identity
	// service that shares this secret; rollcall only verifies.
	JWTSecret string

	// TimeZone is the IANA zone that draws the attendance day boundary
	// (e.g. "America/Chicago"). Explicit so "today" never depends on the
	// host's ambient zone.
	TimeZone string
}
