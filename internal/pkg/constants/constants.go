package constants

const (
	CookieKeyAuthToken = "auth_token"

	CtxKeyProfile = "ctx_profile"

	ViperKeyAddr          = "addr"
	ViperKeyDatabaseDSN   = "database_dsn"
	ViperKeyStorageDir    = "storage_dir"
	ViperKeyPublicBaseURL = "public_base_url"
	ViperKeyCORSOrigin    = "cors_origin"
	ViperKeyDebug         = "debug"
	ViperSecretKey        = "secret"

	AuthTokenTTLHours = 24 * 7

	MaxUploadSizeBytes = 20 << 20

	SeriesMinImages = 4
	SeriesMaxImages = 6
)
