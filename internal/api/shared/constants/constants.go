package constants

const (
	MAX_PAGE_SIZE            = 100
	DEFAULT_PROPERTIES_LIMIT = 20
	DEFAULT_EVENTS_LIMIT     = 50
	DEFAULT_OFFSET           = uint64(0)
	// MAX_REQUEST_BODY_SIZE bounds the body hashed by signer authentication
	MAX_REQUEST_BODY_SIZE = 64 << 10
)
