package consts

const (
	// TokenDenyKey prefixes revoked token signatures, set on logout.
	TokenDenyKey = "auth:token:deny:"
)
