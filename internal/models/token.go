package models

// TokenPair is a freshly minted access/refresh token pair, each signed with
// its own secret and TTL.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
