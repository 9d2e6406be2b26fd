// Package token issues and verifies the signed bearer tokens that back
// API authentication.
//
// Tokens are HMAC-SHA256 signed JWTs carrying the user id and an
// expiration timestamp. The signing secret is static process-wide
// configuration, shared by every instance verifying the same tokens.
// There is no refresh mechanism: an expired token requires a new login.
package token
