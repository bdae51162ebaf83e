package domain

import "strings"

// TokenPrefix is the demo bearer-token convention. The token is opaque to
// any authorization decision; the embedded email is used for display and for
// keying demo data only.
const TokenPrefix = "demo-token-for-"

// TokenForEmail builds the demo token the login endpoint issues.
func TokenForEmail(email string) string {
	return TokenPrefix + email
}

// EmailFromToken extracts the email from a demo token. ok is false when the
// token does not follow the convention.
func EmailFromToken(token string) (email string, ok bool) {
	if !strings.HasPrefix(token, TokenPrefix) {
		return "", false
	}
	email = token[len(TokenPrefix):]
	return email, email != ""
}
