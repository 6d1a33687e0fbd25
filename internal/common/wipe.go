package common

// WipeByteArray overwrites b with zeros. Passwords read from the terminal are
// wiped with it once they have been sent. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// BearerToken extracts the token from an Authorization header value.
// It returns false when the value does not use the bearer scheme.
func BearerToken(header string) (string, bool) {
	if len(header) <= len(BearerPrefix) || header[:len(BearerPrefix)] != BearerPrefix {
		return "", false
	}
	return header[len(BearerPrefix):], true
}
