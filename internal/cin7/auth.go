package cin7

import (
	"encoding/base64"
	"fmt"
)

// Credentials authenticate one Cin7 tenant account.
type Credentials struct {
	Username string
	APIKey   string
}

// AuthHeader returns the HTTP headers for a Basic-auth API request. Pure
// function, no network access; the key only ever appears base64-encoded
// inside the returned map.
func (c Credentials) AuthHeader() map[string]string {
	encoded := base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", c.Username, c.APIKey)))
	return map[string]string{
		"Authorization": "Basic " + encoded,
		"Content-Type":  "application/json",
	}
}
