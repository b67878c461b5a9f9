package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// ClientID returns a random MQTT client identifier with the given prefix.
func ClientID(prefix string) string {
	var b [6]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
	}
	return prefix + "-" + hex.EncodeToString(b[:])
}
