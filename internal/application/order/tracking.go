package order

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"time"
)

const trackingAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewTrackingNumber builds a customer-facing tracking reference:
// "TRK" + the last ten digits of the current unix-millis timestamp + five
// random base36 characters. The suffix comes from crypto/rand because the
// number doubles as a customer-facing reference and collisions must stay
// negligible.
func NewTrackingNumber() (string, error) {
	ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(ms) > 10 {
		ms = ms[len(ms)-10:]
	}

	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("tracking number entropy: %w", err)
	}
	for i, b := range buf {
		buf[i] = trackingAlphabet[int(b)%len(trackingAlphabet)]
	}
	return "TRK" + ms + string(buf), nil
}
