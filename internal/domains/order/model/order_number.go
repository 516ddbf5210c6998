package model

import (
	"crypto/rand"
	"fmt"
	"time"
)

// orderNumberCharset omits 0/O and 1/I lookalikes so staff can read the
// number over the phone.
const orderNumberCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewOrderNumber builds a human-readable order reference of the form
// ORD-20260901-K7QX2M. Uniqueness is enforced by the database; callers
// retry on collision.
func NewOrderNumber(now time.Time) string {
	suffix := make([]byte, 6)
	random := make([]byte, 6)
	if _, err := rand.Read(random); err != nil {
		// crypto/rand failing means the platform is broken; fall back to
		// a time-derived suffix and let the unique index catch collisions.
		nanos := now.UnixNano()
		for i := range suffix {
			suffix[i] = orderNumberCharset[nanos%int64(len(orderNumberCharset))]
			nanos /= int64(len(orderNumberCharset))
		}
	} else {
		for i, b := range random {
			suffix[i] = orderNumberCharset[int(b)%len(orderNumberCharset)]
		}
	}

	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102"), suffix)
}
