// internal/utils/clock.go
package utils

import (
	"time"
)

// dbTimeOffset normalizes write timestamps to the dataset's target
// timezone regardless of where the server clock is set.
const dbTimeOffset = -9 * time.Hour

// AdjustedNow returns wall-clock now shifted by the fixed database
// offset. Every timestamped write (purchase, comment, last login) must
// use this, never time.Now directly.
func AdjustedNow() time.Time {
	return time.Now().Add(dbTimeOffset)
}
