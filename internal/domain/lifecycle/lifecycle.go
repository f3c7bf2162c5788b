// Package lifecycle holds shared start and stop timing.
package lifecycle

import "time"

// DefaultTimeout bounds start and shutdown hooks.
const DefaultTimeout = 10 * time.Second
