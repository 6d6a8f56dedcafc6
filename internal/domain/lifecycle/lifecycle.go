// Package lifecycle holds shared start/stop settings for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks such as connection pings and graceful shutdown.
const DefaultTimeout = 10 * time.Second
