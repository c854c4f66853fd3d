// Package lifecycle holds shared timeouts for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work done inside fx hooks.
const DefaultTimeout = 10 * time.Second
