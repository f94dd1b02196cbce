// Package lifecycle holds shared start/stop settings for fx-managed components.
package lifecycle

import "time"

// DefaultTimeout bounds every start and stop hook.
const DefaultTimeout = 15 * time.Second
