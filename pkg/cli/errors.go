package cli

import "errors"

// Common CLI errors
var (
	ErrNoValues     = errors.New("nothing to send: pass --set field=value or -i")
	ErrNotConfirmed = errors.New("aborted")
)
