package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address is
// configured.
var errNoHandlersAreCreated = errors.New("no handlers are created")
