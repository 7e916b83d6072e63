package core

import "errors"

// ErrProtocol is returned when the game engine sends input that cannot be
// turned into a valid turn update.
var ErrProtocol = errors.New("protocol error")
