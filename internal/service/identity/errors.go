package identity

import "errors"

var (
	ErrUnknownActor = errors.New("account id matches no psychologist or user")
)
