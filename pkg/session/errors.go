package session

import "errors"

var ErrTokenNotFound = errors.New("session: token not found")
