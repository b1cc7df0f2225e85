package tokens

import "errors"

// ErrTokenExpired срок действия токена истек.
var ErrTokenExpired = errors.New("token expired")
