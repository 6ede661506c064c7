package seal

import "errors"

var (
	ErrRootMissing      = errors.New("the root was nil when it should have been provided")
	ErrSealVerifyFailed = errors.New("the seal signature verification failed")
)
