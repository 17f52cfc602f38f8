package cmdpool

import "errors"

const Namespace = "cmdpool"

var (
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")
	ErrNilChannel    = errors.New(Namespace + ": pool requires a non-nil channel")
	ErrNilConsumer   = errors.New(Namespace + ": pool requires a non-nil consumer")
)
