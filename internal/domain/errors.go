package domain

import "errors"

var (
	ErrClientExists        = errors.New("client already registered")
	ErrClientNotRegistered = errors.New("client not registered")
	ErrSentinel            = errors.New("sentinel entries cannot be removed")
	ErrRecordSize          = errors.New("record has unexpected size")
)
