package service

import "errors"

var (
	ErrTenantNotFound     = errors.New("tenant not found")
	ErrPreferenceNotFound = errors.New("preference not found")
)
