package repository

import "errors"

var (
	ErrSettingsNotFound = errors.New("repository: settings not found")
)
