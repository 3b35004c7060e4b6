package domain

import "errors"

var (
	ErrFieldNotFound    = errors.New("field not found on template")
	ErrFieldIDCollision = errors.New("generated field id collides with an existing field")
	ErrInvalidFieldType = errors.New("invalid field type")
)
