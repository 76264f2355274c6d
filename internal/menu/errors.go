package menu

import "errors"

var (
	ErrInvalidPredicate = errors.New("selected filter has an invalid predicate")
	ErrInvalidDraft     = errors.New("invalid draft item")
)
