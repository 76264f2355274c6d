package catalog

import "errors"

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrTagNotFound      = errors.New("tag not found")
	ErrFilterNotFound   = errors.New("filter not found")

	ErrInvalidPayload    = errors.New("invalid payload")
	ErrUnknownCategory   = errors.New("item references an unknown category")
	ErrUnknownTag        = errors.New("item references an unknown tag")
	ErrCategoryInUse     = errors.New("category still has items")
	ErrDuplicateTagKey   = errors.New("tag key already exists")
	ErrDuplicateFilter   = errors.New("filter key already exists")
	ErrReservedFilterKey = errors.New("filter key is reserved")
	ErrInvalidTagKey     = errors.New("tag key must be a lowercase slug")
	ErrInvalidTagType    = errors.New("unknown tag category")
	ErrInvalidFilterKey  = errors.New("filter key must be a lowercase slug")
	ErrInvalidFilterType = errors.New("unknown filter type")
	ErrInvalidPredicate  = errors.New("invalid filter predicate")
	ErrInvalidOrder      = errors.New("order must list every filter exactly once")
)
