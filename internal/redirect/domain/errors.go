package domain

import "errors"

var (
	ErrEntryNotFound    = errors.New("entry not found")
	ErrUniqueIDRequired = errors.New("unique_id is required")
	ErrFinalURLRequired = errors.New("final_url is required")
)
