package repository

import "errors"

var (
	// ErrTooFewRows the workbook has no header row plus at least one data row.
	ErrTooFewRows = errors.New("excel file must have at least a header row and one data row")

	// ErrReadFailure the source could not be read or is not a readable workbook.
	ErrReadFailure = errors.New("failed to read spreadsheet")

	// ErrUnknownProfile the export profile name is not one of simple, detailed, minimal.
	ErrUnknownProfile = errors.New("unknown export profile")

	// ErrCategoryNotFound no category with the given ID in the static list.
	ErrCategoryNotFound = errors.New("category not found")
)
