package errs

import "github.com/m-mizutani/goerr/v2"

var (
	// Client errors (4xx)
	TagNotFound         = goerr.NewTag("not_found")         // 404
	TagValidation       = goerr.NewTag("validation")        // 400
	TagInvalidRequest   = goerr.NewTag("invalid_request")   // 400
	TagInsufficientData = goerr.NewTag("insufficient_data") // 422, informational for the caller

	// Server errors (5xx)
	TagInternal    = goerr.NewTag("internal")    // 500
	TagUnavailable = goerr.NewTag("unavailable") // 503, record store or storage boundary failure
)
