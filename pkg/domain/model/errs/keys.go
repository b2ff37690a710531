package errs

import "github.com/m-mizutani/goerr/v2"

// Typed keys for structured error values shared across layers.
var (
	DatasetKey  = goerr.NewTypedKey[string]("dataset")
	RecordIDKey = goerr.NewTypedKey[string]("record_id")
	BackendKey  = goerr.NewTypedKey[string]("backend")
)
