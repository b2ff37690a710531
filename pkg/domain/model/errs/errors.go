package errs

import (
	"errors"
)

var ErrInsufficientRecords = errors.New("not enough records")
var ErrRecordNotFound = errors.New("record not found")
var ErrQuestionNotFound = errors.New("question not found")
var ErrMaterialNotFound = errors.New("material not found")
