package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// RecordID identifies a single journal record across all datasets.
type RecordID string

func (x RecordID) String() string {
	return string(x)
}

func NewRecordID() RecordID {
	return RecordID(uuid.New().String())
}

func (x RecordID) Validate() error {
	if x == EmptyRecordID {
		return goerr.New("empty record ID")
	}
	return nil
}

const (
	EmptyRecordID RecordID = ""
)
