package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Dataset names one of the four journal collections.
type Dataset string

const (
	DatasetSubjects   Dataset = "subjects"
	DatasetActivities Dataset = "activities"
	DatasetBooks      Dataset = "books"
	DatasetQuestions  Dataset = "questions"
)

func (x Dataset) String() string {
	return string(x)
}

func (x Dataset) Validate() error {
	switch x {
	case DatasetSubjects, DatasetActivities, DatasetBooks, DatasetQuestions:
		return nil
	}
	return goerr.New("invalid dataset", goerr.V("dataset", x))
}

var datasetLabels = map[Dataset]string{
	DatasetSubjects:   "Subjects",
	DatasetActivities: "Activities",
	DatasetBooks:      "Books",
	DatasetQuestions:  "Questions",
}

func (x Dataset) Label() string {
	return datasetLabels[x]
}

// Datasets returns all datasets in their canonical order.
func Datasets() []Dataset {
	return []Dataset{DatasetSubjects, DatasetActivities, DatasetBooks, DatasetQuestions}
}

// ParseDataset converts a user-supplied name into a Dataset.
func ParseDataset(s string) (Dataset, error) {
	d := Dataset(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}
