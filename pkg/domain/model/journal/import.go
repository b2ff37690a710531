package journal

// ImportSummary counts the records stored per dataset by one bulk import.
type ImportSummary struct {
	Subjects   int `json:"subjects"`
	Activities int `json:"activities"`
	Books      int `json:"books"`
	Questions  int `json:"questions"`
}

func (x *ImportSummary) Total() int {
	return x.Subjects + x.Activities + x.Books + x.Questions
}
