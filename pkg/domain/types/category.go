package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// SubjectCategory is the fixed study-domain label of a subject record.
type SubjectCategory string

const (
	SubjectCategoryConsumerStudies    SubjectCategory = "consumer-studies"
	SubjectCategoryHouseholdFinance   SubjectCategory = "household-finance"
	SubjectCategoryConsumerCounseling SubjectCategory = "consumer-counseling"
	SubjectCategoryConsumerInsight    SubjectCategory = "consumer-insight"
	SubjectCategoryProgramming        SubjectCategory = "programming"
	SubjectCategoryComputerSystems    SubjectCategory = "computer-systems"
	SubjectCategoryDataScience        SubjectCategory = "data-science"
	SubjectCategoryBusiness           SubjectCategory = "business"
	SubjectCategoryOther              SubjectCategory = "other"
)

func (x SubjectCategory) String() string {
	return string(x)
}

func (x SubjectCategory) Validate() error {
	switch x {
	case SubjectCategoryConsumerStudies, SubjectCategoryHouseholdFinance,
		SubjectCategoryConsumerCounseling, SubjectCategoryConsumerInsight,
		SubjectCategoryProgramming, SubjectCategoryComputerSystems,
		SubjectCategoryDataScience, SubjectCategoryBusiness, SubjectCategoryOther:
		return nil
	}
	return goerr.New("invalid subject category", goerr.V("category", x))
}

var subjectCategoryLabels = map[SubjectCategory]string{
	SubjectCategoryConsumerStudies:    "Consumer Studies",
	SubjectCategoryHouseholdFinance:   "Household Finance",
	SubjectCategoryConsumerCounseling: "Consumer Counseling",
	SubjectCategoryConsumerInsight:    "Consumer Insight",
	SubjectCategoryProgramming:        "Programming",
	SubjectCategoryComputerSystems:    "Computer Systems",
	SubjectCategoryDataScience:        "Data Science",
	SubjectCategoryBusiness:           "Business",
	SubjectCategoryOther:              "Other",
}

func (x SubjectCategory) Label() string {
	return subjectCategoryLabels[x]
}

// SubjectCategories returns all categories in their canonical order.
func SubjectCategories() []SubjectCategory {
	return []SubjectCategory{
		SubjectCategoryConsumerStudies,
		SubjectCategoryHouseholdFinance,
		SubjectCategoryConsumerCounseling,
		SubjectCategoryConsumerInsight,
		SubjectCategoryProgramming,
		SubjectCategoryComputerSystems,
		SubjectCategoryDataScience,
		SubjectCategoryBusiness,
		SubjectCategoryOther,
	}
}

// ActivityKind is the fixed type label of an activity record.
type ActivityKind string

const (
	ActivityKindTeamProject      ActivityKind = "team-project"
	ActivityKindPersonalResearch ActivityKind = "personal-research"
	ActivityKindClub             ActivityKind = "club"
	ActivityKindInternship       ActivityKind = "internship"
	ActivityKindPartTimeJob      ActivityKind = "part-time-job"
	ActivityKindVolunteering     ActivityKind = "volunteering"
	ActivityKindCertification    ActivityKind = "certification"
	ActivityKindAward            ActivityKind = "award"
)

func (x ActivityKind) String() string {
	return string(x)
}

func (x ActivityKind) Validate() error {
	switch x {
	case ActivityKindTeamProject, ActivityKindPersonalResearch, ActivityKindClub,
		ActivityKindInternship, ActivityKindPartTimeJob, ActivityKindVolunteering,
		ActivityKindCertification, ActivityKindAward:
		return nil
	}
	return goerr.New("invalid activity kind", goerr.V("kind", x))
}

var activityKindLabels = map[ActivityKind]string{
	ActivityKindTeamProject:      "Team Project",
	ActivityKindPersonalResearch: "Personal Research",
	ActivityKindClub:             "Club / Society",
	ActivityKindInternship:       "Internship",
	ActivityKindPartTimeJob:      "Part-time Job",
	ActivityKindVolunteering:     "Volunteering",
	ActivityKindCertification:    "Certification",
	ActivityKindAward:            "Award",
}

func (x ActivityKind) Label() string {
	return activityKindLabels[x]
}

// ActivityKinds returns all kinds in their canonical order.
func ActivityKinds() []ActivityKind {
	return []ActivityKind{
		ActivityKindTeamProject,
		ActivityKindPersonalResearch,
		ActivityKindClub,
		ActivityKindInternship,
		ActivityKindPartTimeJob,
		ActivityKindVolunteering,
		ActivityKindCertification,
		ActivityKindAward,
	}
}
