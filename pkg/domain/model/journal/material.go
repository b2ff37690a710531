package journal

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/types"
)

// MaterialRef points at a journal record by dataset and display name, in
// the "dataset:name" form used by drafting surfaces and stored on drafts.
type MaterialRef struct {
	Dataset types.Dataset `json:"dataset"`
	Name    string        `json:"name"`
}

func (x MaterialRef) String() string {
	return x.Dataset.String() + ":" + x.Name
}

func (x MaterialRef) Validate() error {
	switch x.Dataset {
	case types.DatasetSubjects, types.DatasetActivities, types.DatasetBooks:
	default:
		return goerr.New("material dataset must be subjects, activities or books",
			goerr.V("dataset", x.Dataset))
	}
	if x.Name == "" {
		return goerr.New("material name is required")
	}
	return nil
}

// ParseMaterialRef parses the "dataset:name" form. Names may contain
// colons; only the first one separates.
func ParseMaterialRef(s string) (MaterialRef, error) {
	ds, name, ok := strings.Cut(s, ":")
	if !ok {
		return MaterialRef{}, goerr.New("material ref must be dataset:name", goerr.V("ref", s))
	}
	ref := MaterialRef{Dataset: types.Dataset(ds), Name: name}
	if err := ref.Validate(); err != nil {
		return MaterialRef{}, err
	}
	return ref, nil
}

// ParseMaterialRefs parses a list of refs, failing on the first bad one.
func ParseMaterialRefs(ss []string) ([]MaterialRef, error) {
	refs := make([]MaterialRef, 0, len(ss))
	for _, s := range ss {
		ref, err := ParseMaterialRef(s)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// RefStrings converts refs back to their storage form.
func RefStrings(refs []MaterialRef) []string {
	ss := make([]string, 0, len(refs))
	for _, r := range refs {
		ss = append(ss, r.String())
	}
	return ss
}
