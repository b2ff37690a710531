package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/domain/model/journal"
	"github.com/reflect-lab/stella/pkg/domain/types"
	"google.golang.org/api/iterator"
)

func (r *Firestore) PutSubject(ctx context.Context, subject *journal.Subject) error {
	if err := subject.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid subject")
	}

	doc := r.db.Collection(collectionSubjects).Doc(subject.ID.String())
	if _, err := doc.Set(ctx, subject); err != nil {
		return r.eb.Wrap(err, "failed to put subject",
			goerr.T(errs.TagUnavailable),
			goerr.TV(errs.RecordIDKey, subject.ID.String()))
	}
	return nil
}

func (r *Firestore) Subjects(ctx context.Context) (journal.Subjects, error) {
	iter := r.db.Collection(collectionSubjects).
		OrderBy("CreatedAt", firestore.Asc).
		Documents(ctx)

	var subjects journal.Subjects
	for {
		doc, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, r.eb.Wrap(err, "failed to iterate subjects", goerr.T(errs.TagUnavailable))
		}

		var s journal.Subject
		if err := doc.DataTo(&s); err != nil {
			return nil, r.eb.Wrap(err, "failed to convert data to subject")
		}
		subjects = append(subjects, &s)
	}

	return subjects, nil
}

func (r *Firestore) SubjectsByCategory(ctx context.Context, category types.SubjectCategory) (journal.Subjects, error) {
	iter := r.db.Collection(collectionSubjects).
		Where("Category", "==", category).
		OrderBy("CreatedAt", firestore.Asc).
		Documents(ctx)

	var subjects journal.Subjects
	for {
		doc, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, r.eb.Wrap(err, "failed to iterate subjects by category",
				goerr.T(errs.TagUnavailable),
				goerr.V("category", category))
		}

		var s journal.Subject
		if err := doc.DataTo(&s); err != nil {
			return nil, r.eb.Wrap(err, "failed to convert data to subject")
		}
		subjects = append(subjects, &s)
	}

	return subjects, nil
}
