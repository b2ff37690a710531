package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/domain/model/journal"
	"google.golang.org/api/iterator"
)

func (r *Firestore) PutQuestion(ctx context.Context, question *journal.Question) error {
	if err := question.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid question")
	}

	doc := r.db.Collection(collectionQuestions).Doc(question.ID.String())
	if _, err := doc.Set(ctx, question); err != nil {
		return r.eb.Wrap(err, "failed to put question",
			goerr.T(errs.TagUnavailable),
			goerr.TV(errs.RecordIDKey, question.ID.String()))
	}
	return nil
}

func (r *Firestore) Questions(ctx context.Context) (journal.Questions, error) {
	iter := r.db.Collection(collectionQuestions).
		OrderBy("CreatedAt", firestore.Asc).
		Documents(ctx)

	var questions journal.Questions
	for {
		doc, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, r.eb.Wrap(err, "failed to iterate questions", goerr.T(errs.TagUnavailable))
		}

		var q journal.Question
		if err := doc.DataTo(&q); err != nil {
			return nil, r.eb.Wrap(err, "failed to convert data to question")
		}
		questions = append(questions, &q)
	}

	return questions, nil
}
