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

func (r *Firestore) PutActivity(ctx context.Context, activity *journal.Activity) error {
	if err := activity.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid activity")
	}

	doc := r.db.Collection(collectionActivities).Doc(activity.ID.String())
	if _, err := doc.Set(ctx, activity); err != nil {
		return r.eb.Wrap(err, "failed to put activity",
			goerr.T(errs.TagUnavailable),
			goerr.TV(errs.RecordIDKey, activity.ID.String()))
	}
	return nil
}

func (r *Firestore) Activities(ctx context.Context) (journal.Activities, error) {
	iter := r.db.Collection(collectionActivities).
		OrderBy("CreatedAt", firestore.Asc).
		Documents(ctx)

	var activities journal.Activities
	for {
		doc, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, r.eb.Wrap(err, "failed to iterate activities", goerr.T(errs.TagUnavailable))
		}

		var a journal.Activity
		if err := doc.DataTo(&a); err != nil {
			return nil, r.eb.Wrap(err, "failed to convert data to activity")
		}
		activities = append(activities, &a)
	}

	return activities, nil
}

func (r *Firestore) ActivitiesByKind(ctx context.Context, kind types.ActivityKind) (journal.Activities, error) {
	iter := r.db.Collection(collectionActivities).
		Where("Kind", "==", kind).
		OrderBy("CreatedAt", firestore.Asc).
		Documents(ctx)

	var activities journal.Activities
	for {
		doc, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, r.eb.Wrap(err, "failed to iterate activities by kind",
				goerr.T(errs.TagUnavailable),
				goerr.V("kind", kind))
		}

		var a journal.Activity
		if err := doc.DataTo(&a); err != nil {
			return nil, r.eb.Wrap(err, "failed to convert data to activity")
		}
		activities = append(activities, &a)
	}

	return activities, nil
}
