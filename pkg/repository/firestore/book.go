package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/domain/model/journal"
	"google.golang.org/api/iterator"
)

func (r *Firestore) PutBook(ctx context.Context, book *journal.Book) error {
	if err := book.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid book")
	}

	doc := r.db.Collection(collectionBooks).Doc(book.ID.String())
	if _, err := doc.Set(ctx, book); err != nil {
		return r.eb.Wrap(err, "failed to put book",
			goerr.T(errs.TagUnavailable),
			goerr.TV(errs.RecordIDKey, book.ID.String()))
	}
	return nil
}

func (r *Firestore) Books(ctx context.Context) (journal.Books, error) {
	iter := r.db.Collection(collectionBooks).
		OrderBy("CreatedAt", firestore.Asc).
		Documents(ctx)

	var books journal.Books
	for {
		doc, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, r.eb.Wrap(err, "failed to iterate books", goerr.T(errs.TagUnavailable))
		}

		var b journal.Book
		if err := doc.DataTo(&b); err != nil {
			return nil, r.eb.Wrap(err, "failed to convert data to book")
		}
		books = append(books, &b)
	}

	return books, nil
}
