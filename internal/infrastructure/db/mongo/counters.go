package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionCounters = "counters"

// nextID atomically increments and returns the sequence for the named
// collection. Sequences start at 1 and are never reused, matching the
// in-memory store's id assignment.
func nextID(ctx context.Context, db *mongo.Database, name string) (int, error) {
	var doc struct {
		Seq int `bson:"seq"`
	}

	err := db.Collection(collectionCounters).FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next id for %s: %w", name, err)
	}
	return doc.Seq, nil
}

// bumpSequence raises the sequence for the named collection to at least id,
// so explicitly assigned ids (seed data) never collide with generated ones.
func bumpSequence(ctx context.Context, db *mongo.Database, name string, id int) error {
	_, err := db.Collection(collectionCounters).UpdateOne(
		ctx,
		bson.M{"_id": name},
		bson.M{"$max": bson.M{"seq": id}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("bump sequence for %s: %w", name, err)
	}
	return nil
}
