package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/peopledesk/workforce-api/internal/core/domain"
)

const collectionSystemUsers = "system_users"

// UserRepository implements ports.UserRepository using MongoDB. Numeric ids
// come from the counters collection so they stay monotonic across restarts.
type UserRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{db: db, col: db.Collection(collectionSystemUsers)}
}

// Add inserts the user, assigning a fresh id when the record carries the
// unassigned sentinel 0.
func (r *UserRepository) Add(ctx context.Context, user *domain.SystemUser) (*domain.SystemUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	stored := *user
	if stored.ID == 0 {
		id, err := nextID(ctx, r.db, collectionSystemUsers)
		if err != nil {
			return nil, err
		}
		stored.ID = id
	} else if err := bumpSequence(ctx, r.db, collectionSystemUsers, stored.ID); err != nil {
		return nil, err
	}

	if _, err := r.col.InsertOne(ctx, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*domain.SystemUser, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.SystemUser, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) List(ctx context.Context) ([]domain.SystemUser, error) {
	return r.findAll(ctx, bson.M{})
}

func (r *UserRepository) ListActive(ctx context.Context) ([]domain.SystemUser, error) {
	return r.findAll(ctx, bson.M{"deleted": nil})
}

func (r *UserRepository) SoftDeleteByID(ctx context.Context, id int) error {
	return r.softDelete(ctx, bson.M{"_id": id})
}

func (r *UserRepository) SoftDeleteByEmail(ctx context.Context, email string) error {
	return r.softDelete(ctx, bson.M{"email": email})
}

func (r *UserRepository) HardDelete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the system_users collection.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "deleted", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.SystemUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var u domain.SystemUser
	err := r.col.FindOne(ctx, filter).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) findAll(ctx context.Context, filter bson.M) ([]domain.SystemUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := make([]domain.SystemUser, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) softDelete(ctx context.Context, filter bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, filter, bson.M{
		"$set": bson.M{"deleted": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
