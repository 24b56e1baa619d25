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

const collectionEmployees = "employees"

// EmployeeRepository implements ports.EmployeeRepository using MongoDB.
type EmployeeRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{db: db, col: db.Collection(collectionEmployees)}
}

// Add inserts the employee, assigning a fresh id when the record carries the
// unassigned sentinel 0.
func (r *EmployeeRepository) Add(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	stored := *employee
	if stored.ID == 0 {
		id, err := nextID(ctx, r.db, collectionEmployees)
		if err != nil {
			return nil, err
		}
		stored.ID = id
	} else if err := bumpSequence(ctx, r.db, collectionEmployees, stored.ID); err != nil {
		return nil, err
	}

	if _, err := r.col.InsertOne(ctx, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int) (*domain.Employee, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	return r.findAll(ctx, bson.M{})
}

func (r *EmployeeRepository) ListActive(ctx context.Context) ([]domain.Employee, error) {
	return r.findAll(ctx, bson.M{"deleted": nil})
}

func (r *EmployeeRepository) SoftDeleteByID(ctx context.Context, id int) error {
	return r.setDeleted(ctx, bson.M{"_id": id}, time.Now().UTC())
}

func (r *EmployeeRepository) SoftDeleteByEmail(ctx context.Context, email string) error {
	return r.setDeleted(ctx, bson.M{"email": email}, time.Now().UTC())
}

func (r *EmployeeRepository) ReactivateByID(ctx context.Context, id int) error {
	return r.clearDeleted(ctx, bson.M{"_id": id})
}

func (r *EmployeeRepository) ReactivateByEmail(ctx context.Context, email string) error {
	return r.clearDeleted(ctx, bson.M{"email": email})
}

func (r *EmployeeRepository) HardDelete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the employees collection.
func (r *EmployeeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "deleted", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *EmployeeRepository) findOne(ctx context.Context, filter bson.M) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Employee
	err := r.col.FindOne(ctx, filter).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) findAll(ctx context.Context, filter bson.M) ([]domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	employees := make([]domain.Employee, 0)
	if err := cur.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *EmployeeRepository) setDeleted(ctx context.Context, filter bson.M, ts time.Time) error {
	return r.update(ctx, filter, bson.M{"$set": bson.M{"deleted": ts}})
}

func (r *EmployeeRepository) clearDeleted(ctx context.Context, filter bson.M) error {
	return r.update(ctx, filter, bson.M{"$unset": bson.M{"deleted": ""}})
}

func (r *EmployeeRepository) update(ctx context.Context, filter, update bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
