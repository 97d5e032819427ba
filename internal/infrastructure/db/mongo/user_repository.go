package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ryde/user-graph/internal/core/domain"
	"github.com/ryde/user-graph/internal/core/ports"
)

const collectionUsers = "users"

// UserRepository implements ports.UserRepository using MongoDB.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

// userDoc is the stored shape of a user. Absent coordinates are omitted so
// range queries on them never match.
type userDoc struct {
	ID           string     `bson:"_id"`
	Email        string     `bson:"email"`
	Name         string     `bson:"name"`
	PasswordHash string     `bson:"password_hash"`
	DateOfBirth  *time.Time `bson:"dob,omitempty"`
	Address      string     `bson:"address"`
	Description  string     `bson:"description"`
	Latitude     *float64   `bson:"latitude,omitempty"`
	Longitude    *float64   `bson:"longitude,omitempty"`
	Role         string     `bson:"role"`
	IsActive     bool       `bson:"is_active"`
	LastLoginAt  *time.Time `bson:"last_login_at,omitempty"`
	CreatedAt    time.Time  `bson:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at"`
	Version      int64      `bson:"version"`
}

func toUserDoc(u *domain.User) userDoc {
	return userDoc{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		DateOfBirth:  u.DateOfBirth,
		Address:      u.Address,
		Description:  u.Description,
		Latitude:     u.Latitude,
		Longitude:    u.Longitude,
		Role:         u.Role,
		IsActive:     u.IsActive,
		LastLoginAt:  u.LastLoginAt,
		CreatedAt:    u.CreatedAt.UTC(),
		UpdatedAt:    u.UpdatedAt.UTC(),
		Version:      u.Version,
	}
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID,
		Email:        d.Email,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		DateOfBirth:  utcPtr(d.DateOfBirth),
		Address:      d.Address,
		Description:  d.Description,
		Latitude:     d.Latitude,
		Longitude:    d.Longitude,
		Role:         d.Role,
		IsActive:     d.IsActive,
		LastLoginAt:  utcPtr(d.LastLoginAt),
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
		Version:      d.Version,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toUserDoc(u)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d userDoc
	if err := r.col.FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return d.toDomain(), nil
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// Update replaces the stored document in one write, so cleared optional
// fields disappear from the record.
func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toUserDoc(u)
	doc.Version = u.Version + 1
	res, err := r.col.ReplaceOne(ctx, versionFilter(u.ID, u.Version), doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		n, err := r.col.CountDocuments(ctx, bson.M{"_id": u.ID})
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		if n == 0 {
			return domain.ErrUserNotFound
		}
		return domain.ErrUserModified
	}
	u.Version = doc.Version
	return nil
}

// versionFilter matches id only at the given version. Documents written
// before versioning have no field and count as version 0.
func versionFilter(id string, version int64) bson.M {
	if version == 0 {
		return bson.M{"_id": id, "version": bson.M{"$in": bson.A{int64(0), nil}}}
	}
	return bson.M{"_id": id, "version": version}
}

func (r *UserRepository) List(ctx context.Context, f ports.UserFilter, page ports.Pagination) ([]*domain.User, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := userFilter(f)
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	if total == 0 {
		return []*domain.User{}, 0, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Limit))
	users, err := r.find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// FindLocated pushes the bounding box down as a range query on both
// coordinates.
func (r *UserRepository) FindLocated(ctx context.Context, q ports.LocationQuery) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := userFilter(ports.UserFilter{ExcludeID: q.ExcludeID, IDs: q.IDs, ActiveOnly: true})
	filter["latitude"] = bson.M{"$gte": q.Box.MinLat, "$lte": q.Box.MaxLat}
	filter["longitude"] = bson.M{"$gte": q.Box.MinLng, "$lte": q.Box.MaxLng}
	return r.find(ctx, filter)
}

func (r *UserRepository) Stats(ctx context.Context) (ports.UserStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var st ports.UserStats
	var err error
	if st.Total, err = r.col.CountDocuments(ctx, bson.M{}); err != nil {
		return st, fmt.Errorf("count users: %w", err)
	}
	if st.Active, err = r.col.CountDocuments(ctx, bson.M{"is_active": true}); err != nil {
		return st, fmt.Errorf("count active users: %w", err)
	}
	located := bson.M{"latitude": bson.M{"$ne": nil}, "longitude": bson.M{"$ne": nil}}
	if st.WithLocation, err = r.col.CountDocuments(ctx, located); err != nil {
		return st, fmt.Errorf("count located users: %w", err)
	}
	return st, nil
}

func (r *UserRepository) DeactivateIdleSince(ctx context.Context, cutoff, updatedAt time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateMany(ctx, idleFilter(cutoff), bson.M{
		"$set": bson.M{"is_active": false, "updated_at": updatedAt.UTC()},
		"$inc": bson.M{"version": 1},
	})
	if err != nil {
		return 0, fmt.Errorf("deactivate idle users: %w", err)
	}
	return res.ModifiedCount, nil
}

// idleFilter matches active users whose last login predates cutoff. $lt
// never matches a missing last_login_at.
func idleFilter(cutoff time.Time) bson.M {
	return bson.M{
		"is_active":     true,
		"last_login_at": bson.M{"$lt": cutoff.UTC()},
	}
}

// EnsureIndexes creates necessary indexes on the users collection.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}},
		{Keys: bson.D{{Key: "latitude", Value: 1}, {Key: "longitude", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "last_login_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *UserRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]*domain.User, error) {
	cur, err := r.col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cur.Close(ctx)

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	users := make([]*domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toDomain())
	}
	return users, nil
}

func userFilter(f ports.UserFilter) bson.M {
	filter := bson.M{}
	if f.ActiveOnly {
		filter["is_active"] = true
	}

	id := bson.M{}
	if f.ExcludeID != "" {
		id["$ne"] = f.ExcludeID
	}
	if f.IDs != nil {
		id["$in"] = f.IDs
	}
	if len(id) > 0 {
		filter["_id"] = id
	}

	if f.NameContains != "" {
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(f.NameContains), "$options": "i"}
	}
	return filter
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
