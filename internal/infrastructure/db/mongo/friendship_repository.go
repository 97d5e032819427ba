package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ryde/user-graph/internal/core/domain"
	"github.com/ryde/user-graph/internal/core/ports"
)

const collectionFriendships = "friendships"

// FriendshipRepository implements ports.FriendshipRepository using MongoDB.
// A unique index on pair_key keeps one record per unordered pair.
type FriendshipRepository struct {
	col *mongo.Collection
}

func NewFriendshipRepository(db *mongo.Database) *FriendshipRepository {
	return &FriendshipRepository{col: db.Collection(collectionFriendships)}
}

type friendshipDoc struct {
	ID         string     `bson:"_id"`
	PairKey    string     `bson:"pair_key"`
	FromUserID string     `bson:"from_user_id"`
	ToUserID   string     `bson:"to_user_id"`
	Status     string     `bson:"status"`
	BlockedBy  string     `bson:"blocked_by,omitempty"`
	CreatedAt  time.Time  `bson:"created_at"`
	UpdatedAt  time.Time  `bson:"updated_at"`
	AcceptedAt *time.Time `bson:"accepted_at,omitempty"`
}

func toFriendshipDoc(f *domain.Friendship) friendshipDoc {
	return friendshipDoc{
		ID:         f.ID,
		PairKey:    f.PairKey(),
		FromUserID: f.FromUserID,
		ToUserID:   f.ToUserID,
		Status:     string(f.Status),
		BlockedBy:  f.BlockedBy,
		CreatedAt:  f.CreatedAt.UTC(),
		UpdatedAt:  f.UpdatedAt.UTC(),
		AcceptedAt: utcPtr(f.AcceptedAt),
	}
}

func (d friendshipDoc) toDomain() *domain.Friendship {
	return &domain.Friendship{
		ID:         d.ID,
		FromUserID: d.FromUserID,
		ToUserID:   d.ToUserID,
		Status:     domain.FriendshipStatus(d.Status),
		BlockedBy:  d.BlockedBy,
		CreatedAt:  d.CreatedAt.UTC(),
		UpdatedAt:  d.UpdatedAt.UTC(),
		AcceptedAt: utcPtr(d.AcceptedAt),
	}
}

func (r *FriendshipRepository) Create(ctx context.Context, f *domain.Friendship) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toFriendshipDoc(f)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateRequest
		}
		return fmt.Errorf("insert friendship: %w", err)
	}
	return nil
}

func (r *FriendshipRepository) FindByID(ctx context.Context, id string) (*domain.Friendship, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *FriendshipRepository) FindBetween(ctx context.Context, a, b string) (*domain.Friendship, error) {
	return r.findOne(ctx, bson.M{"pair_key": domain.PairKey(a, b)})
}

func (r *FriendshipRepository) findOne(ctx context.Context, filter bson.M) (*domain.Friendship, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d friendshipDoc
	if err := r.col.FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFriendshipNotFound
		}
		return nil, fmt.Errorf("find friendship: %w", err)
	}
	return d.toDomain(), nil
}

// CompareAndSwap replaces the record only while its status is still
// expected. A miss means another writer got there first.
func (r *FriendshipRepository) CompareAndSwap(ctx context.Context, f *domain.Friendship, expected domain.FriendshipStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": f.ID, "status": string(expected)}
	res, err := r.col.ReplaceOne(ctx, filter, toFriendshipDoc(f))
	if err != nil {
		return fmt.Errorf("update friendship: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrConcurrentUpdate
	}
	return nil
}

func (r *FriendshipRepository) List(ctx context.Context, f ports.FriendshipFilter, page ports.Pagination) ([]*domain.Friendship, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := friendshipFilter(f)
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count friendships: %w", err)
	}
	if total == 0 {
		return []*domain.Friendship{}, 0, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Limit))
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find friendships: %w", err)
	}
	defer cur.Close(ctx)

	var docs []friendshipDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode friendships: %w", err)
	}
	out := make([]*domain.Friendship, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, total, nil
}

func (r *FriendshipRepository) FriendIDs(ctx context.Context, userID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := friendshipFilter(ports.FriendshipFilter{UserID: userID, Status: domain.StatusAccepted})
	opts := options.Find().SetProjection(bson.M{"from_user_id": 1, "to_user_id": 1})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find friends: %w", err)
	}
	defer cur.Close(ctx)

	var docs []friendshipDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode friends: %w", err)
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		if d.FromUserID == userID {
			ids = append(ids, d.ToUserID)
		} else {
			ids = append(ids, d.FromUserID)
		}
	}
	return ids, nil
}

func (r *FriendshipRepository) CountByStatus(ctx context.Context) (map[domain.FriendshipStatus]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate friendships: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode friendship counts: %w", err)
	}
	out := make(map[domain.FriendshipStatus]int64, len(rows))
	for _, row := range rows {
		out[domain.FriendshipStatus(row.Status)] = row.Count
	}
	return out, nil
}

// EnsureIndexes creates necessary indexes on the friendships collection.
func (r *FriendshipRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "pair_key", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "from_user_id", Value: 1}, {Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "to_user_id", Value: 1}, {Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func friendshipFilter(f ports.FriendshipFilter) bson.M {
	filter := bson.M{}
	switch f.Direction {
	case ports.DirectionIncoming:
		filter["to_user_id"] = f.UserID
	case ports.DirectionOutgoing:
		filter["from_user_id"] = f.UserID
	default:
		filter["$or"] = bson.A{
			bson.M{"from_user_id": f.UserID},
			bson.M{"to_user_id": f.UserID},
		}
	}
	if f.Status != "" {
		filter["status"] = string(f.Status)
	}
	return filter
}
