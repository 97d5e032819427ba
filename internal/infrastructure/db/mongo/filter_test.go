package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ryde/user-graph/internal/core/domain"
	"github.com/ryde/user-graph/internal/core/ports"
)

func TestUserFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, userFilter(ports.UserFilter{}))

	got := userFilter(ports.UserFilter{
		NameContains: "j.doe",
		ExcludeID:    "me",
		IDs:          []string{"a", "b"},
		ActiveOnly:   true,
	})
	assert.Equal(t, bson.M{
		"is_active": true,
		"_id":       bson.M{"$ne": "me", "$in": []string{"a", "b"}},
		"name":      bson.M{"$regex": `j\.doe`, "$options": "i"},
	}, got)
}

func TestUserFilter_EmptyIDsMatchNobody(t *testing.T) {
	got := userFilter(ports.UserFilter{IDs: []string{}})
	assert.Equal(t, bson.M{"_id": bson.M{"$in": []string{}}}, got)
}

func TestFriendshipFilter(t *testing.T) {
	assert.Equal(t, bson.M{
		"$or": bson.A{
			bson.M{"from_user_id": "u1"},
			bson.M{"to_user_id": "u1"},
		},
	}, friendshipFilter(ports.FriendshipFilter{UserID: "u1"}))

	assert.Equal(t, bson.M{"to_user_id": "u1", "status": "pending"},
		friendshipFilter(ports.FriendshipFilter{UserID: "u1", Direction: ports.DirectionIncoming, Status: domain.StatusPending}))

	assert.Equal(t, bson.M{"from_user_id": "u1"},
		friendshipFilter(ports.FriendshipFilter{UserID: "u1", Direction: ports.DirectionOutgoing}))
}

func TestFriendshipDoc_PairKeyIsOrderIndependent(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	ab := toFriendshipDoc(&domain.Friendship{ID: "f1", FromUserID: "a", ToUserID: "b", Status: domain.StatusPending, CreatedAt: now, UpdatedAt: now})
	ba := toFriendshipDoc(&domain.Friendship{ID: "f2", FromUserID: "b", ToUserID: "a", Status: domain.StatusPending, CreatedAt: now, UpdatedAt: now})
	assert.Equal(t, ab.PairKey, ba.PairKey)
}

func TestUserDoc_OmitsMissingLocation(t *testing.T) {
	raw, err := bson.Marshal(toUserDoc(&domain.User{ID: "u1", Email: "u1@example.com"}))
	assert.NoError(t, err)

	var m bson.M
	assert.NoError(t, bson.Unmarshal(raw, &m))
	assert.NotContains(t, m, "latitude")
	assert.NotContains(t, m, "longitude")
	assert.NotContains(t, m, "dob")
}

func TestVersionFilter(t *testing.T) {
	assert.Equal(t, bson.M{"_id": "u1", "version": int64(4)}, versionFilter("u1", 4))
	assert.Equal(t, bson.M{
		"_id":     "u1",
		"version": bson.M{"$in": bson.A{int64(0), nil}},
	}, versionFilter("u1", 0))
}

func TestIdleFilter(t *testing.T) {
	cutoff := time.Date(2023, 6, 16, 12, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	assert.Equal(t, bson.M{
		"is_active":     true,
		"last_login_at": bson.M{"$lt": cutoff.UTC()},
	}, idleFilter(cutoff))
}
