package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ryde/user-graph/internal/core/domain"
	"github.com/ryde/user-graph/internal/core/geo"
	"github.com/ryde/user-graph/internal/core/ports"
)

func newUserSvc(repo *stubUserRepo, q *stubQueue) *UserService {
	svc := NewUserService(repo, q, zerolog.Nop())
	svc.now = fixedClock()
	return svc
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestUserService_Get_ComputesAgeAndLocation(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("john", "John", &geo.Point{Lat: 1, Lng: 2})
	dob := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.users["john"].DateOfBirth = &dob
	svc := newUserSvc(repo, &stubQueue{})

	p, err := svc.Get(context.Background(), "john")
	require.NoError(t, err)
	require.NotNil(t, p.Age)
	assert.Equal(t, 34, *p.Age)
	assert.True(t, p.HasLocation)

	repo.add("anon", "Anon", nil)
	p, err = svc.Get(context.Background(), "anon")
	require.NoError(t, err)
	assert.Nil(t, p.Age)
	assert.False(t, p.HasLocation)
}

func TestUserService_Get_HidesInactive(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("gone", "Gone", nil)
	repo.users["gone"].IsActive = false
	svc := newUserSvc(repo, &stubQueue{})

	_, err := svc.Get(context.Background(), "gone")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserService_SearchByName(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("me", "Johnathan Caller", nil)
	repo.add("john", "John Doe", nil)
	repo.add("johnny", "johnny", nil)
	repo.add("jane", "Jane", nil)
	repo.add("old", "John Inactive", nil)
	repo.users["old"].IsActive = false
	svc := newUserSvc(repo, &stubQueue{})

	res, err := svc.SearchByName(context.Background(), "me", "john", ports.Pagination{})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	// Newest first.
	assert.Equal(t, "johnny", res.Items[0].User.ID)
	assert.Equal(t, "john", res.Items[1].User.ID)
	assert.EqualValues(t, 2, res.Meta.Total)

	for _, q := range []string{"", "   ", "zzz"} {
		res, err := svc.SearchByName(context.Background(), "me", q, ports.Pagination{})
		require.NoError(t, err)
		assert.Empty(t, res.Items, "query %q", q)
	}
}

func TestUserService_List_Paginates(t *testing.T) {
	repo := newStubUserRepo()
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		repo.add(id, id, nil)
	}
	svc := newUserSvc(repo, &stubQueue{})

	res, err := svc.List(context.Background(), ports.Pagination{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, ports.PageMeta{Total: 5, Page: 2, Limit: 2, TotalPages: 3}, res.Meta)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "c", res.Items[0].User.ID)
	assert.Equal(t, "b", res.Items[1].User.ID)
}

func TestUserService_UpdateProfile(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("alice", "Alice", nil)
	q := &stubQueue{}
	svc := newUserSvc(repo, q)

	p, err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		ActorID:     "alice",
		ActorRole:   domain.RoleMember,
		UserID:      "alice",
		Name:        strPtr("  Alice Liddell "),
		Description: strPtr("curious"),
		Latitude:    floatPtr(51.75),
		Longitude:   floatPtr(-1.25),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Liddell", p.User.Name)
	assert.True(t, p.HasLocation)
	assert.Equal(t, baseTime, repo.users["alice"].UpdatedAt)
	require.Len(t, q.tasks, 1)
	assert.Equal(t, domain.TaskLocationUpdated, q.tasks[0].Type)
	assert.Equal(t, ports.DefaultRadiusKm, q.tasks[0].RadiusKm)

	p, err = svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		ActorID: "alice", UserID: "alice", ClearLocation: true,
	})
	require.NoError(t, err)
	assert.False(t, p.HasLocation)
	assert.Len(t, q.tasks, 1)
}

func TestUserService_UpdateProfile_Rejections(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("alice", "Alice", nil)
	repo.add("bob", "Bob", nil)
	svc := newUserSvc(repo, &stubQueue{})
	future := baseTime.AddDate(1, 0, 0)

	cases := []struct {
		name string
		in   ports.UpdateProfileInput
		want error
	}{
		{"other member", ports.UpdateProfileInput{ActorID: "bob", ActorRole: domain.RoleMember, UserID: "alice"}, domain.ErrForbidden},
		{"half location", ports.UpdateProfileInput{ActorID: "alice", UserID: "alice", Latitude: floatPtr(1)}, domain.ErrInvalidCoordinates},
		{"out of range", ports.UpdateProfileInput{ActorID: "alice", UserID: "alice", Latitude: floatPtr(91), Longitude: floatPtr(0)}, domain.ErrInvalidCoordinates},
		{"set and clear", ports.UpdateProfileInput{ActorID: "alice", UserID: "alice", Latitude: floatPtr(1), Longitude: floatPtr(1), ClearLocation: true}, domain.ErrBadRequest},
		{"empty name", ports.UpdateProfileInput{ActorID: "alice", UserID: "alice", Name: strPtr(" ")}, domain.ErrBadRequest},
		{"future dob", ports.UpdateProfileInput{ActorID: "alice", UserID: "alice", DateOfBirth: &future}, domain.ErrBadRequest},
		{"missing user", ports.UpdateProfileInput{ActorID: "ghost", UserID: "ghost"}, domain.ErrUserNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.UpdateProfile(context.Background(), tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Zero(t, repo.updates)
}

func TestUserService_UpdateProfile_AdminMayEditOthers(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("alice", "Alice", nil)
	svc := newUserSvc(repo, &stubQueue{})

	_, err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		ActorID: "root", ActorRole: domain.RoleAdmin, UserID: "alice", Address: strPtr("Wonderland"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Wonderland", repo.users["alice"].Address)
}

func TestUserService_ChangePassword(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("alice", "Alice", nil)
	hash, err := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.users["alice"].PasswordHash = string(hash)
	svc := newUserSvc(repo, &stubQueue{})

	err = svc.ChangePassword(context.Background(), ports.ChangePasswordInput{UserID: "alice", CurrentPassword: "wrong", NewPassword: "newpassword"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	err = svc.ChangePassword(context.Background(), ports.ChangePasswordInput{UserID: "alice", CurrentPassword: "oldpassword", NewPassword: "short"})
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	err = svc.ChangePassword(context.Background(), ports.ChangePasswordInput{UserID: "alice", CurrentPassword: "oldpassword", NewPassword: "newpassword"})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users["alice"].PasswordHash), []byte("newpassword")))
}

func TestUserService_Deactivate(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("alice", "Alice", nil)
	repo.add("bob", "Bob", nil)
	svc := newUserSvc(repo, &stubQueue{})

	err := svc.Deactivate(context.Background(), "bob", domain.RoleMember, "alice")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, svc.Deactivate(context.Background(), "alice", domain.RoleMember, "alice"))
	assert.False(t, repo.users["alice"].IsActive)

	err = svc.Deactivate(context.Background(), "alice", domain.RoleMember, "alice")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_UpdateFailureIsReturned(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("alice", "Alice", nil)
	repo.updateErr = errors.New("mongo down")
	svc := newUserSvc(repo, &stubQueue{})

	_, err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{ActorID: "alice", UserID: "alice", Name: strPtr("A")})
	assert.EqualError(t, err, "mongo down")
}

func TestUserService_UpdateProfile_ConcurrentDeactivation(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("alice", "Alice", nil)
	q := &stubQueue{}
	svc := newUserSvc(repo, q)

	// An admin deactivates alice after her profile was read but before the
	// edited copy is written back.
	repo.beforeUpdate = func() {
		require.NoError(t, svc.Deactivate(context.Background(), "root", domain.RoleAdmin, "alice"))
	}

	_, err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		ActorID:   "alice",
		UserID:    "alice",
		Name:      strPtr("Alice Liddell"),
		Latitude:  floatPtr(51.75),
		Longitude: floatPtr(-1.25),
	})
	assert.ErrorIs(t, err, domain.ErrUserModified)
	assert.ErrorIs(t, err, domain.ErrConflict)

	stored := repo.users["alice"]
	assert.False(t, stored.IsActive, "deactivation must survive the stale write")
	assert.Equal(t, "Alice", stored.Name)
	assert.False(t, stored.HasLocation())
	assert.Equal(t, 1, repo.updates)
	assert.Empty(t, q.tasks)
}

func TestUserService_ChangePassword_ConcurrentDeactivation(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("alice", "Alice", nil)
	hash, err := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.users["alice"].PasswordHash = string(hash)
	svc := newUserSvc(repo, &stubQueue{})

	repo.beforeUpdate = func() {
		require.NoError(t, svc.Deactivate(context.Background(), "alice", domain.RoleMember, "alice"))
	}

	err = svc.ChangePassword(context.Background(), ports.ChangePasswordInput{UserID: "alice", CurrentPassword: "oldpassword", NewPassword: "newpassword"})
	assert.ErrorIs(t, err, domain.ErrUserModified)

	stored := repo.users["alice"]
	assert.False(t, stored.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("oldpassword")))
}

func TestUserService_SequentialUpdatesAdvanceVersion(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("alice", "Alice", nil)
	svc := newUserSvc(repo, &stubQueue{})

	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{ActorID: "alice", UserID: "alice", Name: strPtr(name)})
		require.NoError(t, err)
	}
	assert.EqualValues(t, 3, repo.users["alice"].Version)
	assert.Equal(t, "C", repo.users["alice"].Name)
}
