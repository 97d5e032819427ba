package handler

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ryde/user-graph/internal/api/middleware"
	"github.com/ryde/user-graph/internal/core/domain"
	"github.com/ryde/user-graph/internal/core/ports"
)

var testTime = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// newContext builds an echo context for a JSON request. An empty body sends no
// payload.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// authenticate injects the claims the Auth middleware would set.
func authenticate(c echo.Context, userID, role string) {
	c.Set(middleware.ContextUserID, userID)
	c.Set(middleware.ContextRole, role)
}

// httpStatus extracts the status of an *echo.HTTPError, failing otherwise.
func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	return he.Code
}

func testUser(id, name string) *domain.User {
	return &domain.User{
		ID:        id,
		Email:     id + "@example.com",
		Name:      name,
		Role:      domain.RoleMember,
		IsActive:  true,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func testProfile(id, name string) ports.UserProfile {
	return ports.UserProfile{User: testUser(id, name)}
}

func userPage(profiles ...ports.UserProfile) *ports.UserPage {
	return &ports.UserPage{
		Items: profiles,
		Meta:  ports.PageMeta{Total: int64(len(profiles)), Page: 1, Limit: ports.DefaultPageLimit, TotalPages: 1},
	}
}

// ---------------------------------------------------------------------------
// Service stubs. Unset functions fail the call with errNotStubbed.
// ---------------------------------------------------------------------------

var errNotStubbed = errors.New("not stubbed")

type stubUserService struct {
	getFn            func(ctx context.Context, id string) (*ports.UserProfile, error)
	listFn           func(ctx context.Context, page ports.Pagination) (*ports.UserPage, error)
	searchFn         func(ctx context.Context, callerID, query string, page ports.Pagination) (*ports.UserPage, error)
	updateFn         func(ctx context.Context, input ports.UpdateProfileInput) (*ports.UserProfile, error)
	changePasswordFn func(ctx context.Context, input ports.ChangePasswordInput) error
	deactivateFn     func(ctx context.Context, actorID, actorRole, userID string) error
}

func (s *stubUserService) Get(ctx context.Context, id string) (*ports.UserProfile, error) {
	if s.getFn == nil {
		return nil, errNotStubbed
	}
	return s.getFn(ctx, id)
}

func (s *stubUserService) List(ctx context.Context, page ports.Pagination) (*ports.UserPage, error) {
	if s.listFn == nil {
		return nil, errNotStubbed
	}
	return s.listFn(ctx, page)
}

func (s *stubUserService) SearchByName(ctx context.Context, callerID, query string, page ports.Pagination) (*ports.UserPage, error) {
	if s.searchFn == nil {
		return nil, errNotStubbed
	}
	return s.searchFn(ctx, callerID, query, page)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) (*ports.UserProfile, error) {
	if s.updateFn == nil {
		return nil, errNotStubbed
	}
	return s.updateFn(ctx, input)
}

func (s *stubUserService) ChangePassword(ctx context.Context, input ports.ChangePasswordInput) error {
	if s.changePasswordFn == nil {
		return errNotStubbed
	}
	return s.changePasswordFn(ctx, input)
}

func (s *stubUserService) Deactivate(ctx context.Context, actorID, actorRole, userID string) error {
	if s.deactivateFn == nil {
		return errNotStubbed
	}
	return s.deactivateFn(ctx, actorID, actorRole, userID)
}

type stubFriendshipService struct {
	requestFn  func(ctx context.Context, from, to string) (*ports.FriendshipView, error)
	actFn      func(ctx context.Context, id, action, actorID string) (*ports.FriendshipView, error)
	listMineFn func(ctx context.Context, userID, status string, page ports.Pagination) (*ports.FriendshipPage, error)
	pendingFn  func(ctx context.Context, userID string, page ports.Pagination) (*ports.FriendshipPage, error)
	sentFn     func(ctx context.Context, userID string, page ports.Pagination) (*ports.FriendshipPage, error)
	friendsFn  func(ctx context.Context, userID string, page ports.Pagination) (*ports.FriendPage, error)
	searchFn   func(ctx context.Context, userID, query string, page ports.Pagination) (*ports.UserPage, error)
	statusFn   func(ctx context.Context, callerID, other string) (*ports.FriendshipStatusView, error)
}

func (s *stubFriendshipService) Request(ctx context.Context, from, to string) (*ports.FriendshipView, error) {
	if s.requestFn == nil {
		return nil, errNotStubbed
	}
	return s.requestFn(ctx, from, to)
}

func (s *stubFriendshipService) Act(ctx context.Context, id, action, actorID string) (*ports.FriendshipView, error) {
	if s.actFn == nil {
		return nil, errNotStubbed
	}
	return s.actFn(ctx, id, action, actorID)
}

func (s *stubFriendshipService) ListMine(ctx context.Context, userID, status string, page ports.Pagination) (*ports.FriendshipPage, error) {
	if s.listMineFn == nil {
		return nil, errNotStubbed
	}
	return s.listMineFn(ctx, userID, status, page)
}

func (s *stubFriendshipService) ListPending(ctx context.Context, userID string, page ports.Pagination) (*ports.FriendshipPage, error) {
	if s.pendingFn == nil {
		return nil, errNotStubbed
	}
	return s.pendingFn(ctx, userID, page)
}

func (s *stubFriendshipService) ListSent(ctx context.Context, userID string, page ports.Pagination) (*ports.FriendshipPage, error) {
	if s.sentFn == nil {
		return nil, errNotStubbed
	}
	return s.sentFn(ctx, userID, page)
}

func (s *stubFriendshipService) ListFriends(ctx context.Context, userID string, page ports.Pagination) (*ports.FriendPage, error) {
	if s.friendsFn == nil {
		return nil, errNotStubbed
	}
	return s.friendsFn(ctx, userID, page)
}

func (s *stubFriendshipService) SearchFriends(ctx context.Context, userID, query string, page ports.Pagination) (*ports.UserPage, error) {
	if s.searchFn == nil {
		return nil, errNotStubbed
	}
	return s.searchFn(ctx, userID, query, page)
}

func (s *stubFriendshipService) StatusWith(ctx context.Context, callerID, other string) (*ports.FriendshipStatusView, error) {
	if s.statusFn == nil {
		return nil, errNotStubbed
	}
	return s.statusFn(ctx, callerID, other)
}

type stubNearbyService struct {
	calls []ports.NearbyInput
	scope []string
	res   *ports.NearbyResult
	err   error
}

func (s *stubNearbyService) NearbyUsers(_ context.Context, in ports.NearbyInput) (*ports.NearbyResult, error) {
	s.calls = append(s.calls, in)
	s.scope = append(s.scope, "users")
	return s.res, s.err
}

func (s *stubNearbyService) NearbyFriends(_ context.Context, in ports.NearbyInput) (*ports.NearbyResult, error) {
	s.calls = append(s.calls, in)
	s.scope = append(s.scope, "friends")
	return s.res, s.err
}
