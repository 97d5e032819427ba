package handler

import (
	"github.com/ryde/user-graph/internal/core/domain"
	"github.com/ryde/user-graph/internal/core/ports"
)

func toUserResponse(u *domain.User, age *int) userResponse {
	resp := userResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Age:         age,
		Address:     u.Address,
		Description: u.Description,
		Latitude:    u.Latitude,
		Longitude:   u.Longitude,
		HasLocation: u.HasLocation(),
		Role:        u.Role,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
	if u.DateOfBirth != nil {
		dob := u.DateOfBirth.Format(dateLayout)
		resp.DateOfBirth = &dob
	}
	return resp
}

func toProfileResponse(p ports.UserProfile) userResponse {
	return toUserResponse(p.User, p.Age)
}

func toPagination(m ports.PageMeta) paginationResponse {
	return paginationResponse{Total: m.Total, Page: m.Page, Limit: m.Limit, TotalPages: m.TotalPages}
}

func toUserList(page *ports.UserPage) listResponse[userResponse] {
	data := make([]userResponse, 0, len(page.Items))
	for _, p := range page.Items {
		data = append(data, toProfileResponse(p))
	}
	return listResponse[userResponse]{Data: data, Pagination: toPagination(page.Meta)}
}

func toFriendshipResponse(v ports.FriendshipView) friendshipResponse {
	f := v.Friendship
	return friendshipResponse{
		ID:         f.ID,
		FromUser:   toProfileResponse(v.FromUser),
		ToUser:     toProfileResponse(v.ToUser),
		Status:     string(f.Status),
		BlockedBy:  f.BlockedBy,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
		AcceptedAt: f.AcceptedAt,
	}
}

func toFriendshipList(page *ports.FriendshipPage) listResponse[friendshipResponse] {
	data := make([]friendshipResponse, 0, len(page.Items))
	for _, v := range page.Items {
		data = append(data, toFriendshipResponse(v))
	}
	return listResponse[friendshipResponse]{Data: data, Pagination: toPagination(page.Meta)}
}

func toFriendList(page *ports.FriendPage) listResponse[friendResponse] {
	data := make([]friendResponse, 0, len(page.Items))
	for _, e := range page.Items {
		data = append(data, friendResponse{
			FriendshipID: e.FriendshipID,
			Friend:       toProfileResponse(e.Friend),
			Since:        e.Since,
		})
	}
	return listResponse[friendResponse]{Data: data, Pagination: toPagination(page.Meta)}
}

func toNearbyResponse(res *ports.NearbyResult) nearbyResponse {
	data := make([]nearbyUserResponse, 0, len(res.Items))
	for _, item := range res.Items {
		data = append(data, nearbyUserResponse{
			userResponse: toProfileResponse(item.User),
			DistanceKm:   item.DistanceKm,
		})
	}
	return nearbyResponse{
		Origin:     pointResponse{Lat: res.Origin.Lat, Lng: res.Origin.Lng},
		RadiusKm:   res.RadiusKm,
		Data:       data,
		Pagination: toPagination(res.Meta),
	}
}

func toStatsResponse(st *ports.Stats) statsResponse {
	byStatus := make(map[string]int64, len(st.FriendshipsByStatus))
	for k, v := range st.FriendshipsByStatus {
		byStatus[string(k)] = v
	}
	return statsResponse{
		TotalUsers:          st.TotalUsers,
		ActiveUsers:         st.ActiveUsers,
		UsersWithLocation:   st.UsersWithLocation,
		FriendshipsByStatus: byStatus,
	}
}
