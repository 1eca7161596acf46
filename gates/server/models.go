package server

import "app/domain"

type player struct {
	ID          domain.PlayerID `json:"id"`
	Name        string          `json:"name"`
	Title       string          `json:"title"`
	Score       int             `json:"score"`
	LastUpdated *string         `json:"lastUpdated"`
	UserID      *domain.UserID  `json:"userId,omitempty"`
}

func fromDomain(dplayer domain.Player) player {
	return player{
		ID:          dplayer.ID,
		Name:        dplayer.Name,
		Title:       dplayer.Title,
		Score:       dplayer.Score,
		LastUpdated: dplayer.LastUpdated,
		UserID:      dplayer.UserID,
	}
}

func fromDomainAll(dplayers []domain.Player) []player {
	resp := make([]player, 0, len(dplayers))
	for _, dplayer := range dplayers {
		resp = append(resp, fromDomain(dplayer))
	}
	return resp
}

type role struct {
	ID   domain.RoleID `json:"id"`
	Name string        `json:"name"`
}

type user struct {
	ID       domain.UserID `json:"id"`
	Username string        `json:"username"`
	Role     role          `json:"role"`
}

func userFromDomain(duser domain.User) user {
	return user{
		ID:       duser.ID,
		Username: duser.Username,
		Role: role{
			ID:   duser.Role.ID,
			Name: duser.Role.Name,
		},
	}
}

type addPlayerRequest struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type updatePlayerRequest struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// errorResponse is the envelope every classified error is serialized into.
type errorResponse struct {
	Message string      `json:"message"`
	Code    domain.Code `json:"code"`
	Details []string    `json:"details"`
}
