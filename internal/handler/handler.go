package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prepnaija/prepnaija-backend/internal/response"
	"github.com/prepnaija/prepnaija-backend/internal/service"
)

// parsePagination reads page/per_page query params with sane defaults.
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage
}

func newPagination(page, perPage, total int) *response.Pagination {
	return response.NewPagination(page, perPage, total)
}

// parseUUIDParam parses a UUID path parameter, writing a 400 on failure.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

// parseIntParam parses an integer path parameter, writing a 400 on failure.
func parseIntParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}

// actorFromClaims maps JWT claims to a session actor. Returns an empty actor
// for admin or missing claims; callers behind learner middleware never see
// that case.
func actorFromClaims(claims *service.Claims) service.SessionActor {
	var actor service.SessionActor
	if claims == nil {
		return actor
	}
	switch claims.TokenType {
	case service.TokenTypeUser:
		id := claims.UserID
		actor.UserID = &id
	case service.TokenTypeGuest:
		if gid, err := uuid.Parse(claims.GuestID); err == nil {
			actor.GuestID = &gid
		}
	}
	return actor
}
