package server

import (
	"app/domain"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Server struct {
	players *domain.PlayerService
	users   *domain.UserService
	log     *slog.Logger
}

func NewServer(players domain.PlayerStore, users domain.UserStore, log *slog.Logger, r *gin.Engine) *Server {
	server := &Server{
		players: domain.NewPlayerService(players, log),
		users:   domain.NewUserService(users, log),
		log:     log,
	}

	r.GET("/players", server.getPlayersHandler)
	r.GET("/players/leaderboard", server.getLeaderBoardHandler)
	r.GET("/users/:username/role", server.getUserRoleHandler)
	r.POST("/players", server.addPlayerHandler)
	r.PUT("/players/:id", server.updatePlayerHandler)
	r.DELETE("/players/:id", server.deletePlayerHandler)
	server.log.Info("router configured")
	return server
}

func (s Server) getPlayersHandler(c *gin.Context) {
	const op = "gates.server.getPlayersHandler"
	players, err := s.players.GetPlayers(c.Request.Context())
	if err != nil {
		s.writeError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainAll(players))
}

func (s Server) getLeaderBoardHandler(c *gin.Context) {
	const op = "gates.server.getLeaderBoardHandler"
	players, err := s.players.GetLeaderBoard(c.Request.Context())
	if err != nil {
		s.writeError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainAll(players))
}

func (s Server) getUserRoleHandler(c *gin.Context) {
	const op = "gates.server.getUserRoleHandler"
	username := c.Param("username")
	duser, err := s.users.GetUserRole(c.Request.Context(), username)
	if err != nil {
		s.writeError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, userFromDomain(duser))
}

func (s Server) addPlayerHandler(c *gin.Context) {
	const op = "gates.server.addPlayerHandler"
	var req addPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.log.Debug(op, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to decode request body: " + err.Error()})
		return
	}
	created, err := s.players.AddPlayer(c.Request.Context(), req.Name, req.Score)
	if err != nil {
		s.writeError(c, op, err)
		return
	}
	s.log.Info(op, "added player", created.ID)
	c.JSON(http.StatusCreated, fromDomain(created))
}

func (s Server) updatePlayerHandler(c *gin.Context) {
	const op = "gates.server.updatePlayerHandler"
	id, ok := s.idParam(c, op)
	if !ok {
		return
	}
	var req updatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.log.Debug(op, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to decode request body: " + err.Error()})
		return
	}
	updated, err := s.players.UpdatePlayer(c.Request.Context(), id, req.Name, req.Score)
	if err != nil {
		s.writeError(c, op, err)
		return
	}
	s.log.Info(op, "updated player", updated.ID)
	c.JSON(http.StatusOK, fromDomain(updated))
}

func (s Server) deletePlayerHandler(c *gin.Context) {
	const op = "gates.server.deletePlayerHandler"
	id, ok := s.idParam(c, op)
	if !ok {
		return
	}
	deleted, err := s.players.DeletePlayer(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, op, err)
		return
	}
	s.log.Info(op, "deleted player", id)
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// idParam parses the :id path segment. Non-numeric ids never reach the
// service, out-of-range ones do and fail validation there.
func (s Server) idParam(c *gin.Context, op string) (domain.PlayerID, bool) {
	idParamStr := c.Param("id")
	idParam, err := strconv.ParseInt(idParamStr, 10, 64)
	if err != nil {
		s.log.Debug(op, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id must consist of numbers only"})
		return 0, false
	}
	return domain.PlayerID(idParam), true
}

func (s Server) writeError(c *gin.Context, op string, err error) {
	s.log.Debug(op, "error", err)
	cerr, ok := domain.AsClassified(err)
	if !ok {
		cerr = domain.Classify("Internal server error", domain.CodeInternal)
	}
	c.JSON(statusForCode(cerr.Code), errorResponse{
		Message: cerr.Message,
		Code:    cerr.Code,
		Details: cerr.Details,
	})
}

func statusForCode(code domain.Code) int {
	switch code {
	case domain.CodeBadUserInput:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
