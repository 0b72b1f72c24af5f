package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	user, err := s.users.Register(c.Request.Context(), RegisterToInput(req))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (s *Server) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	res, err := s.users.Login(c.Request.Context(), req.login(), req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginToResponse(res))
}

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.users.ListUsers(c.Request.Context(), principal(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(users))
}

func (s *Server) getUser(c *gin.Context) {
	userId, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := s.users.GetUser(c.Request.Context(), principal(c), userId)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) updateProfile(c *gin.Context) {
	userId, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	user, err := s.users.UpdateProfile(c.Request.Context(), principal(c), userId, ProfileToInput(req))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) changePassword(c *gin.Context) {
	userId, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	err := s.users.ChangePassword(c.Request.Context(), principal(c), userId, req.OldPassword, req.NewPassword)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) userChats(c *gin.Context) {
	userId, ok := pathID(c, "id")
	if !ok {
		return
	}

	chats, err := s.chats.GetChatsForUser(c.Request.Context(), principal(c), userId)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(chats))
}
