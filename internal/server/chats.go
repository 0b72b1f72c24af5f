package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) createChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	chat, err := s.chats.CreateChat(c.Request.Context(), principal(c), req.Title)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, chat)
}

func (s *Server) getChat(c *gin.Context) {
	chatId, ok := pathID(c, "id")
	if !ok {
		return
	}

	chat, err := s.chats.GetChat(c.Request.Context(), principal(c), chatId)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, chat)
}

func (s *Server) getMessages(c *gin.Context) {
	chatId, ok := pathID(c, "id")
	if !ok {
		return
	}

	var q PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "limit and offset must be integers")
		return
	}

	messages, err := s.chats.GetMessages(c.Request.Context(), principal(c), PageToSelect(chatId, q))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(messages))
}

func (s *Server) postMessage(c *gin.Context) {
	chatId, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	message, err := s.chats.PostMessage(c.Request.Context(), principal(c), chatId, req.Text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (s *Server) listMembers(c *gin.Context) {
	chatId, ok := pathID(c, "id")
	if !ok {
		return
	}

	members, err := s.chats.ListMembers(c.Request.Context(), principal(c), chatId)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(members))
}

func (s *Server) addMember(c *gin.Context) {
	chatId, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID <= 0 {
		badRequest(c, "user_id must be a positive integer")
		return
	}

	membership, err := s.chats.AddMember(c.Request.Context(), principal(c), chatId, req.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, membership)
}

func (s *Server) removeMember(c *gin.Context) {
	chatId, ok := pathID(c, "id")
	if !ok {
		return
	}
	userId, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := s.chats.RemoveMember(c.Request.Context(), principal(c), chatId, userId); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
