package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/devanshioza/skillfolio/db"
)

////////////////////////////////////////////////////////////////////////
// Direct messages: POST /messages, GET /messages/:userID
////////////////////////////////////////////////////////////////////////

type sendMessageRequest struct {
	RecipientID string `json:"recipientId" binding:"required,uuid"`
	Body        string `json:"body" binding:"required"`
}

// sendMessage stores one direct message from the authenticated user.
func (server *Server) sendMessage(ctx *gin.Context) {
	senderID, err := authorizedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	var req sendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if recipientID == senderID {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("cannot message yourself")))
		return
	}

	message, err := server.store.CreateMessage(ctx, db.CreateMessageParams{
		SenderID:    senderID,
		RecipientID: recipientID,
		Body:        req.Body,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, message)
}

type listConversationRequest struct {
	Limit int32 `form:"limit" binding:"omitempty,min=1,max=200"`
}

// listConversation returns the chronological message history between the
// authenticated user and the user in the path.
func (server *Server) listConversation(ctx *gin.Context) {
	userID, err := authorizedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	otherID, err := uuid.Parse(ctx.Param("userID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req listConversationRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if req.Limit == 0 {
		req.Limit = 100
	}

	messages, err := server.store.ListConversation(ctx, userID, otherID, req.Limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, messages)
}
