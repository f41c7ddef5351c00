package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devanshioza/skillfolio/genai"
	"github.com/devanshioza/skillfolio/skillz"
)

////////////////////////////////////////////////////////////////////////
// Mentor chat: POST /mentor/chat
////////////////////////////////////////////////////////////////////////

type chatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user model"`
	Content string `json:"content" binding:"required"`
}

type mentorChatRequest struct {
	// History is the entire conversation so far; the client owns
	// accumulation, the server appends exactly one model message.
	History []chatMessage `json:"history" binding:"dive"`
}

// mentorChat produces the mentor's next reply for the authenticated
// student.
func (server *Server) mentorChat(ctx *gin.Context) {
	userID, err := authorizedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	var req mentorChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	history := make([]genai.Message, 0, len(req.History))
	for _, m := range req.History {
		history = append(history, genai.Message{Role: m.Role, Content: m.Content})
	}

	reply, err := server.mentor.Reply(ctx, userID.String(), history)
	if err != nil {
		log.Printf("ERROR: mentor reply failed for user %s: %v", userID, err)
		var toolErr *genai.ToolError
		if errors.As(err, &toolErr) {
			ctx.JSON(http.StatusBadGateway, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, reply)
}

////////////////////////////////////////////////////////////////////////
// Weekly feedback: POST /mentor/feedback
////////////////////////////////////////////////////////////////////////

type mentorFeedbackRequest struct {
	WeeklyActivity string   `json:"weeklyActivity" binding:"required"`
	Skills         []string `json:"skills"`
}

type mentorFeedbackResponse struct {
	Feedback string `json:"feedback"`
}

// mentorFeedback generates personalized feedback from the student's
// weekly activity report.
func (server *Server) mentorFeedback(ctx *gin.Context) {
	var req mentorFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	feedback, err := skillz.MentorFeedback(ctx, server.llm, req.WeeklyActivity, req.Skills)
	if err != nil {
		respondInferenceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mentorFeedbackResponse{Feedback: feedback})
}
