package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/devanshioza/skillfolio/db"
	"github.com/devanshioza/skillfolio/genai"
)

////////////////////////////////////////////////////////////////////////
// Profile analysis: POST /profiles/analyze
////////////////////////////////////////////////////////////////////////

type analyzeProfileRequest struct {
	GithubURL   string `json:"githubUrl" binding:"omitempty,url"`
	LinkedinURL string `json:"linkedinUrl" binding:"omitempty,url"`
	LeetcodeURL string `json:"leetcodeUrl" binding:"omitempty,url"`
}

// analyzeProfile runs the onboarding pipeline over the submitted profile
// links and persists the resulting skill profile. The pipeline itself
// accepts an all-empty submission; rejecting it is this caller's job.
func (server *Server) analyzeProfile(ctx *gin.Context) {
	userID, err := authorizedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	var req analyzeProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if req.GithubURL == "" && req.LinkedinURL == "" && req.LeetcodeURL == "" {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("at least one profile URL is required")))
		return
	}

	profile, err := server.analyzer.BuildProfile(ctx, req.GithubURL, req.LinkedinURL, req.LeetcodeURL)
	if err != nil {
		log.Printf("ERROR: profile analysis failed for user %s: %v", userID, err)
		var schemaErr *genai.SchemaViolationError
		if errors.As(err, &schemaErr) {
			ctx.JSON(http.StatusBadGateway, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	err = server.store.SaveAnalysisTx(ctx, db.SaveAnalysisTxParams{
		UserID:      userID,
		GithubURL:   req.GithubURL,
		LinkedinURL: req.LinkedinURL,
		LeetcodeURL: req.LeetcodeURL,
		Profile:     profile,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

////////////////////////////////////////////////////////////////////////
// Own profile: GET /profiles/me
////////////////////////////////////////////////////////////////////////

func (server *Server) getMyProfile(ctx *gin.Context) {
	userID, err := authorizedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	profile, err := server.store.GetSkillProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("profile has not been analyzed yet")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

////////////////////////////////////////////////////////////////////////
// Discovery: GET /students
////////////////////////////////////////////////////////////////////////

type listStudentsRequest struct {
	PageID   int32 `form:"page_id" binding:"omitempty,min=1"`
	PageSize int32 `form:"page_size" binding:"omitempty,min=1,max=50"`
}

// listStudents returns discovery cards for students with an analyzed
// profile.
func (server *Server) listStudents(ctx *gin.Context) {
	var req listStudentsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if req.PageID == 0 {
		req.PageID = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	cards, err := server.store.ListStudents(ctx, req.PageSize, (req.PageID-1)*req.PageSize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, cards)
}
