package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devanshioza/skillfolio/genai"
	"github.com/devanshioza/skillfolio/skillz"
)

////////////////////////////////////////////////////////////////////////
// Skill suggestion: POST /skills/suggest
////////////////////////////////////////////////////////////////////////

type suggestSkillsRequest struct {
	GithubURL           string   `json:"githubUrl" binding:"omitempty,url"`
	ProjectDescriptions []string `json:"projectDescriptions"`
	PublicData          string   `json:"publicData"`
}

type suggestSkillsResponse struct {
	SuggestedSkills []string `json:"suggestedSkills"`
}

// suggestSkills runs the suggestion stage over the submitted material and
// returns normalized, de-duplicated candidate skill names.
func (server *Server) suggestSkills(ctx *gin.Context) {
	var req suggestSkillsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	suggested, err := server.analyzer.SuggestFromProfiles(ctx, req.GithubURL, req.ProjectDescriptions, req.PublicData)
	if err != nil {
		respondInferenceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, suggestSkillsResponse{
		SuggestedSkills: server.normalizer.Normalize(suggested),
	})
}

////////////////////////////////////////////////////////////////////////
// Skill validation: POST /skills/validate
////////////////////////////////////////////////////////////////////////

type validateSkillsRequest struct {
	Skills []string `json:"skills" binding:"required,min=1"`
	Proof  string   `json:"proof" binding:"required"`
}

type validateSkillsResponse struct {
	ValidatedSkills []skillz.SkillRecord `json:"validatedSkills"`
}

// validateSkills runs the validation stage: one rated, justified record
// per submitted skill.
func (server *Server) validateSkills(ctx *gin.Context) {
	var req validateSkillsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	records, err := skillz.ValidateSkills(ctx, server.llm, req.Skills, req.Proof)
	if err != nil {
		respondInferenceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, validateSkillsResponse{ValidatedSkills: records})
}

// respondInferenceError maps pipeline failures to HTTP statuses: provider
// or schema trouble is a bad gateway, everything else an internal error.
func respondInferenceError(ctx *gin.Context, err error) {
	var schemaErr *genai.SchemaViolationError
	if errors.As(err, &schemaErr) || errors.Is(err, genai.ErrEmptyResponse) {
		ctx.JSON(http.StatusBadGateway, errorResponse(err))
		return
	}
	ctx.JSON(http.StatusInternalServerError, errorResponse(err))
}
