package api

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/devanshioza/skillfolio/config"
	"github.com/devanshioza/skillfolio/db"
	"github.com/devanshioza/skillfolio/genai"
	"github.com/devanshioza/skillfolio/skillz"
	"github.com/devanshioza/skillfolio/token"
)

// Server serves HTTP requests for the portfolio application.
type Server struct {
	config     config.Config
	store      *db.Store
	tokenMaker *token.JWTMaker
	llm        genai.LLMClient
	analyzer   *skillz.Analyzer
	mentor     *skillz.Mentor
	normalizer *skillz.Normalizer
	router     *gin.Engine
}

// NewServer creates the HTTP server and sets up routing. All collaborators
// are injected; the server holds no global state.
func NewServer(
	cfg config.Config,
	store *db.Store,
	llm genai.LLMClient,
	analyzer *skillz.Analyzer,
	mentor *skillz.Mentor,
	normalizer *skillz.Normalizer,
) (*Server, error) {
	tokenMaker, err := token.NewJWTMaker(cfg.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	server := &Server{
		config:     cfg,
		store:      store,
		tokenMaker: tokenMaker,
		llm:        llm,
		analyzer:   analyzer,
		mentor:     mentor,
		normalizer: normalizer,
	}
	server.setupRouter()
	return server, nil
}

func (server *Server) setupRouter() {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if server.config.FrontendURL != "" {
		corsConfig.AllowOrigins = []string{server.config.FrontendURL}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Public routes
	router.POST("/auth/register", server.registerUser)
	router.POST("/auth/login", server.loginUser)

	// Authenticated routes
	auth := router.Group("/").Use(authMiddleware(server.tokenMaker))

	auth.POST("/profiles/analyze", server.analyzeProfile)
	auth.GET("/profiles/me", server.getMyProfile)
	auth.GET("/students", server.listStudents)

	auth.POST("/skills/suggest", server.suggestSkills)
	auth.POST("/skills/validate", server.validateSkills)

	auth.POST("/mentor/chat", server.mentorChat)
	auth.POST("/mentor/feedback", server.mentorFeedback)

	auth.POST("/messages", server.sendMessage)
	auth.GET("/messages/:userID", server.listConversation)

	server.router = router
}

// Start runs the HTTP server on the given address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// errorResponse shapes an error for a JSON response body.
func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
