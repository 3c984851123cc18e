package mazeapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController serves one-shot generation, lookups and incremental sessions.
type MazeController struct {
	generator i.MazeGenerator
	sessions  i.SessionManager
}

// NewMazeController initializes a MazeController.
func NewMazeController(g i.MazeGenerator, sm i.SessionManager) *MazeController {
	return &MazeController{
		generator: g,
		sessions:  sm,
	}
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.GET("", mc.recent)
		mazes.GET("/:ID", mc.byID)
		mazes.POST("/sessions", mc.openSession)
	}
}

// RegisterProtected registers routes that need a session token.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	sessions := route.Group("/mazes/sessions")
	{
		sessions.POST("/:ID/steps", mc.step)
		sessions.DELETE("/:ID", mc.abandon)
	}
}

// generate builds a complete maze in one request.
func (mc *MazeController) generate(ctx *gin.Context) {
	request, ok := bindGenerateRequest(ctx)
	if !ok {
		return
	}

	record, err := mc.generator.Generate(ctx, request.options())
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(record))
}

// byID returns a stored maze.
func (mc *MazeController) byID(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	record, err := mc.generator.ByID(ctx, ID)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// recent lists the newest mazes. The "limit" query parameter defaults to 10.
func (mc *MazeController) recent(ctx *gin.Context) {
	limit := 10
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	records, err := mc.generator.Recent(ctx, limit)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	summaries := make([]MazeSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, MazeSummary{
			ID:        record.ID,
			Seed:      record.Seed,
			Width:     record.Layout.Width,
			Height:    record.Layout.Height,
			CreatedAt: record.CreatedAt,
		})
	}
	ctx.JSON(http.StatusOK, summaries)
}

// openSession starts an incremental run.
func (mc *MazeController) openSession(ctx *gin.Context) {
	request, ok := bindGenerateRequest(ctx)
	if !ok {
		return
	}

	ID, token, layout, err := mc.sessions.Open(ctx, request.options())
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, &SessionResponse{ID: ID, Token: token, Layout: layout})
}

// step advances a session by the number of steps in the "n" query parameter (default 1).
func (mc *MazeController) step(ctx *gin.Context) {
	ID, ok := authorizedSession(ctx)
	if !ok {
		return
	}

	n := 1
	if raw := ctx.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "n must be a positive integer"})
			return
		}
		n = parsed
	}

	layout, done, err := mc.sessions.Step(ctx, ID, n)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &StepResponse{Done: done, Layout: layout})
}

// abandon discards a session.
func (mc *MazeController) abandon(ctx *gin.Context) {
	ID, ok := authorizedSession(ctx)
	if !ok {
		return
	}

	if err := mc.sessions.Abandon(ctx, ID); err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// bindGenerateRequest accepts an empty body as a request for the defaults.
func bindGenerateRequest(ctx *gin.Context) (GenerateRequest, bool) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return request, false
	}
	return request, true
}

// authorizedSession checks that the path ID is the session the token grants.
func authorizedSession(ctx *gin.Context) (uuid.UUID, bool) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}

	granted, ok := ctx.Get(ContextSessionID)
	if !ok || granted.(uuid.UUID) != ID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "token does not grant this session"})
		return uuid.Nil, false
	}
	return ID, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, maze.ErrInvalidDimensions), errors.Is(err, maze.ErrInvalidCorner):
		return http.StatusBadRequest
	case errors.Is(err, dmn.ErrMazeNotFound), errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func newMazeResponse(record *dmn.MazeRecord) *MazeResponse {
	response := &MazeResponse{
		ID:        record.ID,
		Seed:      record.Seed,
		Layout:    record.Layout,
		CreatedAt: record.CreatedAt,
	}
	if grid, err := record.Layout.Restore(); err == nil {
		response.ASCII = grid.String()
	}
	return response
}
