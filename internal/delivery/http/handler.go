package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lawalalx/foodplan/internal/domain"
	"github.com/lawalalx/foodplan/internal/infrastructure/catalog"
	"github.com/lawalalx/foodplan/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	planner   *usecase.PlannerService
	feedback  *usecase.FeedbackService
	recommend *usecase.RecommendService
	catalog   *catalog.Holder
	meals     *catalog.MealBook
	logger    *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(
	planner *usecase.PlannerService,
	feedback *usecase.FeedbackService,
	recommend *usecase.RecommendService,
	products *catalog.Holder,
	meals *catalog.MealBook,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		planner:   planner,
		feedback:  feedback,
		recommend: recommend,
		catalog:   products,
		meals:     meals,
		logger:    logger,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  "foodplan-backend",
		"version":  "1.0.0",
		"products": h.catalog.Len(),
	})
}

// GeneratePlan handles meal plan generation requests
func (h *Handler) GeneratePlan(c *gin.Context) {
	var req domain.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	plan, err := h.planner.GeneratePlan(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// mealIngredientsRequest is the body for ingredient expansion requests.
type mealIngredientsRequest struct {
	MealName      string `json:"meal_name"`
	HouseholdSize int    `json:"household_size"`
}

// MealIngredients handles ingredient expansion and matching requests
func (h *Handler) MealIngredients(c *gin.Context) {
	var req mealIngredientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	listing, err := h.planner.MealIngredients(c.Request.Context(), req.MealName, req.HouseholdSize)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// buildCartRequest carries the match results to price.
type buildCartRequest struct {
	Matches []domain.MatchResult `json:"matches"`
}

// BuildCart handles cart aggregation requests
func (h *Handler) BuildCart(c *gin.Context) {
	var req buildCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	summary, err := h.planner.BuildCart(req.Matches)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// RecordFeedback handles feedback event submissions
func (h *Handler) RecordFeedback(c *gin.Context) {
	var event domain.FeedbackEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, err := h.feedback.Record(c.Request.Context(), &event)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":                 event.ID,
		"status":             "recorded",
		"total_interactions": profile.TotalInteractions,
	})
}

// Recommendations handles personalized recommendation requests
func (h *Handler) Recommendations(c *gin.Context) {
	userID := c.Param("userID")
	count := 5
	if raw, ok := c.GetQuery("count"); ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "count must be an integer"})
			return
		}
		count = parsed
	}

	profile, _ := h.feedback.Profile(userID)
	meals := h.mealsWithLivePopularity()

	recommendations, err := h.recommend.Recommend(profile, meals, count)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":         userID,
		"recommendations": recommendations,
	})
}

// Insights handles profile insight requests
func (h *Handler) Insights(c *gin.Context) {
	insights, err := h.feedback.Insights(c.Param("userID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, insights)
}

// replaceCatalogRequest carries a full catalog refresh.
type replaceCatalogRequest struct {
	Products []domain.Product `json:"products"`
}

// ReplaceCatalog handles catalog refresh requests
func (h *Handler) ReplaceCatalog(c *gin.Context) {
	var req replaceCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Products) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "catalog must contain at least one product"})
		return
	}
	for _, p := range req.Products {
		if p.ID == "" || p.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "every product needs an id and a name"})
			return
		}
	}

	h.catalog.Replace(req.Products)
	h.logger.Info("catalog replaced", zap.Int("products", len(req.Products)))
	c.JSON(http.StatusOK, gin.H{"products": h.catalog.Len()})
}

// mealsWithLivePopularity overlays live selection counts onto the seeded
// popularity baselines.
func (h *Handler) mealsWithLivePopularity() []domain.Meal {
	meals := h.meals.Snapshot()
	for i := range meals {
		meals[i].Popularity += h.feedback.Popularity(meals[i].Name)
	}
	return meals
}

// respondError maps domain errors to HTTP status codes.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrInvalidFeedbackKind):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrProfileNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrMalformedGenerationOutput),
		errors.Is(err, domain.ErrGenerationFailure):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
