package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"harmony-match/internal/domain"
	"harmony-match/internal/service"
)

const (
	defaultYearsStart = 1940
	defaultYearsEnd   = 2030
)

// ZodiacHandler mantiene dependencias para los endpoints del zodiaco.
type ZodiacHandler struct {
	logger    *zap.Logger
	engine    *service.CompatibilityEngine
	validator *service.YearValidator
}

// NewZodiacHandler crea una instancia de ZodiacHandler con dependencias necesarias.
func NewZodiacHandler(logger *zap.Logger, engine *service.CompatibilityEngine, validator *service.YearValidator) *ZodiacHandler {
	return &ZodiacHandler{
		logger:    logger,
		engine:    engine,
		validator: validator,
	}
}

// GetData maneja GET /api/zodiac.
func (h *ZodiacHandler) GetData(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Data())
}

// GetProfile maneja GET /api/zodiac/profile/:year.
func (h *ZodiacHandler) GetProfile(c *gin.Context) {
	year, err := h.validator.Validate(c.Param("year"))
	if err != nil {
		var yerr *service.InvalidYearError
		if errors.As(err, &yerr) {
			h.logger.Warn("invalid profile year", zap.String("value", yerr.Value), zap.Error(yerr.Reason))
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year", "message": yerr.Message})
			return
		}
		h.logger.Error("validate profile year failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not resolve profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": h.engine.ResolveProfile(year)})
}

// GetYearsForAnimal maneja GET /api/zodiac/animals/:animal/years.
func (h *ZodiacHandler) GetYearsForAnimal(c *gin.Context) {
	animal, err := domain.ParseAnimal(c.Param("animal"))
	if err != nil {
		h.logger.Warn("unknown animal", zap.String("animal", c.Param("animal")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown animal"})
		return
	}

	start, errStart := queryInt(c, "start", defaultYearsStart)
	end, errEnd := queryInt(c, "end", defaultYearsEnd)
	if errStart != nil || errEnd != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid range", "message": "start and end must be whole years"})
		return
	}

	years, err := h.engine.YearsForAnimal(animal, start, end)
	if err != nil {
		if errors.Is(err, service.ErrInvalidYearRange) {
			h.logger.Warn("invalid years range", zap.Int("start", start), zap.Int("end", end))
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid range",
				"message": fmt.Sprintf("start must not be after end and the range must span at most %d years", service.MaxYearsSpan),
			})
			return
		}
		h.logger.Error("list years failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list years"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"animal": animal,
		"start":  start,
		"end":    end,
		"years":  years,
	})
}

// PostCompatibility maneja POST /api/compatibility.
func (h *ZodiacHandler) PostCompatibility(c *gin.Context) {
	var req struct {
		Year1 json.RawMessage `json:"year1"`
		Year2 json.RawMessage `json:"year2"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid compatibility request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	year1, year2, err := h.validator.ValidatePair(rawYear(req.Year1), rawYear(req.Year2))
	if err != nil {
		var pairErr *service.YearPairError
		if errors.As(err, &pairErr) {
			h.logger.Warn("invalid compatibility years", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year", "fields": pairErr.Fields()})
			return
		}
		h.logger.Error("validate compatibility years failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not calculate compatibility"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": h.engine.Report(year1, year2)})
}

// rawYear acepta 1990 o "1990"; null o ausente cuenta como vacío.
func rawYear(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return s
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
