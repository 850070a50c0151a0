package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/prospect-intel/backend/internal/domain"
	"github.com/prospect-intel/backend/internal/orchestrator"
	"github.com/prospect-intel/backend/pkg/logger"
)

type AnalyzeHandler struct {
	service   *orchestrator.Service
	refresher *orchestrator.LinkedInRefresher
}

func NewAnalyzeHandler(service *orchestrator.Service, refresher *orchestrator.LinkedInRefresher) *AnalyzeHandler {
	return &AnalyzeHandler{service: service, refresher: refresher}
}

type analyzeRequest struct {
	CompanyName string `json:"company_name"`
	Name        string `json:"name"`
	Domain      string `json:"domain"`
}

func (r analyzeRequest) companyName() string {
	if r.CompanyName != "" {
		return r.CompanyName
	}
	return r.Name
}

// Analyze runs the standard analysis pipeline for one company.
func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	return h.analyze(c, false)
}

// AnalyzeComprehensive additionally kicks off the background profile
// refresh for known decision makers.
func (h *AnalyzeHandler) AnalyzeComprehensive(c *fiber.Ctx) error {
	return h.analyze(c, true)
}

func (h *AnalyzeHandler) analyze(c *fiber.Ctx, comprehensive bool) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	query := domain.CompanyQuery{Name: req.companyName(), Domain: req.Domain}

	analysis, err := h.service.Analyze(c.Context(), query, nil)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCompanyName) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Company name is required",
			})
		}
		logger.Error("Analysis failed", zap.String("company", query.Name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to analyze company",
		})
	}

	if comprehensive {
		h.refresher.RefreshAsync(analysis)
	}

	return c.JSON(analysis)
}
