package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/prospect-intel/backend/internal/domain"
	"github.com/prospect-intel/backend/internal/metrics"
	"github.com/prospect-intel/backend/internal/orchestrator"
	"github.com/prospect-intel/backend/internal/report"
	"github.com/prospect-intel/backend/internal/storage/models"
	"github.com/prospect-intel/backend/internal/storage/sqlite"
	"github.com/prospect-intel/backend/pkg/logger"
	"github.com/prospect-intel/backend/pkg/namekey"
)

type ReportHandler struct {
	service   *orchestrator.Service
	generator *report.Generator
	store     *sqlite.Client
}

func NewReportHandler(service *orchestrator.Service, generator *report.Generator, store *sqlite.Client) *ReportHandler {
	return &ReportHandler{service: service, generator: generator, store: store}
}

// GenerateReport runs (or reuses a cached) analysis and returns it as a PDF
// attachment.
func (h *ReportHandler) GenerateReport(c *fiber.Ctx) error {
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
		logger.Error("Analysis for report failed", zap.String("company", query.Name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to analyze company",
		})
	}

	pdf, err := h.generator.GeneratePDF(c.Context(), analysis)
	if err != nil {
		metrics.ReportsGenerated.WithLabelValues("error").Inc()
		logger.Error("PDF generation failed", zap.String("company", query.Name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate report",
		})
	}
	metrics.ReportsGenerated.WithLabelValues("ok").Inc()

	if h.store != nil {
		record := models.ReportRecord{
			ID:          uuid.New().String(),
			AnalysisID:  analysis.ID,
			CompanyName: analysis.CompanyName,
			SizeBytes:   len(pdf),
			CreatedAt:   time.Now().UTC(),
		}
		if err := h.store.InsertReport(c.Context(), record); err != nil {
			logger.Warn("Failed to record report", zap.Error(err))
		}
	}

	filename := fmt.Sprintf("ai-readiness-%s.pdf",
		strings.ReplaceAll(namekey.Normalize(analysis.CompanyName), " ", "-"))
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
