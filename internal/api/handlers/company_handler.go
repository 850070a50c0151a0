package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/prospect-intel/backend/internal/companydb"
	"github.com/prospect-intel/backend/internal/storage/sqlite"
	"github.com/prospect-intel/backend/pkg/logger"
)

type CompanyHandler struct {
	db    *companydb.DB
	store *sqlite.Client
}

func NewCompanyHandler(db *companydb.DB, store *sqlite.Client) *CompanyHandler {
	return &CompanyHandler{db: db, store: store}
}

// Suggestions serves autocomplete for the company search box.
func (h *CompanyHandler) Suggestions(c *fiber.Ctx) error {
	query := c.Query("q")
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	suggestions := h.db.Suggest(query, limit)
	if suggestions == nil {
		suggestions = []companydb.Entry{}
	}

	return c.JSON(fiber.Map{
		"query":       query,
		"suggestions": suggestions,
	})
}

// Validate reports whether a company name is in the curated list.
func (h *CompanyHandler) Validate(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name query parameter is required",
		})
	}

	entry, known := h.db.Validate(name)
	resp := fiber.Map{
		"name":  name,
		"known": known,
	}
	if known {
		resp["company"] = entry
	}
	return c.JSON(resp)
}

// History returns the most recent persisted analyses.
func (h *CompanyHandler) History(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	records, err := h.store.RecentAnalyses(c.Context(), limit)
	if err != nil {
		logger.Error("Failed to load analysis history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load history",
		})
	}

	return c.JSON(fiber.Map{
		"count":    len(records),
		"analyses": records,
	})
}
