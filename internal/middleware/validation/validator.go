package validation

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var (
	sqlInjectionPattern = regexp.MustCompile(`(?i)(union\s+select|insert\s+into|delete\s+from|drop\s+table|exec\s|<script|javascript:)`)
	xssPattern          = regexp.MustCompile(`(?i)(<script|<iframe|javascript:|onerror=|onload=|onclick=)`)
)

type Config struct {
	MaxNameLength       int
	AllowedContentTypes []string
	Logger              *zap.Logger
}

// Middleware validates analyze-style request bodies before they reach a
// handler: JSON only, company name present, bounded length, no injection
// payloads. Non-analyze routes pass through untouched.
func Middleware(cfg Config) fiber.Handler {
	if cfg.MaxNameLength == 0 {
		cfg.MaxNameLength = 100
	}
	if len(cfg.AllowedContentTypes) == 0 {
		cfg.AllowedContentTypes = []string{"application/json"}
	}

	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodPost {
			contentType := c.Get("Content-Type")
			if contentType != "" && !typeAllowed(contentType, cfg.AllowedContentTypes) {
				return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
					"error": "Unsupported content type",
				})
			}
		}

		if needsCompanyName(c.Method(), c.Path()) {
			var req map[string]interface{}
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Invalid JSON format",
				})
			}

			name, _ := req["company_name"].(string)
			if name == "" {
				name, _ = req["name"].(string)
			}
			name = sanitize(name)

			if name == "" {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Company name is required",
				})
			}
			if len(name) > cfg.MaxNameLength {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Company name exceeds maximum length",
				})
			}
			if sqlInjectionPattern.MatchString(name) || xssPattern.MatchString(name) {
				cfg.Logger.Warn("Rejected suspicious company name",
					zap.String("ip", c.IP()),
					zap.String("name", name),
				)
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Invalid company name",
				})
			}

			c.Locals("company_name", name)
		}

		return c.Next()
	}
}

func needsCompanyName(method, path string) bool {
	if method != fiber.MethodPost {
		return false
	}
	return strings.Contains(path, "/analyze") || strings.Contains(path, "/generate-report")
}

func typeAllowed(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if strings.Contains(contentType, t) {
			return true
		}
	}
	return false
}

func sanitize(input string) string {
	input = strings.TrimSpace(input)
	return strings.ReplaceAll(input, "\x00", "")
}
