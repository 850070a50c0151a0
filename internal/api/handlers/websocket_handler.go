package handlers

import (
	"context"
	"time"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/prospect-intel/backend/internal/domain"
	"github.com/prospect-intel/backend/internal/orchestrator"
	"github.com/prospect-intel/backend/pkg/logger"
)

type WebSocketHandler struct {
	service *orchestrator.Service
}

func NewWebSocketHandler(service *orchestrator.Service) *WebSocketHandler {
	return &WebSocketHandler{service: service}
}

// HandleConnection streams per-step progress while an analysis runs, then
// the full result. One analysis per inbound message.
func (h *WebSocketHandler) HandleConnection(c *websocket.Conn) {
	logger.Info("WebSocket connection established")

	defer func() {
		c.Close()
		logger.Info("WebSocket connection closed")
	}()

	for {
		var msg struct {
			Type        string `json:"type"`
			CompanyName string `json:"company_name"`
			Domain      string `json:"domain"`
		}

		if err := c.ReadJSON(&msg); err != nil {
			logger.Debug("WebSocket read ended", zap.Error(err))
			break
		}

		if msg.Type != "analyze" {
			continue
		}

		logger.Info("Processing WebSocket analysis", zap.String("company", msg.CompanyName))

		if err := h.streamAnalysis(c, msg.CompanyName, msg.Domain); err != nil {
			logger.Error("Failed to stream analysis", zap.Error(err))
			h.sendError(c, "Failed to analyze company")
		}
	}
}

func (h *WebSocketHandler) streamAnalysis(c *websocket.Conn, companyName, companyDomain string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	progress := func(step, detail string) {
		_ = c.WriteJSON(map[string]interface{}{
			"type":   "progress",
			"step":   step,
			"detail": detail,
		})
	}

	query := domain.CompanyQuery{Name: companyName, Domain: companyDomain}
	analysis, err := h.service.Analyze(ctx, query, progress)
	if err != nil {
		return err
	}

	return c.WriteJSON(map[string]interface{}{
		"type":     "complete",
		"analysis": analysis,
	})
}

func (h *WebSocketHandler) sendError(c *websocket.Conn, errorMsg string) {
	_ = c.WriteJSON(map[string]interface{}{
		"type":  "error",
		"error": errorMsg,
	})
}
