package handler

import (
	"hr-assist-be/internal/pkg/logger"
	"hr-assist-be/internal/pkg/serverutils"
	internalWS "hr-assist-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
)

// EscalationFeedHandler upgrades HR dashboard connections to the live
// escalation feed.
type EscalationFeedHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewEscalationFeedHandler(hub *internalWS.Hub, log logger.ILogger) *EscalationFeedHandler {
	return &EscalationFeedHandler{
		hub:    hub,
		logger: log,
	}
}

// ServeWs handles websocket requests from the peer.
func (h *EscalationFeedHandler) ServeWs(c *fiber.Ctx) error {
	// Browsers can't set headers on WS handshakes, so the token may arrive
	// as a query param instead.
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return serverutils.JWTSecret(), nil
	})

	if err != nil || !token.Valid {
		h.logger.Warn("EscalationFeed", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}

	employeeCode, ok := claims["employee_id"].(string)
	if !ok || employeeCode == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing employee_id"})
	}

	// The feed is for HR staff only.
	role, _ := claims["role"].(string)
	if role != "hr_admin" && role != "hr_manager" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "HR role required"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(c *websocket.Conn) {
			h.logger.Info("EscalationFeed", "Starting WebSocket session", map[string]interface{}{"employee_code": employeeCode})
			internalWS.ServeWs(h.hub, c, employeeCode)
			h.logger.Info("EscalationFeed", "WebSocket session ended", map[string]interface{}{"employee_code": employeeCode})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the escalation feed endpoint.
func (h *EscalationFeedHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/escalations", h.ServeWs)
}
