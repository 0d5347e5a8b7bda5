package serverutils

import (
	"os"

	"hr-assist-be/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JWTSecret resolves the token signing key exactly the way config.Load
// does, so tokens issued by the auth service always verify here even
// when JWT_SECRET is unset.
func JWTSecret() []byte {
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		return []byte(v)
	}
	return []byte(config.DefaultJWTSecret)
}

func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return JWTSecret(), nil
	})

	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
	}

	ctx.Locals("employee_id", claims["employee_id"])
	ctx.Locals("role", claims["role"])
	ctx.Locals("email", claims["email"])
	return ctx.Next()
}

// HRRoleMiddleware restricts a route group to HR staff roles. Must run
// after JwtMiddleware.
func HRRoleMiddleware(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)
	switch role {
	case "hr_admin", "hr_manager":
		return ctx.Next()
	}
	return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "HR role required"})
}
