package auth

import (
	"log"
	"strings"

	"cozinha-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	PIN string `json:"pin"`
}

// LoginHandler: troca o PIN de ecrã por um token com o perfil respetivo.
// Os PINs em claro nunca ficam no handler: são hasheados uma vez no arranque.
func LoginHandler(cfg *config.Config) fiber.Handler {
	gerenteHash, err := bcrypt.GenerateFromPassword([]byte(cfg.GerentePIN), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Não foi possível hashear o PIN do gerente: %v", err)
	}
	equipaHash, err := bcrypt.GenerateFromPassword([]byte(cfg.EquipaPIN), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Não foi possível hashear o PIN da equipa: %v", err)
	}

	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo do pedido inválido")
		}

		pin := strings.TrimSpace(body.PIN)
		if pin == "" {
			return fiber.NewError(fiber.StatusBadRequest, "PIN obrigatório")
		}

		var role Role
		switch {
		case bcrypt.CompareHashAndPassword(gerenteHash, []byte(pin)) == nil:
			role = RoleGerente
		case bcrypt.CompareHashAndPassword(equipaHash, []byte(pin)) == nil:
			role = RoleEquipa
		default:
			return fiber.NewError(fiber.StatusUnauthorized, "PIN incorreto")
		}

		token, err := GenerateToken(cfg.JWTSecret, role)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o token")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"role":  role,
		})
	}
}
