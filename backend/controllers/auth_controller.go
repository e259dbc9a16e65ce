package controllers

import (
	"errors"

	"fluidos/backend/config"
	"fluidos/backend/models"
	"fluidos/backend/repository"
	"fluidos/backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgEmailTaken      = "El correo ya está registrado."
	msgEmailNotFound   = "Correo no encontrado."
	msgWrongPassword   = "Contraseña incorrecta."
	msgPasswordTooLong = "La contraseña es demasiado larga."
	msgRegistered      = "Usuario registrado exitosamente."
	msgLoggedIn        = "Inicio de sesión exitoso"
)

type AuthController struct {
	Users repository.UserRepository
	Cfg   *config.Config
}

func NewAuthController(users repository.UserRepository, cfg *config.Config) *AuthController {
	return &AuthController{Users: users, Cfg: cfg}
}

type RegisterRequest struct {
	Name     *string `json:"nombre" validate:"required" example:"Ana"`
	Email    *string `json:"correo" validate:"required" example:"ana@example.com"`
	Password *string `json:"password" validate:"required" example:"secreto123"`
}

type LoginRequest struct {
	Email    *string `json:"correo" validate:"required" example:"ana@example.com"`
	Password *string `json:"password" validate:"required" example:"secreto123"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates an account; the email must not be registered yet
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "User registration data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /registro [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.Error(c, fiber.StatusUnprocessableEntity, errors.New("Cannot parse JSON"))
	}
	if err := utils.ValidateStruct(&input); err != nil {
		return utils.ValidationError(c, err)
	}

	ctx := c.UserContext()
	_, err := ac.Users.FindByEmail(ctx, *input.Email)
	if err == nil {
		return utils.BadRequest(c, msgEmailTaken)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(*input.Password, ac.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return utils.BadRequest(c, msgPasswordTooLong)
		}
		return err
	}

	user := models.User{
		Name:         *input.Name,
		Email:        *input.Email,
		PasswordHash: hashed,
	}
	if err := ac.Users.Create(ctx, &user); err != nil {
		// registered concurrently between the lookup and the insert
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return utils.BadRequest(c, msgEmailTaken)
		}
		return err
	}

	return c.JSON(fiber.Map{
		"mensaje": msgRegistered,
	})
}

// Login godoc
// @Summary User login
// @Description Checks the credentials and returns the public profile with a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.Error(c, fiber.StatusUnprocessableEntity, errors.New("Cannot parse JSON"))
	}
	if err := utils.ValidateStruct(&input); err != nil {
		return utils.ValidationError(c, err)
	}

	user, err := ac.Users.FindByEmail(c.UserContext(), *input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.BadRequest(c, msgEmailNotFound)
		}
		return err
	}

	if !utils.CheckPassword(user.PasswordHash, *input.Password) {
		return utils.BadRequest(c, msgWrongPassword)
	}

	token, err := utils.GenerateJWTToken(user.ID, user.Email, ac.Cfg)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"mensaje": msgLoggedIn,
		"usuario": fiber.Map{
			"nombre": user.Name,
			"correo": user.Email,
		},
		"token": token,
	})
}
