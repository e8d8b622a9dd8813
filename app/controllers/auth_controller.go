package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/elaralabs/elara/app/models"
	"github.com/elaralabs/elara/app/repository"
	"github.com/elaralabs/elara/internal/pkg/session"
	"github.com/elaralabs/elara/internal/pkg/usercontext"
)

type credentialsRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// HandleSignup registers a new account and starts a session.
func HandleSignup(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Could not parse request body")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", "Email and password required")
	}

	user, err := models.CreateUser(req.Email, req.Password)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", err.Error())
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	if err := repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// No session is created on duplicate signup.
			return jsonError(c, fiber.StatusConflict, "email_already_registered", "Email already registered")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Could not create account")
	}

	if err := startSession(c, user); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Could not start session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "id": user.ID})
}

// HandleLogin verifies credentials and starts a session.
func HandleLogin(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Could not parse request body")
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	user, err := repo.GetByEmail(req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		return jsonError(c, fiber.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
	}

	if err := startSession(c, user); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Could not start session")
	}

	return c.JSON(fiber.Map{"ok": true})
}

// HandleLogout destroys the current session.
func HandleLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.JSON(fiber.Map{"ok": true})
}

func startSession(c *fiber.Ctx, user *models.User) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return err
	}
	sess.Set(usercontext.AuthKey, true)
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUserEmail, user.Email)
	// Plan in the session is display-only; billing reads the database.
	sess.Set(usercontext.KeyUserPlan, user.Plan)
	return sess.Save()
}
