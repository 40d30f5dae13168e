package handler

import (
	"context"

	"courtsync/dto"
	"courtsync/middleware"
	"courtsync/model"
	"courtsync/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

type TwoFactorRepo interface {
	EnableTwoFactor(ctx context.Context, userID, secret string) error
}

// TwoFactorSetupHandler provisions a TOTP secret for a verified admin
// account. Demo sessions have no directory profile to attach one to.
func TwoFactorSetupHandler(c *gin.Context, users TwoFactorRepo) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	if session.Origin == model.OriginDemo {
		utils.BadRequest(c, "2FA is not available for the demo session")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "CourtSync",
		AccountName: session.Email,
	})
	if err != nil {
		utils.InternalError(c, "Failed to generate 2FA secret")
		return
	}

	if err := users.EnableTwoFactor(c.Request.Context(), session.UserID, key.Secret()); err != nil {
		utils.InternalError(c, "Failed to enable 2FA")
		return
	}

	utils.Success(c, dto.TwoFactorSetupResponse{
		Secret: key.Secret(),
		URL:    key.URL(),
	})
}
