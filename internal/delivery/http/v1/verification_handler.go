package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type VerificationHandler struct {
	verificationUC domain.VerificationUsecase
}

func NewVerificationHandler(public *gin.RouterGroup, protected *gin.RouterGroup, verificationUC domain.VerificationUsecase) {
	handler := &VerificationHandler{verificationUC: verificationUC}

	protected.POST("/auth/verification", handler.Request)
	public.GET("/auth/verification/:token", handler.Confirm)
}

// Request godoc
// @Summary      Request verification email
// @Description  Issue a verification token and send it by email. The send is not retried on failure.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /auth/verification [post]
// @Security     BearerAuth
func (h *VerificationHandler) Request(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	v, err := h.verificationUC.RequestVerification(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Verification email sent", gin.H{"token": v.Token})
}

// Confirm godoc
// @Summary      Confirm verification token
// @Tags         auth
// @Produce      json
// @Param        token  path      string  true  "Verification token"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  map[string]interface{}
// @Router       /auth/verification/{token} [get]
func (h *VerificationHandler) Confirm(c *gin.Context) {
	if err := h.verificationUC.ConfirmVerification(c.Request.Context(), c.Param("token")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Email verified", nil)
}
