package v1

import (
	"errors"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	r.GET("/profile", handler.GetProfile)
	r.PUT("/profile", handler.SaveProfile)
}

// GetProfile godoc
// @Summary      Get profile aggregate
// @Description  Fetch a user's profile plus all sub-entity collections in one response
// @Tags         profile
// @Produce      json
// @Param        userId  query     string  true  "Account identifier"
// @Success      200     {object}  response.Response{data=domain.ProfileAggregate}
// @Failure      400     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Router       /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	aggregate, err := h.profileUC.GetProfile(c.Request.Context(), c.Query("userId"))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Profile fetched", aggregate)
}

// SaveProfile godoc
// @Summary      Save profile aggregate
// @Description  Upsert the profile row and replace every collection present in the body. Omitted collections are left untouched.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.ProfileSaveInput  true  "Aggregate JSON"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /profile [put]
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var input domain.ProfileSaveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.profileUC.SaveProfile(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Profile saved", gin.H{"profile": profile})
}

// fail maps errors onto the {success,message} envelope this surface uses.
func (h *ProfileHandler) fail(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		response.Error(c, appErr.Code, appErr.Message)
		return
	}
	logger.Log.Error("Profile request failed", "error", err, "path", c.FullPath())
	response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
}
