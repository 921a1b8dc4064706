package api

import (
	"net/http"

	resdto "skipass-api/internal/handler/dto/response"
	"skipass-api/internal/handler/httperr"
	"skipass-api/internal/handler/middleware"
	"skipass-api/internal/pkg/errs"
	"skipass-api/internal/usecase/commands"
	"skipass-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FavoriteHandler struct {
	cmds commands.FavoriteCommands
	q    queries.FavoriteQueries
}

func NewFavoriteHandler(cmds commands.FavoriteCommands, q queries.FavoriteQueries) *FavoriteHandler {
	return &FavoriteHandler{cmds: cmds, q: q}
}

// @Summary List favorite resorts
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ResortResponse
// @Failure 401 {object} httperr.Response
// @Router /favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Unauthorized", nil)
		return
	}
	views, err := h.q.List(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResortViews(views))
}

// @Summary Add favorite
// @Tags favorites
// @Security BearerAuth
// @Param resortId path string true "Resort ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /favorites/{resortId} [put]
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, resortID, ok := identifyFavorite(c)
	if !ok {
		return
	}
	if err := h.cmds.Add(c.Request.Context(), userID, resortID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove favorite
// @Tags favorites
// @Security BearerAuth
// @Param resortId path string true "Resort ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /favorites/{resortId} [delete]
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, resortID, ok := identifyFavorite(c)
	if !ok {
		return
	}
	if err := h.cmds.Remove(c.Request.Context(), userID, resortID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func identifyFavorite(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Unauthorized", nil)
		return uuid.Nil, uuid.Nil, false
	}
	resortID, err := uuid.Parse(c.Param("resortId"))
	if err != nil {
		httperr.Abort(c, errs.Mark(err, errs.ErrResortNotFound))
		return uuid.Nil, uuid.Nil, false
	}
	return userID, resortID, true
}
