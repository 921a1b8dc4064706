package api

import (
	"net/http"

	reqdto "skipass-api/internal/handler/dto/request"
	resdto "skipass-api/internal/handler/dto/response"
	"skipass-api/internal/handler/httperr"
	"skipass-api/internal/pkg/errs"
	"skipass-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ResortHandler struct {
	q queries.ResortQueries
}

func NewResortHandler(q queries.ResortQueries) *ResortHandler {
	return &ResortHandler{q: q}
}

// @Summary List resorts
// @Description Resorts ordered by name; q filters by a case-insensitive name substring
// @Tags resorts
// @Produce json
// @Param q query string false "Name search"
// @Success 200 {array} resdto.ResortResponse
// @Failure 400 {object} httperr.Response
// @Router /resorts [get]
func (h *ResortHandler) List(c *gin.Context) {
	var query reqdto.SearchResortsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	views, err := h.q.List(c.Request.Context(), query.Q)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResortViews(views))
}

// @Summary Get resort
// @Tags resorts
// @Produce json
// @Param id path string true "Resort ID"
// @Success 200 {object} resdto.ResortResponse
// @Failure 404 {object} httperr.Response
// @Router /resorts/{id} [get]
func (h *ResortHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, errs.Mark(err, errs.ErrResortNotFound))
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResortView(view))
}
