package api

import (
	"net/http"

	reqdto "skipass-api/internal/handler/dto/request"
	resdto "skipass-api/internal/handler/dto/response"
	"skipass-api/internal/handler/httperr"
	"skipass-api/internal/handler/middleware"
	"skipass-api/internal/pkg/errs"
	"skipass-api/internal/usecase/commands"
	"skipass-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PassHandler struct {
	cmds commands.PassCommands
	q    queries.PassQueries
}

func NewPassHandler(cmds commands.PassCommands, q queries.PassQueries) *PassHandler {
	return &PassHandler{cmds: cmds, q: q}
}

// @Summary List passes
// @Description Every purchase of the caller, newest first, with its derived status
// @Tags passes
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, active or expired"
// @Success 200 {array} resdto.PassResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /passes [get]
func (h *PassHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Unauthorized", nil)
		return
	}
	var query reqdto.ListPassesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.Filter()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	views, err := h.q.ListVisible(c.Request.Context(), userID, filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPassViews(views))
}

// @Summary Get pass
// @Tags passes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Purchase ID"
// @Success 200 {object} resdto.PassResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /passes/{id} [get]
func (h *PassHandler) Get(c *gin.Context) {
	userID, id, ok := h.identify(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPassView(view))
}

// @Summary Buy a pass
// @Description Validate the card, price the tier from the catalog and record a pending pass
// @Tags passes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.PassResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /passes [post]
func (h *PassHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	p, err := h.cmds.Checkout(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPassView(queries.NewPassView(p, p.PurchasedAt())))
}

// @Summary Activate a pass
// @Description Start the 12 hour validity window. Succeeds once per pass.
// @Tags passes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Purchase ID"
// @Success 200 {object} resdto.PassResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /passes/{id}/activate [post]
func (h *PassHandler) Activate(c *gin.Context) {
	userID, id, ok := h.identify(c)
	if !ok {
		return
	}
	p, err := h.cmds.Activate(c.Request.Context(), id, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPassView(queries.NewPassView(p, *p.ActivatedAt())))
}

// @Summary Entry proof
// @Description Payload rendered as QR / NFC at the gate, only while the pass is active
// @Tags passes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Purchase ID"
// @Success 200 {object} resdto.EntryProofResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /passes/{id}/entry-proof [get]
func (h *PassHandler) EntryProof(c *gin.Context) {
	userID, id, ok := h.identify(c)
	if !ok {
		return
	}
	proof, err := h.q.EntryProof(c.Request.Context(), userID, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEntryProofView(proof))
}

// A malformed id cannot belong to the caller, so it answers like any other unknown pass.
func (h *PassHandler) identify(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Unauthorized", nil)
		return uuid.Nil, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, errs.Mark(err, errs.ErrPassNotFound))
		return uuid.Nil, uuid.Nil, false
	}
	return userID, id, true
}
