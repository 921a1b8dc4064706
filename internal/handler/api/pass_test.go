//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"skipass-api/internal/domain/pass"
	"skipass-api/internal/handler/api"
	reqdto "skipass-api/internal/handler/dto/request"
	resdto "skipass-api/internal/handler/dto/response"
	commandsmock "skipass-api/internal/mock/commands"
	queriesmock "skipass-api/internal/mock/queries"
	"skipass-api/internal/pkg/errs"
	"skipass-api/internal/testutil"
	"skipass-api/internal/testutil/builder"
	"skipass-api/internal/testutil/httptest"
	"skipass-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var handlerNow = time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)

type PassHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPassCommands
	mockQueries  *queriesmock.MockPassQueries
	userID       uuid.UUID
}

func (s *PassHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPassCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPassQueries(s.mockCtrl)
	s.userID = uuid.New()
	h := api.NewPassHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/passes", withUser(s.userID, h.List))
	s.router.POST("/passes", withUser(s.userID, h.Checkout))
	s.router.GET("/passes/:id", withUser(s.userID, h.Get))
	s.router.POST("/passes/:id/activate", withUser(s.userID, h.Activate))
	s.router.GET("/passes/:id/entry-proof", withUser(s.userID, h.EntryProof))
}

func (s *PassHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPassHandlerSuite(t *testing.T) {
	suite.Run(t, new(PassHandlerTestSuite))
}

func (s *PassHandlerTestSuite) TestList() {
	pending := builder.NewPurchaseBuilder().WithOwner(s.userID).WithPurchasedAt(handlerNow.Add(-time.Hour)).BuildView(handlerNow)
	active := builder.NewPurchaseBuilder().WithOwner(s.userID).
		WithPurchasedAt(handlerNow.Add(-3 * time.Hour)).
		WithActivatedAt(handlerNow.Add(-2 * time.Hour)).BuildView(handlerNow)

	s.Run("success: renders derived status and operations", func() {
		s.mockQueries.EXPECT().ListVisible(gomock.Any(), s.userID, (*pass.Status)(nil)).
			Return([]*queries.PassView{pending, active}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/passes", nil, "token")

		var response []resdto.PassResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("pending", response[0].Status)
		s.Equal([]string{"activate"}, response[0].PermittedOperations)
		s.Nil(response[0].ActivatedAt)
		s.Equal("active", response[1].Status)
		s.Equal([]string{"show_entry_proof"}, response[1].PermittedOperations)
		s.Require().NotNil(response[1].ValidUntil)
		s.True(response[1].ValidUntil.Equal(handlerNow.Add(10 * time.Hour)))
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().ListVisible(gomock.Any(), s.userID, gomock.Any()).
			Return([]*queries.PassView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/passes", nil, "token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("success: status filter is passed through", func() {
		want := pass.StatusActive
		s.mockQueries.EXPECT().ListVisible(gomock.Any(), s.userID, &want).
			Return([]*queries.PassView{active}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/passes?status=active", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: unknown status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/passes?status=used", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid pass status")
	})

	s.Run("error: unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/passes", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: store unavailable", func() {
		s.mockQueries.EXPECT().ListVisible(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, errs.Mark(errors.New("conn refused"), errs.ErrCollaboratorUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/passes", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}

func (s *PassHandlerTestSuite) TestGet() {
	view := builder.NewPurchaseBuilder().WithOwner(s.userID).WithPurchasedAt(handlerNow).BuildView(handlerNow)

	s.Run("success: returns the pass", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/passes/"+view.ID.String(), nil, "token")

		var response resdto.PassResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.PriceAmount.StringFixed(2), response.Price)
	})

	s.Run("error: malformed id is not found", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/passes/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pass not found")
	})

	s.Run("error: pass of someone else is not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, errs.ErrPassNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/passes/"+uuid.NewString(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pass not found")
	})
}

func (s *PassHandlerTestSuite) TestCheckout() {
	reqBody := reqdto.CheckoutRequest{
		ResortID:    uuid.New(),
		PriceTierID: uuid.New(),
		Card: reqdto.CardRequest{
			Holder:   "Ana Pop",
			Number:   "4111111111111111",
			ExpMonth: "12",
			ExpYear:  "30",
			CVV:      "123",
		},
	}

	s.Run("success: returns 201 with a pending pass", func() {
		purchase := builder.NewPurchaseBuilder().WithOwner(s.userID).WithResort("Straja", "130").WithPurchasedAt(handlerNow).Build()
		s.mockCommands.EXPECT().Checkout(gomock.Any(), s.userID, reqBody.ToCommand()).Return(purchase, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/passes", reqBody, "token")

		var response resdto.PassResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Straja", response.ResortName)
		s.Equal("130.00", response.Price)
		s.Equal("pending", response.Status)
		s.Equal([]string{"activate"}, response.PermittedOperations)
	})

	s.Run("error: 400 on missing fields", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing resort", mutate: testutil.Field("resort_id", nil)},
			{name: "missing tier", mutate: testutil.Field("price_tier_id", nil)},
			{name: "missing card", mutate: testutil.Field("card", nil)},
			{name: "malformed resort id", mutate: testutil.Field("resort_id", "nope")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/passes", testutil.DtoMap(s.T(), reqBody, tc.mutate), "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{name: "card rejected", err: errs.Mark(errors.New("card expired"), errs.ErrInvalidInput), expectedStatus: http.StatusBadRequest},
			{name: "unknown resort", err: errs.ErrResortNotFound, expectedStatus: http.StatusNotFound},
			{name: "owner vanished", err: errs.ErrUnauthenticated, expectedStatus: http.StatusUnauthorized},
			{name: "store down", err: errs.ErrCollaboratorUnavailable, expectedStatus: http.StatusServiceUnavailable},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Checkout(gomock.Any(), s.userID, gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/passes", reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *PassHandlerTestSuite) TestActivate() {
	id := uuid.New()
	url := "/passes/" + id.String() + "/activate"

	s.Run("success: returns the active pass", func() {
		purchase := builder.NewPurchaseBuilder().With(func(b *builder.PurchaseBuilder) { b.ID = id }).
			WithOwner(s.userID).WithPurchasedAt(handlerNow.Add(-time.Hour)).WithActivatedAt(handlerNow).Build()
		s.mockCommands.EXPECT().Activate(gomock.Any(), id, s.userID).Return(purchase, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var response resdto.PassResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("active", response.Status)
		s.Require().NotNil(response.ActivatedAt)
		s.True(response.ActivatedAt.Equal(handlerNow))
		s.True(response.ValidUntil.Equal(handlerNow.Add(pass.ValidityWindow)))
	})

	s.Run("error: second activation conflicts", func() {
		s.mockCommands.EXPECT().Activate(gomock.Any(), id, s.userID).Return(nil, errs.ErrAlreadyActivated).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Pass already activated")
	})

	s.Run("error: not found", func() {
		s.mockCommands.EXPECT().Activate(gomock.Any(), id, s.userID).Return(nil, errs.ErrPassNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pass not found")
	})

	s.Run("error: unauthenticated never reaches the use case", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *PassHandlerTestSuite) TestEntryProof() {
	id := uuid.New()
	url := "/passes/" + id.String() + "/entry-proof"

	s.Run("success: returns the proof", func() {
		proof := &queries.EntryProofView{PurchaseID: id, Payload: "SKIPASS:" + id.String(), ValidUntil: handlerNow.Add(time.Hour)}
		s.mockQueries.EXPECT().EntryProof(gomock.Any(), s.userID, id).Return(proof, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.EntryProofResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(proof.Payload, response.Payload)
		s.Equal(id, response.PurchaseID)
	})

	s.Run("error: pass not active", func() {
		s.mockQueries.EXPECT().EntryProof(gomock.Any(), s.userID, id).Return(nil, errs.ErrPassNotActive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Pass is not active")
	})
}
