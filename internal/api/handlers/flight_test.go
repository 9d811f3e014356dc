package handlers_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"testing"

	"balloon-flights-backend/internal/api/handlers"
	"balloon-flights-backend/internal/api/middleware"
	"balloon-flights-backend/internal/database/models"
	apperrors "balloon-flights-backend/internal/errors"
	"balloon-flights-backend/internal/mocks"
	"balloon-flights-backend/internal/policy"
	"balloon-flights-backend/internal/service"
	"balloon-flights-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// uploadCap is the body limit of the /limited routes
const uploadCap = 1024

// FlightHandlerTestSuite defines the test suite for FlightHandler
type FlightHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockFlightServiceInterface
	handler     *handlers.FlightHandler
	httpSuite   *testutils.HTTPTestSuite
	factories   *testutils.FactorySet
	actor       policy.Actor
}

// SetupTest sets up the test suite
func (suite *FlightHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockFlightServiceInterface(suite.ctrl)
	suite.handler = handlers.NewFlightHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.factories = testutils.NewFactorySet()
	suite.actor = policy.Actor{UserID: uuid.New(), Username: "ana"}

	router := suite.httpSuite.Router
	router.GET("/anonymous/flights", suite.handler.ListFlights)
	router.POST("/anonymous/flights", suite.handler.SubmitFlight)

	limited := router.Group("/limited", withActor(suite.actor), middleware.LimitBody(uploadCap))
	limited.POST("/flights", suite.handler.SubmitFlight)
	limited.PUT("/flights/:id", suite.handler.UpdateFlight)

	v1 := router.Group("/api/v1", withActor(suite.actor))
	{
		v1.GET("/flights", suite.handler.ListFlights)
		v1.POST("/flights", suite.handler.SubmitFlight)

		admin := v1.Group("/admin/flights")
		admin.GET("", suite.handler.ListAllFlights)
		admin.GET("/:id", suite.handler.GetFlight)
		admin.PUT("/:id", suite.handler.UpdateFlight)
		admin.DELETE("/:id", suite.handler.DeleteFlight)
	}
}

// TearDownTest cleans up after each test
func (suite *FlightHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FlightHandlerTestSuite) loadedFlight() *models.Flight {
	owner, pilot, balloon, airways := suite.factories.CreateCatalog()
	owner.ID = suite.actor.UserID
	flight := suite.factories.Flight.WithRefs(owner.ID, balloon.ID, pilot.ID, airways.ID)
	flight.Pilot, flight.Balloon, flight.Airways = pilot, balloon, airways
	return flight
}

func (suite *FlightHandlerTestSuite) TestListFlights() {
	suite.T().Run("Success", func(t *testing.T) {
		flight := suite.loadedFlight()

		suite.mockService.EXPECT().
			ListFor(gomock.Any(), suite.actor).
			Return([]models.Flight{*flight}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/flights", nil)

		var response []handlers.FlightResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		require.Len(t, response, 1)
		assert.Equal(t, flight.Code, response[0].Code)
		assert.Equal(t, "Ana Petrova", response[0].Pilot.Label)
		assert.Equal(t, "Large - Cameron", response[0].Balloon.Label)
		assert.Equal(t, "Balkan Air", response[0].Airways.Label)
		assert.Equal(t, suite.actor.UserID, response[0].OwnerID)
	})

	suite.T().Run("Empty listing is an empty array", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListFor(gomock.Any(), suite.actor).
			Return([]models.Flight{}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/flights", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, "[]", recorder.Body.String())
	})

	suite.T().Run("Anonymous caller", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/anonymous/flights", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "authenticated user not found")
	})

	suite.T().Run("Service error", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListFor(gomock.Any(), suite.actor).
			Return(nil, fmt.Errorf("connection reset")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/flights", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Failed to list flights")
	})
}

func (suite *FlightHandlerTestSuite) TestSubmitFlight() {
	fields := map[string]string{
		"code":            "MK100",
		"takeoff_airport": "Skopje",
		"landing_airport": "Ohrid",
		"balloon":         uuid.NewString(),
		"pilot":           uuid.NewString(),
		"airways":         uuid.NewString(),
		"owner":           uuid.NewString(),
	}

	suite.T().Run("Multipart with photo", func(t *testing.T) {
		flight := suite.loadedFlight()
		photo := []byte("image bytes")

		suite.mockService.EXPECT().
			Submit(gomock.Any(), suite.actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ policy.Actor, req *service.SubmitFlightRequest) (*models.Flight, error) {
				assert.Equal(t, "MK100", req.Code)
				assert.Equal(t, "Ohrid", req.LandingAirport)
				assert.Equal(t, fields["balloon"], req.Balloon)
				require.NotNil(t, req.Photo)
				assert.Equal(t, "sky.png", req.Photo.Filename)
				assert.Equal(t, photo, req.Photo.Data)
				return flight, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/api/v1/flights", fields,
			[]testutils.MultipartFile{{Field: handlers.PhotoField, Filename: "sky.png", Content: photo}}, nil)

		var response handlers.FlightResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, flight.ID, response.ID)
		assert.Equal(t, suite.actor.UserID, response.OwnerID)
	})

	suite.T().Run("Oversized upload is refused before the service", func(t *testing.T) {
		photo := bytes.Repeat([]byte{0xff}, 4*uploadCap)

		recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/limited/flights", fields,
			[]testutils.MultipartFile{{Field: handlers.PhotoField, Filename: "huge.png", Content: photo}}, nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusRequestEntityTooLarge, "Request body too large")
	})

	suite.T().Run("Upload within the cap reaches the service", func(t *testing.T) {
		suite.mockService.EXPECT().
			Submit(gomock.Any(), suite.actor, gomock.Any()).
			Return(suite.loadedFlight(), nil).
			Times(1)

		recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/limited/flights", fields,
			[]testutils.MultipartFile{{Field: handlers.PhotoField, Filename: "small.png", Content: []byte("tiny")}}, nil)

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("Multipart without photo", func(t *testing.T) {
		suite.mockService.EXPECT().
			Submit(gomock.Any(), suite.actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ policy.Actor, req *service.SubmitFlightRequest) (*models.Flight, error) {
				assert.Nil(t, req.Photo)
				return suite.loadedFlight(), nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/api/v1/flights", fields, nil, nil)
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("JSON body", func(t *testing.T) {
		suite.mockService.EXPECT().
			Submit(gomock.Any(), suite.actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ policy.Actor, req *service.SubmitFlightRequest) (*models.Flight, error) {
				assert.Equal(t, "Skopje", req.TakeoffAirport)
				return suite.loadedFlight(), nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/flights", fields)
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("Validation failures are field keyed", func(t *testing.T) {
		suite.mockService.EXPECT().
			Submit(gomock.Any(), suite.actor, gomock.Any()).
			Return(nil, apperrors.ValidationErrors{
				"landing_airport": "required",
				"pilot":           "does not exist",
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/flights", map[string]string{"code": "MK100"})

		var response handlers.ValidationErrorResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusBadRequest, &response)
		assert.Equal(t, "validation failed", response.Error)
		assert.Equal(t, map[string]string{"landing_airport": "required", "pilot": "does not exist"}, response.Fields)
	})

	suite.T().Run("Malformed JSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/flights", "not an object", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid request body")
	})

	suite.T().Run("Anonymous caller", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/anonymous/flights", fields)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func (suite *FlightHandlerTestSuite) TestAdminFlights() {
	suite.T().Run("List all", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListAll(gomock.Any(), suite.actor).
			Return([]models.Flight{*suite.loadedFlight(), *suite.loadedFlight()}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/admin/flights", nil)

		var response []handlers.FlightResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 2)
	})

	suite.T().Run("Get own flight", func(t *testing.T) {
		flight := suite.loadedFlight()
		suite.mockService.EXPECT().
			Get(gomock.Any(), suite.actor, flight.ID).
			Return(flight, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/admin/flights/"+flight.ID.String(), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Get foreign flight", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().
			Get(gomock.Any(), suite.actor, id).
			Return(nil, apperrors.ErrFlightChangeDenied).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/admin/flights/"+id.String(), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "permission")
	})

	suite.T().Run("Get with invalid id", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/admin/flights/not-a-uuid", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid flight ID")
	})

	suite.T().Run("Update removes photo", func(t *testing.T) {
		flight := suite.loadedFlight()
		suite.mockService.EXPECT().
			Update(gomock.Any(), suite.actor, flight.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ policy.Actor, _ uuid.UUID, req *service.UpdateFlightRequest) (*models.Flight, error) {
				assert.True(t, req.RemovePhoto)
				assert.Equal(t, "MK200", req.Code)
				assert.Nil(t, req.Photo)
				return flight, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPut, "/api/v1/admin/flights/"+flight.ID.String(),
			map[string]string{"code": "MK200", "remove_photo": "true"}, nil, nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Update with oversized photo", func(t *testing.T) {
		photo := bytes.Repeat([]byte{0xff}, 4*uploadCap)

		recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPut, "/limited/flights/"+uuid.NewString(),
			map[string]string{"code": "MK200"},
			[]testutils.MultipartFile{{Field: handlers.PhotoField, Filename: "huge.png", Content: photo}}, nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusRequestEntityTooLarge, "Request body too large")
	})

	suite.T().Run("Update missing flight", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().
			Update(gomock.Any(), suite.actor, id, gomock.Any()).
			Return(nil, apperrors.ErrFlightNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/admin/flights/"+id.String(), map[string]string{"code": "X"})
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "flight not found")
	})

	suite.T().Run("Delete is always refused", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().
			Delete(gomock.Any(), suite.actor, id).
			Return(apperrors.ErrFlightDeleteDenied).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/admin/flights/"+id.String(), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "flights cannot be deleted")
	})
}

func TestFlightHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FlightHandlerTestSuite))
}
