package service_test

import (
	"context"
	"testing"

	"balloon-flights-backend/internal/database/models"
	apperrors "balloon-flights-backend/internal/errors"
	"balloon-flights-backend/internal/mocks"
	"balloon-flights-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *mocks.MockUserRepositoryInterface
	userService *service.UserService
	ctx         context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.userService = service.NewUserService(suite.mockRepo, validator.New())
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserServiceTestSuite) TestRegisterHashesPassword() {
	suite.mockRepo.EXPECT().GetByUsername("ana").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	user, err := suite.userService.Register(suite.ctx, &service.RegisterRequest{Username: " ana ", Password: "hot-air-123"})

	suite.Require().NoError(err)
	suite.Equal("ana", user.Username)
	suite.False(user.IsStaff)
	suite.NotEqual("hot-air-123", user.PasswordHash)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hot-air-123")))
}

func (suite *UserServiceTestSuite) TestRegisterDuplicate() {
	suite.mockRepo.EXPECT().GetByUsername("ana").Return(&models.User{Username: "ana"}, nil)

	_, err := suite.userService.Register(suite.ctx, &service.RegisterRequest{Username: "ana", Password: "hot-air-123"})

	suite.ErrorIs(err, apperrors.ErrUserExists)
}

func (suite *UserServiceTestSuite) TestRegisterValidation() {
	_, err := suite.userService.Register(suite.ctx, &service.RegisterRequest{Username: "", Password: "short"})

	fields, ok := apperrors.AsValidationErrors(err)
	suite.Require().True(ok)
	suite.Equal(service.MsgRequired, fields["username"])
	suite.Equal(service.MsgOutOfRange, fields["password"])
}

func (suite *UserServiceTestSuite) TestAuthenticate() {
	hash, err := bcrypt.GenerateFromPassword([]byte("hot-air-123"), bcrypt.MinCost)
	suite.Require().NoError(err)
	stored := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "ana", PasswordHash: string(hash)}
	suite.mockRepo.EXPECT().GetByUsername("ana").Return(stored, nil).Times(2)

	user, err := suite.userService.Authenticate(suite.ctx, "ana", "hot-air-123")
	suite.NoError(err)
	suite.Equal(stored.ID, user.ID)

	_, err = suite.userService.Authenticate(suite.ctx, "ana", "wrong")
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *UserServiceTestSuite) TestAuthenticateUnknownUser() {
	suite.mockRepo.EXPECT().GetByUsername("ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.userService.Authenticate(suite.ctx, "ghost", "whatever")

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *UserServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().Delete(id).Return(gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.userService.Delete(suite.ctx, id), apperrors.ErrUserNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
