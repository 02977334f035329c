package services_test

import (
	"context"
	"testing"

	"github.com/fbenitez/concesionaria_app/internal/apperrors"
	"github.com/fbenitez/concesionaria_app/internal/core/domain"
	"github.com/fbenitez/concesionaria_app/internal/core/services"
	"github.com/fbenitez/concesionaria_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ClauseTemplateRepository ---
type MockClauseTemplateRepository struct {
	mock.Mock
}

func (m *MockClauseTemplateRepository) SaveClauseTemplate(ctx context.Context, template domain.ClauseTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockClauseTemplateRepository) UpdateClauseTemplate(ctx context.Context, template domain.ClauseTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockClauseTemplateRepository) DeleteClauseTemplate(ctx context.Context, templateID string) error {
	args := m.Called(ctx, templateID)
	return args.Error(0)
}

func (m *MockClauseTemplateRepository) FindClauseTemplateByID(ctx context.Context, templateID string) (*domain.ClauseTemplate, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClauseTemplate), args.Error(1)
}

func (m *MockClauseTemplateRepository) FindClauseTemplateByName(ctx context.Context, name string) (*domain.ClauseTemplate, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClauseTemplate), args.Error(1)
}

func (m *MockClauseTemplateRepository) ListClauseTemplates(ctx context.Context) ([]domain.ClauseTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClauseTemplate), args.Error(1)
}

// --- Test Suite ---
type ClauseTemplateServiceTestSuite struct {
	suite.Suite
	mockRepo *MockClauseTemplateRepository
	service  *services.ClauseTemplateService
}

func (suite *ClauseTemplateServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockClauseTemplateRepository)
	suite.service = services.NewClauseTemplateService(suite.mockRepo)
}

func (suite *ClauseTemplateServiceTestSuite) TestCreateClauseTemplate_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateClauseTemplateRequest{
		Name: "garantia-mecanica",
		Body: "LA PARTE VENDEDORA otorga garantía mecánica por el plazo de...",
	}

	suite.mockRepo.On("FindClauseTemplateByName", ctx, req.Name).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveClauseTemplate", ctx, mock.AnythingOfType("domain.ClauseTemplate")).Return(nil).Once()

	template, err := suite.service.CreateClauseTemplate(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(template)
	suite.NotEmpty(template.TemplateID)
	suite.Equal(req.Name, template.Name)
	suite.Equal(creatorUserID, template.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClauseTemplateServiceTestSuite) TestCreateClauseTemplate_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateClauseTemplateRequest{Name: "garantia-mecanica", Body: "..."}

	suite.mockRepo.On("FindClauseTemplateByName", ctx, req.Name).
		Return(&domain.ClauseTemplate{TemplateID: "existing", Name: req.Name}, nil).Once()

	template, err := suite.service.CreateClauseTemplate(ctx, req, "user1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(template)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveClauseTemplate")
}

func (suite *ClauseTemplateServiceTestSuite) TestUpdateClauseTemplate_PartialUpdate() {
	ctx := context.Background()
	existing := &domain.ClauseTemplate{
		TemplateID: "t1",
		Name:       "gastos",
		Body:       "cuerpo original",
	}

	suite.mockRepo.On("FindClauseTemplateByID", ctx, "t1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateClauseTemplate", ctx, mock.AnythingOfType("domain.ClauseTemplate")).Return(nil).Once()

	updated, err := suite.service.UpdateClauseTemplate(ctx, "t1", dto.UpdateClauseTemplateRequest{Body: "cuerpo nuevo"}, "user2")

	suite.Require().NoError(err)
	suite.Equal("gastos", updated.Name) // unchanged
	suite.Equal("cuerpo nuevo", updated.Body)
	suite.Equal("user2", updated.LastUpdatedBy)
}

func (suite *ClauseTemplateServiceTestSuite) TestGetClauseTemplateByID_EmptyID() {
	_, err := suite.service.GetClauseTemplateByID(context.Background(), "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ClauseTemplateServiceTestSuite) TestListClauseTemplates() {
	ctx := context.Background()
	expected := []domain.ClauseTemplate{
		{TemplateID: "t1", Name: "garantia"},
		{TemplateID: "t2", Name: "gastos"},
	}
	suite.mockRepo.On("ListClauseTemplates", ctx).Return(expected, nil).Once()

	templates, err := suite.service.ListClauseTemplates(ctx)

	suite.Require().NoError(err)
	suite.Len(templates, 2)
}

func (suite *ClauseTemplateServiceTestSuite) TestDeleteClauseTemplate() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteClauseTemplate", ctx, "t1").Return(nil).Once()

	err := suite.service.DeleteClauseTemplate(ctx, "t1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestClauseTemplateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClauseTemplateServiceTestSuite))
}
