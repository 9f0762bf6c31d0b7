package space

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"coworking/internal/domain"
	"coworking/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockSpaceRepository struct {
	mock.Mock
}

func (m *MockSpaceRepository) Create(ctx context.Context, s *domain.Space) error {
	args := m.Called(ctx, s)
	if args.Error(0) == nil {
		s.ID = 11
	}
	return args.Error(0)
}

func (m *MockSpaceRepository) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Space), args.Error(1)
}

func (m *MockSpaceRepository) List(ctx context.Context, filters repository.SpaceFilters) ([]domain.Space, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]domain.Space), args.Error(1)
}

func (m *MockSpaceRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(ctx context.Context, mem *domain.Member) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}

func (m *MockMemberRepository) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) List(ctx context.Context, status domain.MemberStatus) ([]domain.Member, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepository) UpdateStatus(ctx context.Context, id int64, status domain.MemberStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func newTestService() (*Service, *MockSpaceRepository, *MockMemberRepository) {
	spaces := new(MockSpaceRepository)
	members := new(MockMemberRepository)
	return NewService(spaces, members), spaces, members
}

func TestCreateSpace_DefaultsToOperationalAndAvailable(t *testing.T) {
	service, spaces, _ := newTestService()
	spaces.On("Create", mock.Anything, mock.Anything).Return(nil)

	sp, err := service.CreateSpace(context.Background(), CreateSpaceRequest{
		Name:            "Meeting Room A",
		Type:            "meeting_room",
		Capacity:        8,
		HourlyRateCents: 50000,
	})

	assert.NoError(t, err)
	assert.True(t, sp.IsAvailable)
	assert.Equal(t, domain.SpaceOperational, sp.MaintenanceStatus)
}

func TestCreateMember_InvalidPayloadCarriesFields(t *testing.T) {
	service, _, members := newTestService()

	_, err := service.CreateMember(context.Background(), CreateMemberRequest{
		Name:  "Dana",
		Email: "not-an-email",
	})

	assert.ErrorIs(t, err, ErrInvalidPayload)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "Email")
	members.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetSpace_NotFound(t *testing.T) {
	service, spaces, _ := newTestService()
	spaces.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.GetSpace(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWriteError_ValidationDetailsInBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h := NewHandler(nil)
	h.writeError(c, &ValidationError{Fields: map[string]string{"Email": "email"}})

	assert.Equal(t, 400, w.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "email", body.Error.Details["Email"])
}

func TestValidationErrorUnwrapsToSentinel(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"Name": "required"}}
	assert.True(t, errors.Is(err, ErrInvalidPayload))
}
