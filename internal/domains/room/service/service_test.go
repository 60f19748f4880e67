package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/infras/otel/mocks"
	resolverMocks "innkeep/internal/domains/accommodation/service/mocks"
	roomMocks "innkeep/internal/domains/room/mocks"
	"innkeep/internal/domains/room/model"
	"innkeep/internal/domains/room/model/dto"
	"innkeep/internal/domains/room/service"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockResolver := resolverMocks.NewMockResolver(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockResolver, mockOtel)

	req := dto.CreateRoomRequest{
		Name:              "Suite A",
		Capacity:          4,
		Price:             150,
		AccommodationName: "Sunrise Inn",
	}

	tests := []struct {
		name         string
		setupMock    func()
		wantErr      bool
		wantNotFound bool
		wantConflict bool
		wantID       int64
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveAccommodationID(gomock.Any(), "Sunrise Inn").
					Return(int64(1), nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertRoom(gomock.Any(), gomock.Any()).
					Return(int64(7), nil)
			},
			wantID: 7,
		},
		{
			name: "unknown accommodation",
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveAccommodationID(gomock.Any(), "Sunrise Inn").
					Return(int64(0), failure.NotFound("accommodation not found"))
			},
			wantErr:      true,
			wantNotFound: true,
		},
		{
			name: "duplicate name rejected",
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveAccommodationID(gomock.Any(), "Sunrise Inn").
					Return(int64(1), nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:      true,
			wantConflict: true,
		},
		{
			name: "insert error",
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveAccommodationID(gomock.Any(), "Sunrise Inn").
					Return(int64(1), nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertRoom(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			room, err := svc.Create(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantNotFound, failure.IsNotFound(err))
				assert.Equal(t, tt.wantConflict, failure.IsConflict(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, room.ID)
				assert.Equal(t, req.Name, room.Name)
			}
		})
	}
}

func TestRoomService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockResolver := resolverMocks.NewMockResolver(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockResolver, mockOtel)

	req := dto.ListRoomsRequest{AccommodationName: "Sunrise Inn"}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "successful listing",
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveAccommodationID(gomock.Any(), "Sunrise Inn").
					Return(int64(1), nil)

				rooms := []model.Room{
					{
						ID:              7,
						Name:            "Suite A",
						Capacity:        4,
						Price:           150,
						AccommodationID: 1,
						Metadata: gModel.Metadata{
							CreatedAt:  timezone.Now(),
							ModifiedAt: timezone.Now(),
						},
					},
				}

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any()).
					Return(rooms, nil)
			},
			wantLen: 1,
		},
		{
			name: "unknown accommodation",
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveAccommodationID(gomock.Any(), "Sunrise Inn").
					Return(int64(0), failure.NotFound("accommodation not found"))
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveAccommodationID(gomock.Any(), "Sunrise Inn").
					Return(int64(1), nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			rooms, err := svc.List(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, rooms, tt.wantLen)
			}
		})
	}
}

func TestRoomService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockResolver := resolverMocks.NewMockResolver(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockResolver, mockOtel)

	req := dto.UpdateRoomRequest{
		Name:              "Suite A",
		NewName:           "Suite B",
		NewCapacity:       2,
		NewPrice:          120,
		AccommodationName: "Sunrise Inn",
	}

	tests := []struct {
		name         string
		req          dto.UpdateRoomRequest
		setupMock    func()
		wantErr      bool
		wantNotFound bool
		wantConflict bool
	}{
		{
			name: "successful update",
			req:  req,
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveRoomID(gomock.Any(), "Suite A", "Sunrise Inn").
					Return(int64(7), int64(1), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)

				mockRepo.EXPECT().
					UpdateRoom(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "room not found",
			req:  req,
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveRoomID(gomock.Any(), "Suite A", "Sunrise Inn").
					Return(int64(0), int64(0), failure.NotFound("room not found"))
			},
			wantErr:      true,
			wantNotFound: true,
		},
		{
			name: "rename collides with another room",
			req:  req,
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveRoomID(gomock.Any(), "Suite A", "Sunrise Inn").
					Return(int64(7), int64(1), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: 9, Name: "Suite B", AccommodationID: 1}, nil)
			},
			wantErr:      true,
			wantConflict: true,
		},
		{
			name: "renaming to the same name skips the collision check",
			req: dto.UpdateRoomRequest{
				Name:              "Suite A",
				NewName:           "Suite A",
				NewCapacity:       2,
				NewPrice:          120,
				AccommodationName: "Sunrise Inn",
			},
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveRoomID(gomock.Any(), "Suite A", "Sunrise Inn").
					Return(int64(7), int64(1), nil)

				mockRepo.EXPECT().
					UpdateRoom(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "price of zero is written",
			req: dto.UpdateRoomRequest{
				Name:              "Suite A",
				NewName:           "Suite A",
				NewCapacity:       2,
				NewPrice:          0,
				AccommodationName: "Sunrise Inn",
			},
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveRoomID(gomock.Any(), "Suite A", "Sunrise Inn").
					Return(int64(7), int64(1), nil)

				mockRepo.EXPECT().
					UpdateRoom(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "Suite A", fields[model.FieldName])
						assert.Equal(t, 2, fields[model.FieldCapacity])
						assert.Equal(t, float64(0), fields[model.FieldPrice])

						return nil
					})
			},
		},
		{
			name: "update error",
			req:  req,
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveRoomID(gomock.Any(), "Suite A", "Sunrise Inn").
					Return(int64(7), int64(1), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)

				mockRepo.EXPECT().
					UpdateRoom(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantNotFound, failure.IsNotFound(err))
				assert.Equal(t, tt.wantConflict, failure.IsConflict(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockResolver := resolverMocks.NewMockResolver(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockResolver, mockOtel)

	req := dto.DeleteRoomRequest{Name: "Suite A", AccommodationName: "Sunrise Inn"}

	tests := []struct {
		name         string
		setupMock    func()
		wantErr      bool
		wantNotFound bool
	}{
		{
			name: "successful deletion",
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveRoomID(gomock.Any(), "Suite A", "Sunrise Inn").
					Return(int64(7), int64(1), nil)

				mockRepo.EXPECT().
					DeleteRoom(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "nonexistent room",
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveRoomID(gomock.Any(), "Suite A", "Sunrise Inn").
					Return(int64(0), int64(0), failure.NotFound("room not found"))
			},
			wantErr:      true,
			wantNotFound: true,
		},
		{
			name: "delete error",
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveRoomID(gomock.Any(), "Suite A", "Sunrise Inn").
					Return(int64(7), int64(1), nil)

				mockRepo.EXPECT().
					DeleteRoom(gomock.Any(), gomock.Any()).
					Return(errors.New("delete error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantNotFound, failure.IsNotFound(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Archive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockResolver := resolverMocks.NewMockResolver(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockResolver, mockOtel)

	archived := true
	req := dto.ArchiveRoomRequest{Name: "Suite A", IsArchived: &archived, AccommodationName: "Sunrise Inn"}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful archive",
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveRoomID(gomock.Any(), "Suite A", "Sunrise Inn").
					Return(int64(7), int64(1), nil)

				mockRepo.EXPECT().
					SetArchived(gomock.Any(), int64(7), true).
					Return(nil)
			},
		},
		{
			name: "nonexistent room",
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveRoomID(gomock.Any(), "Suite A", "Sunrise Inn").
					Return(int64(0), int64(0), failure.NotFound("room not found"))
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveRoomID(gomock.Any(), "Suite A", "Sunrise Inn").
					Return(int64(7), int64(1), nil)

				mockRepo.EXPECT().
					SetArchived(gomock.Any(), int64(7), true).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Archive(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_View(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockResolver := resolverMocks.NewMockResolver(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockResolver, mockOtel)

	req := dto.ViewRoomRequest{RoomName: "Suite A", AccommodationName: "Sunrise Inn"}

	tests := []struct {
		name         string
		setupMock    func()
		wantErr      bool
		wantNotFound bool
		wantID       int64
	}{
		{
			name: "existing room",
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveAccommodationID(gomock.Any(), "Sunrise Inn").
					Return(int64(1), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: 7, Name: "Suite A", AccommodationID: 1}, nil)
			},
			wantID: 7,
		},
		{
			name: "unknown room",
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveAccommodationID(gomock.Any(), "Sunrise Inn").
					Return(int64(1), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:      true,
			wantNotFound: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockResolver.EXPECT().
					ResolveAccommodationID(gomock.Any(), "Sunrise Inn").
					Return(int64(1), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			room, err := svc.View(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantNotFound, failure.IsNotFound(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, room.ID)
			}
		})
	}
}
