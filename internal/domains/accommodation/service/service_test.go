package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/infras/otel/mocks"
	accommodationMocks "innkeep/internal/domains/accommodation/mocks"
	accommodationModel "innkeep/internal/domains/accommodation/model"
	"innkeep/internal/domains/accommodation/service"
	roomMocks "innkeep/internal/domains/room/mocks"
	roomModel "innkeep/internal/domains/room/model"
	"innkeep/shared/failure"
)

func TestResolver_ResolveAccommodationID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccommodations := accommodationMocks.NewMockAccommodation(ctrl)
	mockRooms := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	resolver := service.New(mockAccommodations, mockRooms, mockOtel)

	tests := []struct {
		name         string
		setupMock    func()
		wantErr      bool
		wantNotFound bool
		wantID       int64
	}{
		{
			name: "existing accommodation",
			setupMock: func() {
				mockAccommodations.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(accommodationModel.Accommodation{ID: 1, Name: "Sunrise Inn"}, nil)
			},
			wantID: 1,
		},
		{
			name: "unknown accommodation is a not-found outcome",
			setupMock: func() {
				mockAccommodations.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(accommodationModel.Accommodation{}, nil)
			},
			wantErr:      true,
			wantNotFound: true,
		},
		{
			name: "lookup failure is an operational fault",
			setupMock: func() {
				mockAccommodations.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(accommodationModel.Accommodation{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			id, err := resolver.ResolveAccommodationID(context.Background(), "Sunrise Inn")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantNotFound, failure.IsNotFound(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestResolver_ResolveRoomID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccommodations := accommodationMocks.NewMockAccommodation(ctrl)
	mockRooms := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	resolver := service.New(mockAccommodations, mockRooms, mockOtel)

	tests := []struct {
		name                string
		setupMock           func()
		wantErr             bool
		wantNotFound        bool
		wantRoomID          int64
		wantAccommodationID int64
	}{
		{
			name: "existing room",
			setupMock: func() {
				mockAccommodations.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(accommodationModel.Accommodation{ID: 1, Name: "Sunrise Inn"}, nil)

				mockRooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{ID: 7, Name: "Suite A", AccommodationID: 1}, nil)
			},
			wantRoomID:          7,
			wantAccommodationID: 1,
		},
		{
			name: "accommodation not found short-circuits",
			setupMock: func() {
				mockAccommodations.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(accommodationModel.Accommodation{}, nil)
			},
			wantErr:      true,
			wantNotFound: true,
		},
		{
			name: "unknown room is a not-found outcome",
			setupMock: func() {
				mockAccommodations.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(accommodationModel.Accommodation{ID: 1, Name: "Sunrise Inn"}, nil)

				mockRooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:      true,
			wantNotFound: true,
		},
		{
			name: "room lookup failure is an operational fault",
			setupMock: func() {
				mockAccommodations.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(accommodationModel.Accommodation{ID: 1, Name: "Sunrise Inn"}, nil)

				mockRooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			roomID, accommodationID, err := resolver.ResolveRoomID(context.Background(), "Suite A", "Sunrise Inn")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantNotFound, failure.IsNotFound(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantRoomID, roomID)
				assert.Equal(t, tt.wantAccommodationID, accommodationID)
			}
		})
	}
}
