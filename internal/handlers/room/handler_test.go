package room_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"innkeep/infras/otel/mocks"
	"innkeep/internal/domains/room/model/dto"
	serviceMocks "innkeep/internal/domains/room/service/mocks"
	"innkeep/internal/handlers/room"
	"innkeep/shared/failure"
)

func setupRouter(t *testing.T) (*serviceMocks.MockRoom, *chi.Mux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := serviceMocks.NewMockRoom(ctrl)
	handler := room.New(mockService, mocks.NewOtel())

	mux := chi.NewRouter()
	mux.Route("/v1", func(routerGroup chi.Router) {
		handler.Router(routerGroup)
	})

	return mockService, mux
}

func doRequest(t *testing.T, mux *chi.Mux, path string, body any) map[string]any {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))

	return decoded
}

func TestRoomHandler_ListRooms(t *testing.T) {
	mockService, mux := setupRouter(t)

	t.Run("returns rooms on success", func(t *testing.T) {
		mockService.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return([]dto.RoomResponse{{ID: 7, Name: "Suite A"}}, nil)

		body := doRequest(t, mux, "/v1/rooms/list", dto.ListRoomsRequest{AccommodationName: "Sunrise Inn"})

		assert.Equal(t, true, body["success"])
		assert.Len(t, body["rooms"], 1)
	})

	t.Run("unknown accommodation collapses to success false", func(t *testing.T) {
		mockService.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(nil, failure.NotFound("accommodation not found"))

		body := doRequest(t, mux, "/v1/rooms/list", dto.ListRoomsRequest{AccommodationName: "Nowhere"})

		assert.Equal(t, false, body["success"])
		assert.NotContains(t, body, "rooms")
		assert.NotContains(t, body, "error")
	})

	t.Run("missing accommodation name fails validation", func(t *testing.T) {
		body := doRequest(t, mux, "/v1/rooms/list", dto.ListRoomsRequest{})

		assert.Equal(t, false, body["success"])
	})
}

func TestRoomHandler_AddRoom(t *testing.T) {
	mockService, mux := setupRouter(t)

	req := dto.CreateRoomRequest{
		Name:              "Suite A",
		Capacity:          4,
		Price:             150,
		AccommodationName: "Sunrise Inn",
	}

	t.Run("created room yields success", func(t *testing.T) {
		mockService.EXPECT().
			Create(gomock.Any(), req).
			Return(dto.RoomResponse{ID: 7, Name: "Suite A"}, nil)

		body := doRequest(t, mux, "/v1/rooms/add", req)

		assert.Equal(t, true, body["success"])
	})

	t.Run("duplicate name collapses to success false", func(t *testing.T) {
		mockService.EXPECT().
			Create(gomock.Any(), req).
			Return(dto.RoomResponse{}, failure.Conflict("room name already used in this accommodation"))

		body := doRequest(t, mux, "/v1/rooms/add", req)

		assert.Equal(t, false, body["success"])
	})

	t.Run("service fault collapses to success false", func(t *testing.T) {
		mockService.EXPECT().
			Create(gomock.Any(), req).
			Return(dto.RoomResponse{}, errors.New("database error"))

		body := doRequest(t, mux, "/v1/rooms/add", req)

		assert.Equal(t, false, body["success"])
	})
}

func TestRoomHandler_EditRoom(t *testing.T) {
	mockService, mux := setupRouter(t)

	req := dto.UpdateRoomRequest{
		Name:              "Suite A",
		NewName:           "Suite B",
		NewCapacity:       2,
		NewPrice:          120,
		AccommodationName: "Sunrise Inn",
	}

	t.Run("updated room yields success", func(t *testing.T) {
		mockService.EXPECT().
			Update(gomock.Any(), req).
			Return(nil)

		body := doRequest(t, mux, "/v1/rooms/edit", req)

		assert.Equal(t, true, body["success"])
	})

	t.Run("name collision collapses to success false", func(t *testing.T) {
		mockService.EXPECT().
			Update(gomock.Any(), req).
			Return(failure.Conflict("room name already used in this accommodation"))

		body := doRequest(t, mux, "/v1/rooms/edit", req)

		assert.Equal(t, false, body["success"])
	})
}

func TestRoomHandler_DeleteRoom(t *testing.T) {
	mockService, mux := setupRouter(t)

	req := dto.DeleteRoomRequest{Name: "Suite A", AccommodationName: "Sunrise Inn"}

	t.Run("deleted room yields success", func(t *testing.T) {
		mockService.EXPECT().
			Delete(gomock.Any(), req).
			Return(nil)

		body := doRequest(t, mux, "/v1/rooms/delete", req)

		assert.Equal(t, true, body["success"])
	})

	t.Run("nonexistent room collapses to success false", func(t *testing.T) {
		mockService.EXPECT().
			Delete(gomock.Any(), req).
			Return(failure.NotFound("room not found"))

		body := doRequest(t, mux, "/v1/rooms/delete", req)

		assert.Equal(t, false, body["success"])
	})
}

func TestRoomHandler_ArchiveRoom(t *testing.T) {
	mockService, mux := setupRouter(t)

	archived := true
	req := dto.ArchiveRoomRequest{Name: "Suite A", IsArchived: &archived, AccommodationName: "Sunrise Inn"}

	t.Run("archived room yields success", func(t *testing.T) {
		mockService.EXPECT().
			Archive(gomock.Any(), req).
			Return(nil)

		body := doRequest(t, mux, "/v1/rooms/archive", req)

		assert.Equal(t, true, body["success"])
	})

	t.Run("missing archived flag fails validation", func(t *testing.T) {
		body := doRequest(t, mux, "/v1/rooms/archive", dto.ArchiveRoomRequest{
			Name:              "Suite A",
			AccommodationName: "Sunrise Inn",
		})

		assert.Equal(t, false, body["success"])
	})
}

func TestRoomHandler_ViewRoom(t *testing.T) {
	mockService, mux := setupRouter(t)

	req := dto.ViewRoomRequest{RoomName: "Suite A", AccommodationName: "Sunrise Inn"}

	t.Run("returns room on success", func(t *testing.T) {
		mockService.EXPECT().
			View(gomock.Any(), req).
			Return(dto.RoomResponse{ID: 7, Name: "Suite A"}, nil)

		body := doRequest(t, mux, "/v1/rooms/view", req)

		assert.Equal(t, true, body["success"])
		require.Contains(t, body, "room")

		roomBody, ok := body["room"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Suite A", roomBody["name"])
	})

	t.Run("unknown room collapses to success false", func(t *testing.T) {
		mockService.EXPECT().
			View(gomock.Any(), req).
			Return(dto.RoomResponse{}, failure.NotFound("room not found"))

		body := doRequest(t, mux, "/v1/rooms/view", req)

		assert.Equal(t, false, body["success"])
		assert.NotContains(t, body, "room")
	})
}
