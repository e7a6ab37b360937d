package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/sgde-edu/sgde-api/internal/dto"
	"github.com/sgde-edu/sgde-api/internal/repository"
	"github.com/sgde-edu/sgde-api/internal/store"
)

func newRoomFixture(t *testing.T) RoomService {
	t.Helper()
	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewRoomService(repository.NewRoomRepository(store.New()), validate, zerolog.Nop())
}

func TestRoomCreateDerivesCapacity(t *testing.T) {
	svc := newRoomFixture(t)

	resp, err := svc.Create(context.Background(), dto.RoomCreateRequest{
		Name:      "Sala 01",
		Number:    1,
		FloorArea: 24.0,
	})
	require.NoError(t, err)

	require.Equal(t, 1, resp.ID)
	require.Equal(t, 20, resp.Capacity)
}

func TestRoomCreateAcceptsCapacityOverride(t *testing.T) {
	svc := newRoomFixture(t)

	override := 15
	resp, err := svc.Create(context.Background(), dto.RoomCreateRequest{
		Name:      "Laboratório",
		FloorArea: 24.0,
		Capacity:  &override,
	})
	require.NoError(t, err)
	require.Equal(t, 15, resp.Capacity)
}

func TestRoomCreateRequiresNameAndArea(t *testing.T) {
	svc := newRoomFixture(t)

	var validationErrors validator.ValidationErrors

	_, err := svc.Create(context.Background(), dto.RoomCreateRequest{FloorArea: 10})
	require.ErrorAs(t, err, &validationErrors)

	_, err = svc.Create(context.Background(), dto.RoomCreateRequest{Name: "Sala", FloorArea: 0})
	require.ErrorAs(t, err, &validationErrors)
}

func TestRoomCreateKeepsAttachmentBaseName(t *testing.T) {
	svc := newRoomFixture(t)

	resp, err := svc.Create(context.Background(), dto.RoomCreateRequest{
		Name:           "Sala 02",
		FloorArea:      18.0,
		AttachmentName: "uploads/fotos/planta.png",
	})
	require.NoError(t, err)
	require.Equal(t, "planta.png", resp.AttachmentName)
}

func TestRoomSuggestCapacity(t *testing.T) {
	svc := newRoomFixture(t)

	require.Equal(t, 20, svc.SuggestCapacity(24.0).SuggestedCapacity)
	require.Equal(t, 0, svc.SuggestCapacity(0).SuggestedCapacity)
	require.Equal(t, 0, svc.SuggestCapacity(-3).SuggestedCapacity)
}

func TestRoomListKeepsInsertionOrder(t *testing.T) {
	svc := newRoomFixture(t)

	for _, name := range []string{"Sala 01", "Sala 02", "Biblioteca"} {
		_, err := svc.Create(context.Background(), dto.RoomCreateRequest{Name: name, FloorArea: 12.0})
		require.NoError(t, err)
	}

	rooms, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	require.Equal(t, "Sala 01", rooms[0].Name)
	require.Equal(t, "Biblioteca", rooms[2].Name)

	again, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, rooms, again)
}
