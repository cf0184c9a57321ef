package service

import (
	"context"
	"testing"

	"cpu-catalog-be/internal/dto"
	"cpu-catalog-be/internal/pkg/logger"
	"cpu-catalog-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCpuService(t *testing.T) {
	ctx := context.Background()
	factory := newFactory(t)
	pub := &recordingPublisher{}
	sockets := NewSocketService(factory, &recordingPublisher{}, logger.NewNopLogger())
	svc := NewCpuService(factory, pub, logger.NewNopLogger())

	am5, err := sockets.Create(ctx, &dto.CreateSocketRequest{Brand: "AMD", Chipset: "AM5"})
	require.NoError(t, err)
	am4, err := sockets.Create(ctx, &dto.CreateSocketRequest{Brand: "AMD", Chipset: "AM4"})
	require.NoError(t, err)

	var ryzen *dto.CpuResponse

	t.Run("Create expands the socket", func(t *testing.T) {
		ryzen, err = svc.Create(ctx, &dto.CpuRequest{
			Brand:  "AMD",
			Model:  "Ryzen 7",
			Socket: &dto.SocketReference{Id: am5.Id},
		})
		require.NoError(t, err)
		assert.NotZero(t, ryzen.Id)
		assert.Equal(t, am5, ryzen.Socket)
	})

	t.Run("Create with unknown socket fails", func(t *testing.T) {
		_, err := svc.Create(ctx, &dto.CpuRequest{
			Brand:  "AMD",
			Model:  "Ghost",
			Socket: &dto.SocketReference{Id: 999},
		})
		assert.Error(t, err)
	})

	t.Run("Show round trips", func(t *testing.T) {
		got, err := svc.Show(ctx, ryzen.Id)
		require.NoError(t, err)
		assert.Equal(t, ryzen, got)
	})

	t.Run("Update replaces every field and is idempotent", func(t *testing.T) {
		req := &dto.CpuRequest{Id: 12345, Brand: "AMD", Model: "Ryzen 9", Socket: &dto.SocketReference{Id: am4.Id}}

		first, err := svc.Update(ctx, ryzen.Id, req)
		require.NoError(t, err)
		second, err := svc.Update(ctx, ryzen.Id, req)
		require.NoError(t, err)

		assert.Equal(t, ryzen.Id, first.Id)
		assert.Equal(t, "Ryzen 9", first.Model)
		assert.Equal(t, am4, first.Socket)
		assert.Equal(t, first, second)
	})

	t.Run("Update with omitted fields writes empty values", func(t *testing.T) {
		got, err := svc.Update(ctx, ryzen.Id, &dto.CpuRequest{Model: "Ryzen 9 7950X"})
		require.NoError(t, err)
		assert.Equal(t, "", got.Brand)
		assert.Nil(t, got.Socket)

		stored, err := svc.Show(ctx, ryzen.Id)
		require.NoError(t, err)
		assert.Equal(t, got, stored)
	})

	t.Run("Update on unknown id is a silent miss", func(t *testing.T) {
		before := len(pub.types())
		got, err := svc.Update(ctx, 4040, &dto.CpuRequest{Brand: "X"})
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.Len(t, pub.types(), before)

		missing, err := svc.Show(ctx, 4040)
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("Delete then Show misses and delete again succeeds", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, ryzen.Id))
		got, err := svc.Show(ctx, ryzen.Id)
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, svc.Delete(ctx, ryzen.Id))

		s, err := sockets.Show(ctx, am4.Id)
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("Update after Delete stays deleted", func(t *testing.T) {
		before := len(pub.types())
		got, err := svc.Update(ctx, ryzen.Id, &dto.CpuRequest{Brand: "AMD", Model: "R9"})
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.Len(t, pub.types(), before)

		shown, err := svc.Show(ctx, ryzen.Id)
		assert.NoError(t, err)
		assert.Nil(t, shown)
	})

	t.Run("GetAll", func(t *testing.T) {
		_, err := svc.Create(ctx, &dto.CpuRequest{Brand: "AMD", Model: "Ryzen 5 5600X", Socket: &dto.SocketReference{Id: am4.Id}})
		require.NoError(t, err)
		_, err = svc.Create(ctx, &dto.CpuRequest{Brand: "AMD", Model: "Ryzen 5 7600"})
		require.NoError(t, err)

		res, err := svc.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "AM4", res[0].Socket.Chipset)
		assert.Nil(t, res[1].Socket)
	})

	assert.Equal(t, []string{
		events.CpuCreated,
		events.CpuUpdated,
		events.CpuUpdated,
		events.CpuUpdated,
		events.CpuDeleted,
		events.CpuDeleted,
		events.CpuCreated,
		events.CpuCreated,
	}, pub.types())
}
