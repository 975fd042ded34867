package nats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStart_PublishAndRead(t *testing.T) {
	bus, err := Start(t.TempDir())
	require.NoError(t, err)
	defer func() { _ = bus.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := SetupStream(ctx, bus.JetStream())
	require.NoError(t, err)

	msgs, err := ReadAll(ctx, stream)
	require.NoError(t, err)
	require.Empty(t, msgs)

	for _, zip := range []string{"94107", "10001"} {
		_, err := bus.JetStream().Publish(ctx, SubjectForOrder(zip, EventSubmitted), []byte(zip))
		require.NoError(t, err)
	}

	msgs, err = ReadAll(ctx, stream)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, "macroplate.orders.94107.submitted", msgs[0].Subject())
	require.Equal(t, "10001", string(msgs[1].Data()))
}

func TestStart_TempStoreRemoved(t *testing.T) {
	bus, err := Start("")
	require.NoError(t, err)
	dir := bus.storeDir
	require.DirExists(t, dir)

	require.NoError(t, bus.Close())
	require.NoDirExists(t, dir)
}

func TestSubjectForOrder(t *testing.T) {
	require.Equal(t, "macroplate.orders.unknown.submitted", SubjectForOrder("", EventSubmitted))
}
