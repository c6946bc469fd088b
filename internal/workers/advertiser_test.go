package workers

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fakts/internal/beacon"
	"github.com/MKhiriev/go-fakts/internal/logger"
	"github.com/MKhiriev/go-fakts/models"
)

func TestAdvertiser_BroadcastsDecodableFrames(t *testing.T) {
	// receive on an ephemeral loopback port instead of the broadcast address
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	defer conn.Close()

	port := conn.LocalAddr().(*net.UDPAddr).Port
	binding := models.ListenBinding{
		Port:        port,
		MagicPhrase: models.DefaultMagicPhrase,
	}

	a := NewAdvertiser(binding, "http://config.local:8000", 10*time.Millisecond, logger.Nop())
	a.target = "127.0.0.1"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.Run(ctx)
		close(done)
	}()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	buf := make([]byte, 8192)
	n, _, err := conn.ReadFromUDP(buf)
	require.NoError(t, err)

	b, err := beacon.DecodeFrame(models.DefaultMagicPhrase, buf[:n])
	require.NoError(t, err)
	assert.Equal(t, "http://config.local:8000", b.URL)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("advertiser did not stop after context cancellation")
	}
}

func TestAdvertiser_StopsWithoutSocket(t *testing.T) {
	// port 0 dials fine but the encode step runs first; a cancelled context
	// must still end the run promptly
	binding := models.DefaultListenBinding()
	a := NewAdvertiser(binding, "http://config.local:8000", time.Hour, logger.Nop())
	a.target = "127.0.0.1"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		a.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("advertiser did not stop with cancelled context")
	}
}
