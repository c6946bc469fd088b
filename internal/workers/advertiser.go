package workers

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/MKhiriev/go-fakts/internal/beacon"
	"github.com/MKhiriev/go-fakts/internal/logger"
	"github.com/MKhiriev/go-fakts/models"
)

// broadcastAddress is the default target for beacon datagrams.
const broadcastAddress = "255.255.255.255"

// Advertiser periodically broadcasts a beacon frame announcing the
// endpoint's base URL so clients on the local network can discover it.
type Advertiser struct {
	binding  models.ListenBinding
	url      string
	interval time.Duration
	target   string
	logger   *logger.Logger
}

// NewAdvertiser builds a beacon advertiser for the given URL. The binding
// supplies the UDP port and magic phrase of the broadcast frames.
func NewAdvertiser(binding models.ListenBinding, url string, interval time.Duration, logger *logger.Logger) *Advertiser {
	return &Advertiser{
		binding:  binding,
		url:      url,
		interval: interval,
		target:   broadcastAddress,
		logger:   logger,
	}
}

// Run implements Worker. It broadcasts one frame per interval until ctx is
// cancelled. Send failures are logged and the loop keeps going; transient
// network trouble must not kill the advertiser.
func (a *Advertiser) Run(ctx context.Context) {
	frame, err := beacon.EncodeFrame(a.binding.MagicPhrase, models.Beacon{URL: a.url})
	if err != nil {
		a.logger.Err(err).Msg("beacon frame encoding failed, advertiser not started")
		return
	}

	addr := net.JoinHostPort(a.target, strconv.Itoa(a.binding.Port))
	conn, err := net.Dial("udp", addr)
	if err != nil {
		a.logger.Err(err).Str("addr", addr).Msg("beacon socket dial failed, advertiser not started")
		return
	}
	defer conn.Close()

	a.logger.Info().
		Str("url", a.url).
		Str("addr", addr).
		Dur("interval", a.interval).
		Msg("beacon advertiser started")

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.logger.Info().Msg("beacon advertiser stopped")
			return
		case <-ticker.C:
			if _, err := conn.Write(frame); err != nil {
				a.logger.Err(err).Msg("beacon send failed")
			}
		}
	}
}
