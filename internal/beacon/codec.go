package beacon

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-fakts/models"
)

// EncodeFrame serializes a beacon into the broadcast wire form
// <magicPhrase><JSON>.
func EncodeFrame(magicPhrase string, b models.Beacon) ([]byte, error) {
	payload, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("encode beacon frame: %w", err)
	}

	frame := make([]byte, 0, len(magicPhrase)+len(payload))
	frame = append(frame, magicPhrase...)
	frame = append(frame, payload...)

	return frame, nil
}

// DecodeFrame parses one datagram into a beacon.
//
// Returns ErrFrame when the datagram does not start with magicPhrase
// (unrelated broadcast traffic) and ErrDecode when the datagram is not
// UTF-8, its JSON payload is invalid, or the URL is missing.
func DecodeFrame(magicPhrase string, datagram []byte) (models.Beacon, error) {
	if !utf8.Valid(datagram) {
		return models.Beacon{}, fmt.Errorf("%w: not valid utf-8", ErrDecode)
	}

	text := string(datagram)
	if !strings.HasPrefix(text, magicPhrase) {
		return models.Beacon{}, ErrFrame
	}

	var b models.Beacon
	if err := json.Unmarshal([]byte(text[len(magicPhrase):]), &b); err != nil {
		return models.Beacon{}, fmt.Errorf("%w: %s", ErrDecode, err)
	}

	if b.URL == "" {
		return models.Beacon{}, fmt.Errorf("%w: beacon without url", ErrDecode)
	}

	return b, nil
}
