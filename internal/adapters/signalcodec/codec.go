// Package signalcodec turns negotiation signals into short text that fits in
// a QR code or a clipboard paste, and back.
//
// Encoded form: "ms1.<payload>.<checksum>" where payload is the base64url
// (unpadded) deflate of a compact JSON document and checksum is an 8-byte
// BLAKE2b digest of the compressed bytes. A checksum mismatch is reported as
// domain.ErrSignalDecode so a partial or misread scan never reaches the mesh.
package signalcodec

import (
	"bytes"
	"compress/flate"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/meshsos/internal/domain"
	"golang.org/x/crypto/blake2b"
)

const (
	version      = "ms1"
	checksumSize = 8
	maxExpanded  = 64 << 10
)

var encoding = base64.RawURLEncoding

type wireSignal struct {
	Type    string `json:"t"`
	Payload string `json:"p"`
}

var typeCodes = map[domain.SignalType]string{
	domain.SignalOffer:  "o",
	domain.SignalAnswer: "a",
}

func Encode(signal domain.Signal) (string, error) {
	if err := signal.Validate(); err != nil {
		return "", fmt.Errorf("encode signal: %w", err)
	}

	raw, err := json.Marshal(wireSignal{Type: typeCodes[signal.Type], Payload: signal.Payload})
	if err != nil {
		return "", fmt.Errorf("marshal signal: %w", err)
	}

	var compressed bytes.Buffer
	w, err := flate.NewWriter(&compressed, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("create compressor: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return "", fmt.Errorf("compress signal: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("compress signal: %w", err)
	}

	sum, err := checksum(compressed.Bytes())
	if err != nil {
		return "", err
	}

	return strings.Join([]string{version, encoding.EncodeToString(compressed.Bytes()), encoding.EncodeToString(sum)}, "."), nil
}

// Decode accepts the encoded form and, for manual paste, the bare JSON
// document.
func Decode(text string) (domain.Signal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Signal{}, fmt.Errorf("%w: empty input", domain.ErrSignalDecode)
	}

	if strings.HasPrefix(text, "{") {
		return decodeJSON([]byte(text))
	}

	parts := strings.Split(text, ".")
	if len(parts) != 3 || parts[0] != version {
		return domain.Signal{}, fmt.Errorf("%w: unrecognised format", domain.ErrSignalDecode)
	}

	compressed, err := encoding.DecodeString(parts[1])
	if err != nil {
		return domain.Signal{}, fmt.Errorf("%w: payload: %v", domain.ErrSignalDecode, err)
	}
	gotSum, err := encoding.DecodeString(parts[2])
	if err != nil {
		return domain.Signal{}, fmt.Errorf("%w: checksum: %v", domain.ErrSignalDecode, err)
	}
	wantSum, err := checksum(compressed)
	if err != nil {
		return domain.Signal{}, err
	}
	if subtle.ConstantTimeCompare(gotSum, wantSum) != 1 {
		return domain.Signal{}, fmt.Errorf("%w: checksum mismatch", domain.ErrSignalDecode)
	}

	r := flate.NewReader(bytes.NewReader(compressed))
	defer r.Close()

	raw, err := io.ReadAll(io.LimitReader(r, maxExpanded+1))
	if err != nil {
		return domain.Signal{}, fmt.Errorf("%w: inflate: %v", domain.ErrSignalDecode, err)
	}
	if len(raw) > maxExpanded {
		return domain.Signal{}, fmt.Errorf("%w: expanded signal too large", domain.ErrSignalDecode)
	}

	return decodeJSON(raw)
}

func decodeJSON(raw []byte) (domain.Signal, error) {
	var wire wireSignal
	if err := json.Unmarshal(raw, &wire); err != nil {
		return domain.Signal{}, fmt.Errorf("%w: %v", domain.ErrSignalDecode, err)
	}

	signal := domain.Signal{Payload: wire.Payload}
	for typ, code := range typeCodes {
		if wire.Type == code || wire.Type == string(typ) {
			signal.Type = typ
		}
	}
	if err := signal.Validate(); err != nil {
		return domain.Signal{}, fmt.Errorf("%w: %v", domain.ErrSignalDecode, err)
	}

	return signal, nil
}

func checksum(data []byte) ([]byte, error) {
	h, err := blake2b.New(checksumSize, nil)
	if err != nil {
		return nil, errors.Join(domain.ErrSignalDecode, err)
	}
	_, _ = h.Write(data)
	return h.Sum(nil), nil
}
