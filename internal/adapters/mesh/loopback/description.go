package loopback

import (
	"fmt"
	"strings"

	"github.com/bnema/meshsos/internal/domain"
)

// description is the session description carried inside a signal payload.
// It is SDP shaped so that payload sizes are realistic for QR transport.
type description struct {
	SessionID string
	NodeID    string
	Role      domain.SignalType
}

func (d description) String() string {
	return strings.Join([]string{
		"v=0",
		fmt.Sprintf("o=%s %s 2 IN IP4 127.0.0.1", d.NodeID, d.SessionID),
		"s=meshsos",
		"t=0 0",
		"m=application 9 UDP/DTLS/SCTP webrtc-datachannel",
		"c=IN IP4 0.0.0.0",
		"a=setup:" + setupFor(d.Role),
		"a=sctp-port:5000",
	}, "\r\n")
}

func setupFor(role domain.SignalType) string {
	if role == domain.SignalAnswer {
		return "active"
	}
	return "actpass"
}

func parseDescription(signal domain.Signal) (description, error) {
	for _, line := range strings.Split(signal.Payload, "\r\n") {
		if !strings.HasPrefix(line, "o=") {
			continue
		}
		fields := strings.Fields(strings.TrimPrefix(line, "o="))
		if len(fields) < 2 {
			break
		}
		return description{NodeID: fields[0], SessionID: fields[1], Role: signal.Type}, nil
	}

	return description{}, fmt.Errorf("session description has no origin line")
}
