package runtime

import (
	"fmt"
	"io"
	"net"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// TcpClient drives strictly alternating request/response exchanges on
// one connection. Responses are framed by the header length field, so
// concurrent use of one client would interleave frames; callers keep a
// client on a single control flow.
type TcpClient struct {
	Tunnel net.Conn
}

func (tc *TcpClient) Close() {
	_ = tc.Tunnel.Close()
}

// Transact writes one encoded request and blocks until the full
// response frame has arrived. The transport may deliver the payload in
// partial chunks; reading accumulates until the byte count announced by
// the header is reached. No deadline is set: a poll either completes or
// the connection fails.
func (tc *TcpClient) Transact(request *ReadRequest) (*Response, error) {
	message := request.Encode()
	klog.V(5).InfoS("Request frame", "functionCode", request.FunctionCode, "base", request.BaseRegister,
		"count", request.RegisterCount, "bytes", fmt.Sprintf("% x", message))

	if _, err := tc.Tunnel.Write(message); err != nil {
		return nil, errors.Wrap(ErrBadConn, err.Error())
	}

	header := make([]byte, FrameHeaderSize)
	if _, err := io.ReadFull(tc.Tunnel, header); err != nil {
		return nil, errors.Wrap(ErrBadConn, err.Error())
	}
	h, err := DecodeFrameHeader(header)
	if err != nil {
		return nil, err
	}
	klog.V(5).InfoS("Response header", "transactionId", h.TransactionId, "protocolId", h.ProtocolId,
		"length", h.Length, "unitId", h.UnitId, "frameFunction", h.FrameFunction)

	if h.Length < 2 {
		return nil, errors.Wrapf(ErrFrame, "header length %d too small", h.Length)
	}
	// the unit id and frame function bytes counted by the length field
	// were already consumed with the header
	payload := make([]byte, h.Length-2)
	if _, err := io.ReadFull(tc.Tunnel, payload); err != nil {
		return nil, errors.Wrap(ErrBadConn, err.Error())
	}
	klog.V(5).InfoS("Response payload", "length", len(payload), "bytes", fmt.Sprintf("% x", payload))

	return DecodeResponse(payload)
}
