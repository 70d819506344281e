package stream

import (
	"bytes"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadWriter(t *testing.T) {
	var buf bytes.Buffer
	rw := New(&buf)
	require.NoError(t, rw.WritePacket([]byte("5551234567")))
	require.NoError(t, rw.WritePacket(nil))
	require.Equal(t, []byte{10, 0, 0, 0}, buf.Bytes()[:4])

	pkt, err := rw.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, "5551234567", string(pkt))
	pkt, err = rw.ReadPacket()
	require.NoError(t, err)
	require.Empty(t, pkt)
	_, err = rw.ReadPacket()
	require.Equal(t, io.EOF, err)
}

func TestReadWriterOversized(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0xff, 0xff, 0xff, 0xff})
	_, err := New(buf).ReadPacket()
	require.Error(t, err)
}

func TestReadWriterTruncated(t *testing.T) {
	buf := bytes.NewBuffer([]byte{4, 0, 0, 0, '1', '2'})
	_, err := New(buf).ReadPacket()
	require.Equal(t, io.ErrUnexpectedEOF, err)
}

func TestReadWriterOverConn(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()
	go New(a).WritePacket([]byte("#"))
	pkt, err := New(b).ReadPacket()
	require.NoError(t, err)
	require.Equal(t, "#", string(pkt))
}
