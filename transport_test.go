package mcpeproto

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/klauspost/compress/zlib"
)

func testConfig() TransportConfig {
	return TransportConfig{
		MaxPacketLen:       1 << 20,
		MaxDecompressedLen: 1 << 21,
	}
}

// loopback returns a transport that reads back what it sends.
func loopback(threshold int) (*Transport, *bytes.Buffer) {
	var buf bytes.Buffer
	tr := NewTransport(&buf, &buf, testConfig())
	tr.CompressionThreshold = threshold
	return tr, &buf
}

func recvAll(t *testing.T, tr *Transport) []byte {
	t.Helper()
	pr, err := tr.Recv()
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	got, err := io.ReadAll(pr)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if err := pr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return got
}

func deflate(b []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	zw.Write(b)
	zw.Close()
	return buf.Bytes()
}

// forge writes a compressed-layout frame declaring dataLen around body.
func forge(w io.Writer, dataLen int32, body []byte) {
	var frame bytes.Buffer
	WriteVarInt(&frame, dataLen)
	frame.Write(body)
	WriteVarInt(w, int32(frame.Len()))
	frame.WriteTo(w)
}

func TestTransportRoundTrip(t *testing.T) {
	large := make([]byte, 1<<16)
	for i := range large {
		large[i] = byte(i)
	}

	testCases := []struct {
		desc      string
		threshold int
		payloads  [][]byte
	}{
		{desc: "Uncompressed", threshold: -1, payloads: [][]byte{[]byte("\x86\x9c\xff\xff\xff")}},
		{desc: "Uncompressed 64KiB", threshold: -1, payloads: [][]byte{large}},
		{desc: "Uncompressed sequence", threshold: -1, payloads: [][]byte{[]byte("first"), []byte("second"), []byte("third")}},
		{desc: "Compressed", threshold: 10, payloads: [][]byte{[]byte("a chat message long enough to be deflated")}},
		{desc: "Below threshold", threshold: 100, payloads: [][]byte{[]byte("short")}},
		{desc: "Compressed 64KiB", threshold: 256, payloads: [][]byte{large}},
		{
			desc:      "Mixed sequence",
			threshold: 50,
			payloads: [][]byte{
				bytes.Repeat([]byte("a"), 100),
				[]byte("tiny"),
				bytes.Repeat([]byte("c"), 150),
			},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			tr, _ := loopback(tC.threshold)
			for _, p := range tC.payloads {
				if err := tr.Send(p); err != nil {
					t.Fatalf("Send: %v", err)
				}
			}
			for i, want := range tC.payloads {
				if got := recvAll(t, tr); !bytes.Equal(got, want) {
					t.Errorf("payload[%d]: got %d bytes, want %d", i, len(got), len(want))
				}
			}
		})
	}
}

func TestTransportFrameLayout(t *testing.T) {
	tr, buf := loopback(-1)
	if err := tr.Send([]byte{0xaa, 0x14}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if want := []byte{0x02, 0xaa, 0x14}; !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("plain frame %x, want %x", buf.Bytes(), want)
	}

	buf.Reset()
	tr.CompressionThreshold = 64
	if err := tr.Send([]byte{0xaa, 0x14}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if want := []byte{0x03, 0x00, 0xaa, 0x14}; !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("uncompressed frame %x, want %x", buf.Bytes(), want)
	}
}

// TestTransportPartialRead checks that Close refuses a payload with unread
// bytes until Skip drains it.
func TestTransportPartialRead(t *testing.T) {
	for _, threshold := range []int{-1, 10} {
		tr, _ := loopback(threshold)
		payload := bytes.Repeat([]byte("partial payload "), 8)
		if err := tr.Send(payload); err != nil {
			t.Fatalf("Send: %v", err)
		}

		pr, err := tr.Recv()
		if err != nil {
			t.Fatalf("Recv: %v", err)
		}
		if pr.Remaining() != int32(len(payload)) {
			t.Errorf("Remaining: got %d, want %d", pr.Remaining(), len(payload))
		}

		head := make([]byte, 7)
		if _, err := io.ReadFull(pr, head); err != nil {
			t.Fatalf("ReadFull: %v", err)
		}
		if string(head) != "partial" {
			t.Errorf("got %q, want %q", head, "partial")
		}
		if pr.Remaining() != int32(len(payload)-7) {
			t.Errorf("Remaining after read: got %d, want %d", pr.Remaining(), len(payload)-7)
		}

		if err := pr.Close(); err != ErrNotExhausted {
			t.Errorf("threshold %d: Close got %v, want ErrNotExhausted", threshold, err)
		}

		skipped, err := pr.Skip()
		if err != nil {
			t.Fatalf("Skip: %v", err)
		}
		if skipped != int32(len(payload)-7) {
			t.Errorf("skipped %d, want %d", skipped, len(payload)-7)
		}
		if err := pr.Close(); err != nil {
			t.Errorf("threshold %d: Close after Skip: %v", threshold, err)
		}
	}
}

// TestTransportDiscard checks that Discard realigns on the next frame.
func TestTransportDiscard(t *testing.T) {
	for _, threshold := range []int{-1, 10} {
		tr, _ := loopback(threshold)
		packets := [][]byte{
			bytes.Repeat([]byte("first packet data "), 10),
			bytes.Repeat([]byte("second packet data "), 10),
		}
		for _, p := range packets {
			if err := tr.Send(p); err != nil {
				t.Fatalf("Send: %v", err)
			}
		}

		pr, err := tr.Recv()
		if err != nil {
			t.Fatalf("Recv: %v", err)
		}
		io.ReadFull(pr, make([]byte, 10))
		if _, err := pr.Discard(); err != nil {
			t.Fatalf("Discard: %v", err)
		}

		if got := recvAll(t, tr); !bytes.Equal(got, packets[1]) {
			t.Errorf("threshold %d: got %q, want %q", threshold, got, packets[1])
		}
	}
}

func TestTransportNextBeforeExhausted(t *testing.T) {
	tr, _ := loopback(-1)
	tr.Send([]byte("one"))
	tr.Send([]byte("two"))

	if _, err := tr.Recv(); err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if _, err := tr.Recv(); err != ErrNotExhausted {
		t.Errorf("second Recv: got %v, want ErrNotExhausted", err)
	}
}

func TestTransportLimits(t *testing.T) {
	t.Run("Frame too big", func(t *testing.T) {
		var buf bytes.Buffer
		tr := NewTransport(&buf, &buf, TransportConfig{MaxPacketLen: 100, MaxDecompressedLen: 200})
		tr.Send(make([]byte, 200))

		if _, err := tr.Recv(); err != ErrPacketTooBig {
			t.Errorf("Recv: got %v, want ErrPacketTooBig", err)
		}
	})

	t.Run("Declared data too big", func(t *testing.T) {
		var buf bytes.Buffer
		tr := NewTransport(&buf, &buf, TransportConfig{MaxPacketLen: 100, MaxDecompressedLen: 200})
		tr.CompressionThreshold = 0
		forge(&buf, 1000, deflate(make([]byte, 1000)))
		forge(&buf, 0, []byte("next"))

		if _, err := tr.Recv(); err != ErrPacketTooBig {
			t.Errorf("Recv: got %v, want ErrPacketTooBig", err)
		}
		if got := recvAll(t, tr); string(got) != "next" {
			t.Errorf("after oversized data got %q, want %q", got, "next")
		}
	})

	t.Run("Zero frame length", func(t *testing.T) {
		tr := NewTransport(bytes.NewReader([]byte{0x00}), io.Discard, testConfig())
		if _, err := tr.Recv(); !errors.Is(err, ErrInvalidFrame) {
			t.Errorf("Recv: got %v, want ErrInvalidFrame", err)
		}
	})

	t.Run("Negative data length", func(t *testing.T) {
		var buf bytes.Buffer
		tr := NewTransport(&buf, &buf, testConfig())
		tr.CompressionThreshold = 0
		forge(&buf, -1, nil)

		if _, err := tr.Recv(); err != ErrInvalidDataSize {
			t.Errorf("Recv: got %v, want ErrInvalidDataSize", err)
		}
	})

	t.Run("Clean end of stream", func(t *testing.T) {
		tr := NewTransport(bytes.NewReader(nil), io.Discard, testConfig())
		if _, err := tr.Recv(); err != io.EOF {
			t.Errorf("Recv: got %v, want io.EOF", err)
		}
	})
}

func TestTransportZlibIntegrity(t *testing.T) {
	payload := bytes.Repeat([]byte("compressed data "), 10)

	t.Run("Trailing data", func(t *testing.T) {
		var buf bytes.Buffer
		tr := NewTransport(&buf, &buf, testConfig())
		tr.CompressionThreshold = 10
		forge(&buf, int32(len(payload)), append(deflate(payload), "trailing"...))

		pr, err := tr.Recv()
		if err != nil {
			t.Fatalf("Recv: %v", err)
		}
		got, err := io.ReadAll(pr)
		if err != nil {
			t.Fatalf("ReadAll: %v", err)
		}
		if !bytes.Equal(got, payload) {
			t.Errorf("payload mismatch")
		}
		if err := pr.Close(); err != ErrZlibTrailing {
			t.Errorf("Close: got %v, want ErrZlibTrailing", err)
		}
	})

	t.Run("Overrun", func(t *testing.T) {
		var buf bytes.Buffer
		tr := NewTransport(&buf, &buf, testConfig())
		tr.CompressionThreshold = 10
		declared := int32(len(payload) - 50)
		forge(&buf, declared, deflate(payload))

		pr, err := tr.Recv()
		if err != nil {
			t.Fatalf("Recv: %v", err)
		}
		if _, err := io.ReadFull(pr, make([]byte, declared)); err != nil {
			t.Fatalf("ReadFull: %v", err)
		}
		if err := pr.Close(); err != ErrZlibOverrun {
			t.Errorf("Close: got %v, want ErrZlibOverrun", err)
		}
	})

	t.Run("Underrun", func(t *testing.T) {
		var buf bytes.Buffer
		tr := NewTransport(&buf, &buf, testConfig())
		tr.CompressionThreshold = 10
		declared := int32(len(payload) + 50)
		forge(&buf, declared, deflate(payload))

		pr, err := tr.Recv()
		if err != nil {
			t.Fatalf("Recv: %v", err)
		}
		if _, err := io.ReadFull(pr, make([]byte, declared)); err != ErrZlibUnderrun {
			t.Errorf("ReadFull: got %v, want ErrZlibUnderrun", err)
		}
	})
}

// TestTransportZeroConfig checks that a zero TransportConfig takes the default
// limits instead of refusing every frame.
func TestTransportZeroConfig(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTransport(&buf, &buf, TransportConfig{})
	if tr.cfg != DefaultTransportConfig() {
		t.Errorf("cfg = %+v, want %+v", tr.cfg, DefaultTransportConfig())
	}

	payload := bytes.Repeat([]byte{0xaa}, 300)
	if err := tr.Send(payload); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got := recvAll(t, tr); !bytes.Equal(got, payload) {
		t.Errorf("got %d bytes, want %d", len(got), len(payload))
	}

	tr = NewTransport(&buf, &buf, TransportConfig{MaxPacketLen: 16})
	if tr.cfg.MaxPacketLen != 16 || tr.cfg.MaxDecompressedLen != DefaultTransportConfig().MaxDecompressedLen {
		t.Errorf("partial cfg = %+v", tr.cfg)
	}
}
