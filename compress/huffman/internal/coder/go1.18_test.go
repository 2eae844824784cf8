//go:build go1.18
// +build go1.18

package coder

import (
	"bytes"
	"io"
	"testing"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{65, 65, 65, 66, 66, 67})
	f.Add([]byte{})
	f.Add(bytes.Repeat([]byte{42}, 64))
	f.Fuzz(func(t *testing.T, source []byte) {
		c := NewCoder()
		buf := bytes.NewBuffer(nil)
		w := NewWriter(buf, c)
		if _, err := w.Write(source); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(NewReader(buf, c))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, source) {
			t.Fatal()
		}
	})
}
