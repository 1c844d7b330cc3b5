package types

import (
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
)

// Bytes is a byte slice that marshals to and from a JSON hex string.
//
//nolint:recvcheck
type Bytes []byte

func (b Bytes) MarshalJSON() ([]byte, error) {
	buf := make([]byte, len(b)*2+2)
	buf[0] = '"'
	buf[len(buf)-1] = '"'
	fasthex.Encode(buf[1:], b)
	return buf, nil
}

func (b Bytes) String() string {
	return fasthex.EncodeToString(b)
}

func (b *Bytes) UnmarshalJSON(buf []byte) error {
	if len(buf) < 2 || (len(buf)%2) != 0 || buf[0] != '"' || buf[len(buf)-1] != '"' {
		return errors.New("invalid bytes")
	}

	*b = make(Bytes, (len(buf)-2)/2)

	if _, err := fasthex.Decode(*b, buf[1:len(buf)-1]); err != nil {
		return err
	}

	return nil
}

func MustBytesFromString(s string) Bytes {
	if b, err := BytesFromString(s); err != nil {
		panic(err)
	} else {
		return b
	}
}

func BytesFromString(s string) (Bytes, error) {
	buf, err := fasthex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return buf, nil
}
