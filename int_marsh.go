// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Ints.

package bigint

import (
	"encoding/binary"

	"fortio.org/safecast"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const intGobVersion byte = 1

// _S is the size in bytes of an encoded Word.
const _S = 4

// GobEncode implements the gob.GobEncoder interface.
//
// The encoding is a version byte, a sign byte (1 for negative values) and
// the magnitude words in big-endian order, most significant word first.
func (x Int) GobEncode() ([]byte, error) {
	buf := make([]byte, 2+len(x.abs)*_S)
	buf[0] = intGobVersion
	if x.neg {
		buf[1] = 1
	}
	b := buf[2:]
	for i := len(x.abs) - 1; i >= 0; i-- {
		binary.BigEndian.PutUint32(b, uint32(x.abs[i]))
		b = b[_S:]
	}
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Int) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Int{}
		return nil
	}
	if buf[0] != intGobVersion {
		return errors.Errorf("Int.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 2 || (len(buf)-2)%_S != 0 {
		return errors.Errorf("Int.GobDecode: invalid encoding length %d", len(buf))
	}
	n, err := safecast.Conv[int]((len(buf) - 2) / _S)
	if err != nil {
		return errors.Wrap(err, "Int.GobDecode")
	}
	abs := dec(nil).make(n)
	b := buf[2:]
	for i := n - 1; i >= 0; i-- {
		w := binary.BigEndian.Uint32(b)
		if w >= _DB {
			return errors.Errorf("Int.GobDecode: invalid digit %d", w)
		}
		abs[i] = Word(w)
		b = b[_S:]
	}
	*z = makeInt(abs, buf[1] != 0)
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. The value is
// marshaled in base 10.
func (x Int) MarshalText() (text []byte, err error) {
	if len(x.abs) == 0 {
		return []byte("0"), nil
	}
	return x.abs.decimalString(x.neg), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It
// accepts everything Parse does.
func (z *Int) UnmarshalText(text []byte) error {
	x, err := Parse(string(text))
	if err != nil {
		return errors.WithMessagef(err, "bigint: cannot unmarshal %q into a *bigint.Int", text)
	}
	*z = x
	return nil
}

// MarshalJSON implements the json.Marshaler interface. The value is encoded
// as a JSON number.
func (x Int) MarshalJSON() ([]byte, error) {
	return x.MarshalText()
}

// UnmarshalJSON implements the json.Unmarshaler interface. It accepts a JSON
// number, a JSON string holding any text accepted by Parse, or null which
// leaves z unchanged.
func (z *Int) UnmarshalJSON(text []byte) error {
	s := string(text)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	x, err := Parse(s)
	if err != nil {
		return errors.WithMessagef(err, "bigint: cannot unmarshal %s into a *bigint.Int", text)
	}
	*z = x
	return nil
}

var (
	_ msgpack.CustomEncoder = Int{}
	_ msgpack.CustomDecoder = (*Int)(nil)
)

// EncodeMsgpack implements the msgpack.CustomEncoder interface. The value is
// written as a msgpack bin holding the gob encoding.
func (x Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	b, err := x.GobEncode()
	if err != nil {
		return err
	}
	return enc.EncodeBytes(b)
}

// DecodeMsgpack implements the msgpack.CustomDecoder interface.
func (z *Int) DecodeMsgpack(d *msgpack.Decoder) error {
	b, err := d.DecodeBytes()
	if err != nil {
		return errors.Wrap(err, "Int.DecodeMsgpack")
	}
	return z.GobDecode(b)
}
