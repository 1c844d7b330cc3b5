package rc5_test

import (
	"fmt"
	"reflect"
	"testing"

	"git.gammaspectra.live/P2Pool/rc5"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
)

func assertNoError(t *testing.T, err error, msgAndArgs ...any) {
	if err != nil {
		message := ""
		if len(msgAndArgs) > 0 {
			message = fmt.Sprint(msgAndArgs...) + ": "
		}
		t.Errorf("%sunexpected err: %s", message, err)
	}
}

func assertEqual(t *testing.T, actual, expected any, msgAndArgs ...any) {
	if !reflect.DeepEqual(actual, expected) {
		message := ""
		if len(msgAndArgs) > 0 {
			message = fmt.Sprint(msgAndArgs...) + ": "
		}
		t.Errorf("%sactual: %v expected: %v", message, actual, expected)
	}
}

func TestErrors(t *testing.T) {
	spec.Run(t, "New", func(t *testing.T, when spec.G, it spec.S) {
		it("fails w/ negative rounds", func() {
			_, err := rc5.New[uint32](-1, 16)
			assertEqual(t, err, rc5.RoundCountError(-1))
		})

		it("fails w/ too many rounds", func() {
			_, err := rc5.New[uint32](rc5.MaxRounds+1, 16)
			assertEqual(t, err, rc5.RoundCountError(256))
		})

		it("fails w/ negative key size", func() {
			_, err := rc5.New[uint16](12, -1)
			assertEqual(t, err, rc5.KeySizeError(-1))
		})

		it("fails w/ too large key size", func() {
			_, err := rc5.New[uint64](12, rc5.MaxKeySize+1)
			assertEqual(t, err, rc5.KeySizeError(256))
		})
	}, spec.Report(report.Log{}), spec.Parallel(), spec.Random())

	spec.Run(t, "Cipher", func(t *testing.T, when spec.G, it spec.S) {
		newCipher := func() *rc5.Cipher[uint32] {
			c, err := rc5.New[uint32](12, 16)
			assertNoError(t, err)
			return c
		}

		it("rejects a wrong size key before touching the block", func() {
			c := newCipher()
			_, err := c.Encode(make([]byte, 8), make([]byte, c.BlockSize()))
			assertEqual(t, err, rc5.KeySizeError(8))
		})

		it("rejects a short block", func() {
			c := newCipher()
			_, err := c.Encode(make([]byte, 16), make([]byte, c.BlockSize()-1))
			assertEqual(t, err, rc5.BlockSizeError(7))
		})

		it("rejects a long block", func() {
			c := newCipher()
			_, err := c.Decode(make([]byte, 16), make([]byte, c.BlockSize()+1))
			assertEqual(t, err, rc5.BlockSizeError(9))
		})

		it("rejects a wrong size key on decode", func() {
			c := newCipher()
			_, err := c.Decode(nil, make([]byte, c.BlockSize()))
			assertEqual(t, err, rc5.KeySizeError(0))
		})

		it("rejects a wrong size key on key expansion", func() {
			c := newCipher()
			_, err := c.ExpandKey(make([]byte, 17))
			assertEqual(t, err, rc5.KeySizeError(17))
		})
	}, spec.Report(report.Log{}), spec.Parallel(), spec.Random())
}
