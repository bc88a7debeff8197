package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign_KnownVector(t *testing.T) {
	// HMAC-SHA256("testsecret", "order_abc|pay_123")
	assert.Equal(t,
		"266c846cccf1205b5b4c8b24233b40811f99e4a25521dfc2866563bf7a56b8a4",
		Sign("testsecret", "order_abc", "pay_123"),
	)
}

func TestVerify_RoundTrip(t *testing.T) {
	sig := Sign("testsecret", "order_xyz", "pay_999")
	assert.True(t, Verify("testsecret", "order_xyz", "pay_999", sig))
}

func TestVerify_AnyFlippedCharacterRejects(t *testing.T) {
	sig := Sign("testsecret", "order_1", "pay_1")

	for i := range sig {
		flipped := []byte(sig)
		if flipped[i] == '0' {
			flipped[i] = '1'
		} else {
			flipped[i] = '0'
		}
		if string(flipped) == sig {
			continue
		}
		assert.False(t, Verify("testsecret", "order_1", "pay_1", string(flipped)),
			"flip at index %d must reject", i)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	sig := Sign("testsecret", "order_1", "pay_1")
	assert.False(t, Verify("othersecret", "order_1", "pay_1", sig))
}

func TestVerify_SwappedIdentifiers(t *testing.T) {
	sig := Sign("testsecret", "order_1", "pay_1")
	assert.False(t, Verify("testsecret", "pay_1", "order_1", sig))
}

func TestVerify_NonHexSignature(t *testing.T) {
	assert.False(t, Verify("testsecret", "order_1", "pay_1", "not-hex!"))
}

func TestVerify_EmptySignature(t *testing.T) {
	assert.False(t, Verify("testsecret", "order_1", "pay_1", ""))
}
