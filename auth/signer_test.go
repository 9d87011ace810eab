package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testCredentials = Credentials{
	Application:     "ExampleApp",
	ApplicationAuth: "appsecret",
	Key:             "ExampleKey",
	KeyAuth:         "keysecret",
}

func fixedSigner() *Signer {
	return &Signer{
		Credentials: testCredentials,
		Nonce:       func() string { return "0123456789" },
		Now:         func() time.Time { return time.UnixMilli(1469629053941) },
	}
}

func TestSignBodyRequest(t *testing.T) {
	header, err := fixedSigner().Sign("POST", "/api/orders", nil,
		"<NewOrderRequest><type>S</type></NewOrderRequest>")
	assert.NoError(t, err)
	assert.Equal(t, "api_application=ExampleApp,nonce=0123456789,"+
		"signature_method=HMAC-SHA1,request_time=1469629053941,"+
		"authorisation=PpCTp+sIBGVJ9sQAhePlN5powck=,api_key=ExampleKey", header)
}

func TestSignParamRequest(t *testing.T) {
	header, err := fixedSigner().Sign("GET", "/api/search", map[string]string{
		"SearchRequest.fullDetails":    "true",
		"SearchRequest.Advanced.title": "dogs of war",
	}, "")
	assert.NoError(t, err)
	assert.Contains(t, header, "authorisation=7MvNvdPR8nwZbXiVWLIDrxLtrNQ=")
}

func TestSignDeterministic(t *testing.T) {
	first, err := fixedSigner().Sign("PUT", "/api/orders/1", nil, "<payload/>")
	assert.NoError(t, err)
	second, err := fixedSigner().Sign("PUT", "/api/orders/1", nil, "<payload/>")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSignDefaultNonce(t *testing.T) {
	signer := &Signer{Credentials: testCredentials}
	header, err := signer.Sign("GET", "/api/prices", nil, "")
	assert.NoError(t, err)

	var nonce string
	for _, element := range strings.Split(header, ",") {
		if v, ok := strings.CutPrefix(element, "nonce="); ok {
			nonce = v
		}
	}
	assert.GreaterOrEqual(t, len(nonce), 10)
	for _, r := range nonce {
		ok := (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
		assert.True(t, ok, "nonce character %q", r)
	}
}

func TestSignIncompleteCredentials(t *testing.T) {
	signer := &Signer{Credentials: Credentials{Application: "ExampleApp"}}
	_, err := signer.Sign("GET", "/api/prices", nil, "")
	var confErr *ConfigError
	assert.ErrorAs(t, err, &confErr)
	assert.ErrorContains(t, err, "api application auth")
}
