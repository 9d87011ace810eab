// Package auth computes the signed authentication header the supplier
// API requires on privileged calls. The scheme is described at
// https://apitest.bldss.bl.uk/docs/guide/single.html#hmac: an HMAC-SHA1
// over the method, path and a sorted, URL-encoded parameter string that
// folds in the credentials, a nonce and a millisecond timestamp.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

const signatureMethod = "HMAC-SHA1"

// HeaderName is the request header carrying the signed credentials.
const HeaderName = "BLDSS-API-Authentication"

// ConfigError reports credentials that cannot produce a signature.
type ConfigError struct {
	Missing string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("signature configuration incomplete: missing %s", e.Missing)
}

// Credentials is the two key/secret pairs issued by the supplier.
type Credentials struct {
	Application     string
	ApplicationAuth string
	Key             string
	KeyAuth         string
}

func (c Credentials) validate() error {
	switch {
	case c.Application == "":
		return &ConfigError{Missing: "api application"}
	case c.ApplicationAuth == "":
		return &ConfigError{Missing: "api application auth"}
	case c.Key == "":
		return &ConfigError{Missing: "api key"}
	case c.KeyAuth == "":
		return &ConfigError{Missing: "api key auth"}
	}
	return nil
}

// Signer produces authentication headers. Nonce and Now are injectable
// so signatures can be reproduced in tests; the zero values use a ULID
// nonce and the wall clock.
type Signer struct {
	Credentials Credentials
	Nonce       func() string
	Now         func() time.Time
}

// Sign computes the header value for one request. Params are the query
// or form parameters of the call and body is the serialized payload,
// empty for body-less requests.
func (s *Signer) Sign(method string, path string, params map[string]string, body string) (string, error) {
	if err := s.Credentials.validate(); err != nil {
		return "", err
	}
	nonce := s.nonce()
	requestTime := strconv.FormatInt(s.now().UnixMilli(), 10)

	paramString := s.parameterString(nonce, requestTime, params, body)
	requestString := method + "&" + encode(path) + "&" + encode(paramString)

	mac := hmac.New(sha1.New, []byte(s.Credentials.ApplicationAuth+"&"+s.Credentials.KeyAuth))
	mac.Write([]byte(requestString))
	authorisation := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	// The supplier checks the element order.
	elements := []string{
		"api_application=" + s.Credentials.Application,
		"nonce=" + nonce,
		"signature_method=" + signatureMethod,
		"request_time=" + requestTime,
		"authorisation=" + authorisation,
		"api_key=" + s.Credentials.Key,
	}
	return strings.Join(elements, ","), nil
}

// parameterString folds credentials, nonce, timestamp and the request's
// own parameters into one case-insensitively sorted, URL-encoded string.
func (s *Signer) parameterString(nonce, requestTime string, params map[string]string, body string) string {
	all := map[string]string{
		"api_application":  s.Credentials.Application,
		"api_key":          s.Credentials.Key,
		"request_time":     requestTime,
		"nonce":            nonce,
		"signature_method": signatureMethod,
	}
	if body != "" {
		all["request"] = body
	}
	for k, v := range params {
		all[k] = v
	}
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return strings.ToLower(keys[i]) < strings.ToLower(keys[j])
	})
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, encode(k)+"="+encode(all[k]))
	}
	return strings.Join(pairs, "&")
}

func (s *Signer) nonce() string {
	if s.Nonce != nil {
		return s.Nonce()
	}
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

func (s *Signer) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func encode(value string) string {
	return url.QueryEscape(value)
}
