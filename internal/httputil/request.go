package httputil

import (
	"encoding/json"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RequestHost returns the host part for links in responses.
//
// We can reasonably expect a reverse proxy to set x-forwarded-host and
// x-forwarded-proto as they are de-facto standards. If no proxy is
// detected, the values from the request itself are used.
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	host := c.Request.Host
	var forwardedPrefix string

	xForwardedHost := c.Request.Header.Get("x-forwarded-host")
	if xForwardedHost != "" {
		host = xForwardedHost
		forwardedPrefix = c.Request.Header.Get("x-forwarded-prefix")
	}

	return scheme + "://" + host + forwardedPrefix
}

// RequestPathV1 returns the URL with the prefix for API v1.
func RequestPathV1(c *gin.Context) string {
	return RequestHost(c) + "/v1"
}

// BindData binds the JSON body of the request to the struct passed in.
//
// An empty body is reported as ErrRequestBodyEmpty so that endpoints
// where every field is optional can treat it as an empty object.
func BindData(c *gin.Context, data any) error {
	if c.Request.Body == nil {
		return ErrRequestBodyEmpty
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	if len(body) == 0 {
		return ErrRequestBodyEmpty
	}

	err = json.Unmarshal(body, data)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}
