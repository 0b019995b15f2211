package util

import (
	"net/http"
	"net/url"
)

// NewProxyFunc builds the proxy selector for outbound HTTP clients.
// Explicit proxy URLs win; with none configured the standard
// environment variables (HTTP_PROXY, HTTPS_PROXY, NO_PROXY) apply.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	return func(req *http.Request) (*url.URL, error) {
		switch {
		case req.URL.Scheme == "https" && httpsProxy != "":
			return url.Parse(httpsProxy)
		case httpProxy != "":
			return url.Parse(httpProxy)
		default:
			return http.ProxyFromEnvironment(req)
		}
	}
}
