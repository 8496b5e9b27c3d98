// Package util holds small shared helpers with no domain logic.
package util

import (
	"net/http"
	"net/url"
	"strings"
)

// NewProxyFunc builds the proxy selector for collaborator HTTP clients.
// With no explicit proxy configured it defers to the environment. Hosts
// listed in noProxy (comma separated, exact or dot-suffix match, "*" for
// everything) connect directly.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	skip := parseNoProxy(noProxy)

	return func(req *http.Request) (*url.URL, error) {
		if bypassProxy(req.URL.Hostname(), skip) {
			return nil, nil
		}
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}

func parseNoProxy(noProxy string) []string {
	var hosts []string
	for _, part := range strings.Split(noProxy, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		hosts = append(hosts, part)
	}
	return hosts
}

func bypassProxy(hostname string, skip []string) bool {
	hostname = strings.ToLower(hostname)
	for _, entry := range skip {
		if entry == "*" {
			return true
		}
		// ".example.com" and "example.com" both cover subdomains
		suffix := strings.TrimPrefix(entry, ".")
		if hostname == suffix || strings.HasSuffix(hostname, "."+suffix) {
			return true
		}
	}
	return false
}
