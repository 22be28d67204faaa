package utils

import (
	"net"
	"net/http"
	"strings"
)

/*
GetClientKey resolves a coarse client identity from request metadata.

If an X-Forwarded-For header is present, take its first comma separated
entry, which is the closest original client in the proxy chain. Otherwise
fall back to the direct connection address, with the port stripped when one
is attached. The value is passed through as is, no IP format validation:
this key only deduplicates views and votes, it is spoofable and is never
treated as authentication.
*/
func GetClientKey(header http.Header, remoteAddr string) string {
	forwarded := header.Get("X-Forwarded-For")
	if forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}
