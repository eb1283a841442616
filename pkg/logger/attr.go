package logger

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// Empty ids produce an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Browser groups browser fields under the key "browser".
func Browser(name, version string, mobile bool) slog.Attr {
	return slog.Group("browser",
		slog.String("name", name),
		slog.String("version", version),
		slog.Bool("mobile", mobile),
	)
}

// Scripting records the detected client-side scripting status under the key "js".
func Scripting(status string) slog.Attr {
	if status == "" {
		return slog.Attr{}
	}
	return slog.String("js", status)
}

// ClientIP records the originating client address under the key "client_ip".
// Empty addresses produce an empty Attr.
func ClientIP(ip string) slog.Attr {
	if ip == "" {
		return slog.Attr{}
	}
	return slog.String("client_ip", ip)
}
