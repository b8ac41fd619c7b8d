package logger

import "log/slog"

// Error records err under "error". A nil error yields an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Kind records an error category under "error_kind".
func Kind(kind error) slog.Attr {
	if kind == nil {
		return slog.Attr{}
	}
	return slog.String("error_kind", kind.Error())
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Number records an identity number under "number". Callers pass a masked value.
func Number(masked string) slog.Attr {
	return slog.String("number", masked)
}
