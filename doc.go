// Package browserdetails provides HTTP middleware that logs a one-line summary
// of the client behind each request: browser, version, platform and operating
// system taken from the User-Agent header, plus whether client-side scripting
// appears to be enabled.
//
// Scripting support is inferred from two signals:
//
//   - The "utf8" sentinel form field. Pages render it with the value "✓" and a
//     small script rewrites it before submit. Receiving "✓" back means the
//     script never ran ("JS disabled"); any other non-empty value means it did
//     ("JS enabled").
//   - Script-issued requests (X-Requested-With: XMLHttpRequest by default)
//     prove script execution ("JS enabled").
//
// A typical line looks like:
//
//	Chrome 58.0.3029.110 (Windows, Windows 10), JS enabled
//
// # Usage
//
//	log := logger.New(logger.WithProduction("web"))
//
//	mw := browserdetails.Middleware(
//		browserdetails.WithLogFunc(browserdetails.SlogLogger(log)),
//	)
//	http.ListenAndServe(":8080", mw(mux))
//
// The log destination is chosen by the host application. SlogLogger,
// StdLogger and ContextLogger cover structured, standard library and
// request-scoped loggers; any func(context.Context, string) works. Without a
// log function or observer the middleware only forwards requests.
//
// # Guarantees
//
// The middleware never writes to the response and never fails a request.
// Parser errors, oversized or malformed form bodies and panicking sinks only
// drop the detail line. Form bodies are buffered up to WithMaxFormBytes and
// replayed, so downstream handlers read the same bytes. Panics and
// cancellation from the wrapped handler propagate unchanged.
//
// The message builder is usable on its own:
//
//	msg := browserdetails.Message(browserdetails.NewSnapshot(r))
package browserdetails
