// Package logger builds *slog.Logger instances from functional options and
// carries request-scoped loggers through context.Context.
//
// New selects the text or JSON handler, applies the level and static
// attributes, and wraps the result in LogHandlerDecorator, which adds
// attributes pulled from the record's context (request id, ...) through
// registered ContextExtractor callbacks.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "web"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	handler := logger.Middleware(log)(mux)
//
//	// later, inside a handler
//	if l, ok := logger.FromContext(r.Context()); ok {
//		l.InfoContext(r.Context(), "rendered form")
//	}
//
// Attribute helpers (Error, RequestID, Browser, Scripting, ...) keep key
// names consistent. Error returns an empty Attr for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
