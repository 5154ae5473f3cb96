package ports

//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks

// Logger is the explicit log sink passed into classifier, cache, and
// publishers. There is no process-wide log handle.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
	// SetQuiet raises the log level so only errors surface.
	SetQuiet(quiet bool)
}
