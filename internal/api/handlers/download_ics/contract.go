package download_ics

type BookingsService interface {
	ExportICS(bookingID string) (filename string, content string, err error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
