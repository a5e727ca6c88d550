package middleware

import (
	"bufio"
	"bytes"
	"io"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
)

// bodyDumpResponseWriter tees the response into a buffer for the access log and the idempotency cache.
type bodyDumpResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	_ = http.NewResponseController(w.ResponseWriter).Flush()
}

func (w *bodyDumpResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return http.NewResponseController(w.ResponseWriter).Hijack()
}

func (w *bodyDumpResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (m *AppMiddleware) getResponseBodyBuffer(c echo.Context) *bytes.Buffer {
	buf := new(bytes.Buffer)
	c.Response().Writer = &bodyDumpResponseWriter{
		Writer:         io.MultiWriter(c.Response().Writer, buf),
		ResponseWriter: c.Response().Writer,
	}
	return buf
}
