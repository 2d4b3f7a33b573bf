package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
)

// recorder перехватывает ответ обработчика, клиенту ничего не уходит
// до явной отправки записи из кэша
type recorder struct {
	gin.ResponseWriter
	header http.Header
	body   bytes.Buffer
	status int
	wrote  bool
}

func newRecorder(w gin.ResponseWriter) *recorder {
	return &recorder{
		ResponseWriter: w,
		header:         make(http.Header),
		status:         http.StatusOK,
	}
}

func (r *recorder) Header() http.Header {
	return r.header
}

func (r *recorder) WriteHeader(code int) {
	if code > 0 && !r.wrote {
		r.status = code
	}
}

func (r *recorder) WriteHeaderNow() {
	r.wrote = true
}

func (r *recorder) Write(data []byte) (int, error) {
	r.wrote = true
	return r.body.Write(data)
}

func (r *recorder) WriteString(s string) (int, error) {
	r.wrote = true
	return r.body.WriteString(s)
}

func (r *recorder) Status() int {
	return r.status
}

func (r *recorder) Size() int {
	if !r.wrote {
		return -1
	}
	return r.body.Len()
}

func (r *recorder) Written() bool {
	return r.wrote
}

// hopHeaders не сохраняются вместе с ответом
var hopHeaders = []string{
	"Connection", "Keep-Alive", "Transfer-Encoding", "Upgrade",
	"Content-Length", "Set-Cookie", "Date",
}

func (r *recorder) storedHeader() http.Header {
	h := r.header.Clone()
	for _, name := range hopHeaders {
		h.Del(name)
	}
	return h
}
