package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/ferdiebergado/fundlist/internal/pkg/web"
	"github.com/klauspost/compress/zstd"
)

const encodingZstd = "zstd"

var encoderPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			slog.Error("create zstd encoder", "reason", err)
			return nil
		}
		return enc
	},
}

type zstdResponseWriter struct {
	http.ResponseWriter
	encoder     *zstd.Encoder
	wroteHeader bool
	wroteBody   bool
}

func (w *zstdResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	h := w.Header()
	h.Del("Content-Length")
	h.Set(web.HeaderContentEncoding, encodingZstd)
	h.Add(web.HeaderVary, web.HeaderAcceptEncoding)
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *zstdResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	w.wroteBody = true
	return w.encoder.Write(b)
}

func (w *zstdResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// Compress encodes response bodies with zstd for clients that accept it.
func Compress(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead || !acceptsZstd(r.Header.Get(web.HeaderAcceptEncoding)) {
			next.ServeHTTP(w, r)
			return
		}

		enc, ok := encoderPool.Get().(*zstd.Encoder)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		enc.Reset(w)

		zw := &zstdResponseWriter{ResponseWriter: w, encoder: enc}
		defer func() {
			if zw.wroteBody {
				if err := enc.Close(); err != nil {
					slog.Error("close zstd encoder", "reason", err)
				}
			}
			enc.Reset(io.Discard)
			encoderPool.Put(enc)
		}()

		next.ServeHTTP(zw, r)
	})
}

// acceptsZstd reports whether the Accept-Encoding header lists zstd with a non-zero quality.
func acceptsZstd(header string) bool {
	for _, part := range strings.Split(header, ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(coding), encodingZstd) {
			continue
		}
		q := strings.ReplaceAll(strings.TrimSpace(params), " ", "")
		return q != "q=0" && q != "q=0.0" && q != "q=0.00" && q != "q=0.000"
	}
	return false
}
