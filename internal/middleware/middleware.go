package middleware

import (
	"net/http"
	"strconv"

	"github.com/startup-advisor/backend/internal/handlers"
	"github.com/startup-advisor/backend/internal/metrics"
	"github.com/startup-advisor/backend/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
}

var GetHandler = Wrap(handlers.GetHandler)

var ChatHandler = Wrap(handlers.ChatHandler)
var ChatWithImageHandler = Wrap(handlers.ChatWithImageHandler)
var ChatWithFileHandler = Wrap(handlers.ChatWithFileHandler)
var HealthHandler = Wrap(handlers.HealthHandler)
var MultimodalHealthHandler = Wrap(handlers.MultimodalHealthHandler)

func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec})

		if re.badRequest.isBadRequest {
			handleBadRequest(re)
			return
		}
		if re.req.Method == http.MethodOptions {
			rec.CaptureWriteHeaderMetrics(http.StatusNoContent)
			return
		}
		next(rec, re.req)

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
	}
}

func processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re.logger.Debug("New request received")

	re = injectTrace(re)
	if re.badRequest.isBadRequest {
		return re
	}
	re = applyCORS(re)
	re = rateLimiter(re)
	return re
}
