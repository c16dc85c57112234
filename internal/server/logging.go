package server

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
)

// AccessLogger writes one gin-style access line per request, tagged with the
// request ID set by RequestID.
func AccessLogger(out io.Writer) gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: accessLogFormatter,
		Output:    out,
	})
}

func accessLogFormatter(param gin.LogFormatterParams) string {
	requestID, _ := param.Keys[RequestIDKey].(string)
	if requestID == "" {
		requestID = "-"
	}

	return fmt.Sprintf("[GIN] %v | %3d | %13v | %15s | %-7s %#v | req=%s\n%s",
		param.TimeStamp.Format("2006/01/02 - 15:04:05"),
		param.StatusCode,
		param.Latency,
		param.ClientIP,
		param.Method,
		param.Path,
		requestID,
		param.ErrorMessage,
	)
}
