package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/base/log"
	"github.com/meterex/goapi/domain/keys"
	"github.com/meterex/goapi/service/redis"
)

var (
	cacheMiddlewareRedis redis.Service

	once = sync.Once{}
)

func SetupCache(redis redis.Service) {
	once.Do(func() {
		cacheMiddlewareRedis = redis
	})
}

// Response is the cached response data structure.
type Response struct {
	// Value is the cached response value.
	Value []byte

	// Header is the cached response header.
	Header http.Header
}

type bodyDumpResponseWriter struct {
	statusCode int
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	w.ResponseWriter.(http.Flusher).Flush()
}

func (w *bodyDumpResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.(http.Hijacker).Hijack()
}

func sortURLParams(URL *url.URL) {
	params := URL.Query()
	for _, param := range params {
		sort.Slice(param, func(i, j int) bool {
			return param[i] < param[j]
		})
	}
	URL.RawQuery = params.Encode()
}

func generateKey(URL string) string {
	hash := fnv.New64a()
	hash.Write([]byte(URL))

	return strconv.FormatUint(hash.Sum64(), 36)
}

func CacheHttp(ttl time.Duration) echo.MiddlewareFunc {
	if cacheMiddlewareRedis == nil {
		panic("need SetupCache before using CacheHttp")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Get("ctx").(ctx.Ctx)

			sortURLParams(c.Request().URL)
			key := keys.RedisKey(keys.PfxHttpCache, generateKey(c.Request().URL.String()))

			if raw, err := cacheMiddlewareRedis.Get(ctx, key); err == nil {
				response := Response{}
				if err := json.Unmarshal(raw, &response); err == nil {
					// cache hit
					for k, v := range response.Header {
						c.Response().Header().Set(k, strings.Join(v, ","))
					}
					c.Response().WriteHeader(http.StatusOK)
					c.Response().Write(response.Value)
					return nil
				}
			} else if err != redis.ErrNotFound {
				ctx.WithFields(log.Fields{
					"err": err,
				}).Error("failed to redis.Get")
			}

			// cache miss
			resBody := new(bytes.Buffer)
			mw := io.MultiWriter(c.Response().Writer, resBody)
			writer := &bodyDumpResponseWriter{Writer: mw, ResponseWriter: c.Response().Writer}
			c.Response().Writer = writer
			if err := next(c); err != nil {
				c.Error(err)
			}

			statusCode := writer.statusCode
			value := resBody.Bytes()
			if statusCode < 400 {
				response := Response{
					Value:  value,
					Header: writer.Header(),
				}

				if raw, err := json.Marshal(response); err == nil {
					if err := cacheMiddlewareRedis.Set(ctx, key, raw, ttl); err != nil {
						ctx.WithFields(log.Fields{
							"err": err,
						}).Error("failed to redis.Set")
					}
				}
			}

			return nil
		}
	}
}
