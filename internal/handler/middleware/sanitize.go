package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"

	"skipass-api/internal/handler/httperr"
	"skipass-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

var errMalformedBody = errs.Mark(errs.New("malformed JSON body"), errs.ErrInvalidInput)

// SanitizeJSON strips markup from the named top-level string fields of a
// JSON body. Other fields, passwords included, pass through untouched.
func SanitizeJSON(fields ...string) gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.ContentLength == 0 {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidInput), "Invalid body", nil)
			return
		}

		var body map[string]any
		if err := json.Unmarshal(buf, &body); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errMalformedBody, "Malformed JSON", nil)
			return
		}

		changed := false
		for _, f := range fields {
			if s, ok := body[f].(string); ok {
				if clean := stripMarkup(policy, s); clean != s {
					body[f] = clean
					changed = true
				}
			}
		}

		if changed {
			if buf, err = json.Marshal(body); err != nil {
				httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidInput), "Invalid body", nil)
				return
			}
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(buf))
		c.Request.ContentLength = int64(len(buf))

		c.Next()
	}
}

// stripMarkup returns plain text. StrictPolicy escapes entities, so the result
// is unescaped, and re-sanitised while unescaping still uncovers markup
// ("&lt;b&gt;" decodes to "<b>").
func stripMarkup(policy *bluemonday.Policy, s string) string {
	for range 3 {
		clean := html.UnescapeString(policy.Sanitize(s))
		if clean == s {
			break
		}
		s = clean
	}
	return s
}
