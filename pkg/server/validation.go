package server

import (
	"net/url"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidationsOnce sync.Once

// registerValidations installs the joburl shape check on gin's shared
// binding validator. The boundary only rejects values that cannot be a
// company website at all; the deeper URL heuristics (shorteners, raw
// IPs, throwaway TLDs) stay in the analyzers where they produce findings
// instead of errors.
func registerValidations() {
	registerValidationsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("joburl", func(fl validator.FieldLevel) bool {
			parsed, err := url.Parse(fl.Field().String())
			if err != nil {
				return false
			}
			return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
		})
	})
}
