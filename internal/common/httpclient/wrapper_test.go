package httpclient

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_isRetryableStatus(t *testing.T) {
	for code, want := range map[int]bool{
		http.StatusOK:                  false,
		http.StatusNotFound:            false,
		http.StatusUnprocessableEntity: false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
		http.StatusGatewayTimeout:      true,
	} {
		assert.Equal(t, want, isRetryableStatus(code), http.StatusText(code))
	}
}
