package interceptors

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"

	"github.com/trailnest/payments-api/config"
	"github.com/trailnest/payments-api/utils"
)

// RefundSecretHeader carries the shared secret that authorises deposit
// refunds
const RefundSecretHeader = "x-refund-secret"

// RefundAuthenticationInterceptor gates the refund endpoint behind the
// configured shared secret. The check runs before any request parsing.
type RefundAuthenticationInterceptor struct {
	Config config.Config
}

// IsRefundAuthorised reports whether the presented credential authorises a
// refund. An unset configured secret always denies: the gate fails closed
// rather than treating a missing secret as "no check required". The
// comparison is constant-time.
func IsRefundAuthorised(configuredSecret, presented string) bool {
	if configuredSecret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(configuredSecret), []byte(presented)) == 1
}

// RefundAuthenticationIntercept checks the refund secret header before
// passing the request on
func (interceptor *RefundAuthenticationInterceptor) RefundAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsRefundAuthorised(interceptor.Config.RefundSecret, r.Header.Get(RefundSecretHeader)) {
			// The expected value is never disclosed, only the denial
			log.ErrorR(r, fmt.Errorf("refund authentication interceptor unauthorised: invalid refund secret"))
			utils.WriteJSONWithStatus(w, r, utils.NewErrorResponse("Forbidden - invalid refund secret"), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
