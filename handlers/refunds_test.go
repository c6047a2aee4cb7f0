package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stripe/stripe-go/v81"

	"github.com/trailnest/payments-api/config"
	"github.com/trailnest/payments-api/service"
)

// Mock function for erroring when preparing and sending the refund kafka message
func mockProduceRefundMessageError(paymentIntentID string, refundID string) error {
	return errors.New("kafka unavailable")
}

func TestUnitHandleRefundDeposit(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()

	handleRefundMessage = func(paymentIntentID string, refundID string) error { return nil }
	defer func() { handleRefundMessage = produceRefundMessage }()

	Convey("Request body empty", t, func() {
		mockSDK := service.NewMockProviderSDK(mockCtrl)
		refundService = &service.RefundService{SDK: mockSDK, Config: *cfg}

		req, _ := http.NewRequest("POST", "/refund-deposit", nil)
		w := httptest.NewRecorder()
		HandleRefundDeposit(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Request body invalid", t, func() {
		mockSDK := service.NewMockProviderSDK(mockCtrl)
		refundService = &service.RefundService{SDK: mockSDK, Config: *cfg}

		req := httptest.NewRequest("POST", "/refund-deposit", strings.NewReader("not json"))
		w := httptest.NewRecorder()
		HandleRefundDeposit(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Payment intent reference missing", t, func() {
		mockSDK := service.NewMockProviderSDK(mockCtrl)
		refundService = &service.RefundService{SDK: mockSDK, Config: *cfg}

		req := httptest.NewRequest("POST", "/refund-deposit", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		HandleRefundDeposit(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(w.Body.String(), ShouldContainSubstring, `"error"`)
	})

	Convey("Provider rejects the refund", t, func() {
		mockSDK := service.NewMockProviderSDK(mockCtrl)
		mockSDK.EXPECT().CreateRefund(gomock.Any()).Return(nil, errors.New("charge has already been refunded"))
		refundService = &service.RefundService{SDK: mockSDK, Config: *cfg}

		req := httptest.NewRequest("POST", "/refund-deposit", strings.NewReader(`{"paymentIntentRef":"pi_abc"}`))
		w := httptest.NewRecorder()
		HandleRefundDeposit(w, req)
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
		So(w.Body.String(), ShouldContainSubstring, "charge has already been refunded")
	})

	Convey("Successful refund", t, func() {
		mockSDK := service.NewMockProviderSDK(mockCtrl)
		mockSDK.EXPECT().CreateRefund(gomock.Any()).Return(&stripe.Refund{
			ID:            "re_123",
			Amount:        2000,
			Status:        stripe.RefundStatusSucceeded,
			Created:       1730000000,
			PaymentIntent: &stripe.PaymentIntent{ID: "pi_abc"},
		}, nil)
		refundService = &service.RefundService{SDK: mockSDK, Config: *cfg}

		req := httptest.NewRequest("POST", "/refund-deposit", strings.NewReader(`{"paymentIntentRef":"pi_abc"}`))
		w := httptest.NewRecorder()
		HandleRefundDeposit(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"success":true`)
		So(w.Body.String(), ShouldContainSubstring, `"refund_id":"re_123"`)
	})

	Convey("Kafka failure after a successful refund does not change the response", t, func() {
		handleRefundMessage = mockProduceRefundMessageError
		defer func() { handleRefundMessage = func(string, string) error { return nil } }()

		mockSDK := service.NewMockProviderSDK(mockCtrl)
		mockSDK.EXPECT().CreateRefund(gomock.Any()).Return(&stripe.Refund{
			ID:            "re_124",
			Amount:        2000,
			Status:        stripe.RefundStatusSucceeded,
			Created:       1730000000,
			PaymentIntent: &stripe.PaymentIntent{ID: "pi_abc"},
		}, nil)
		refundService = &service.RefundService{SDK: mockSDK, Config: *cfg}

		req := httptest.NewRequest("POST", "/refund-deposit", strings.NewReader(`{"paymentIntentRef":"pi_abc"}`))
		w := httptest.NewRecorder()
		HandleRefundDeposit(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"success":true`)
	})
}
