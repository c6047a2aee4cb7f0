package mappers

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stripe/stripe-go/v81"
)

func TestUnitMapRefundToRest(t *testing.T) {

	Convey("Map provider refund to REST model", t, func() {
		refund := &stripe.Refund{
			ID:            "re_123",
			Amount:        2000,
			Status:        stripe.RefundStatusSucceeded,
			Created:       1730000000,
			PaymentIntent: &stripe.PaymentIntent{ID: "pi_abc"},
		}

		refundResponse := MapRefundToRest(refund)

		So(refundResponse.RefundID, ShouldEqual, "re_123")
		So(refundResponse.PaymentIntent, ShouldEqual, "pi_abc")
		So(refundResponse.Amount, ShouldEqual, 2000)
		So(refundResponse.Status, ShouldEqual, "succeeded")
		So(refundResponse.CreatedAt, ShouldEqual, "2024-10-27T03:33:20Z")
	})

	Convey("Map refund with no expanded payment intent", t, func() {
		refund := &stripe.Refund{
			ID:      "re_124",
			Amount:  500,
			Status:  stripe.RefundStatusPending,
			Created: 1730000000,
		}

		refundResponse := MapRefundToRest(refund)

		So(refundResponse.RefundID, ShouldEqual, "re_124")
		So(refundResponse.PaymentIntent, ShouldEqual, "")
		So(refundResponse.Status, ShouldEqual, "pending")
	})
}
