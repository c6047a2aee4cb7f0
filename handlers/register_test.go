package handlers

import (
	"testing"

	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/trailnest/payments-api/config"
)

func TestUnitRegisterRoutes(t *testing.T) {
	Convey("Register routes", t, func() {
		router := mux.NewRouter()
		cfg, _ := config.Get()
		Register(router, *cfg)
		So(router.GetRoute("get-healthcheck"), ShouldNotBeNil)
		So(router.GetRoute("create-checkout-session"), ShouldNotBeNil)
		So(router.GetRoute("create-account-link"), ShouldNotBeNil)
		So(router.GetRoute("refund-deposit"), ShouldNotBeNil)
		So(router.GetRoute("handle-provider-webhook"), ShouldNotBeNil)
	})
}
