package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"

	"github.com/trailnest/payments-api/models"
	"github.com/trailnest/payments-api/service"
	"github.com/trailnest/payments-api/utils"
)

// HandleCreateCheckoutSession creates a checkout session for a booking and
// returns a journey URL for the calling app to redirect to
func HandleCreateCheckoutSession(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		utils.WriteJSONWithStatus(w, req, utils.NewErrorResponse("request body empty"), http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var checkoutRequest models.CheckoutSessionRequest
	err := requestDecoder.Decode(&checkoutRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewErrorResponse("request body invalid"), http.StatusBadRequest)
		return
	}

	// once we've read and decoded request body call the checkout service to handle internal business logic
	checkoutResponse, responseType, err := checkoutService.CreateCheckoutSession(req, checkoutRequest)

	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating checkout session: [%v]", err))
		switch responseType {
		case service.InvalidData:
			utils.WriteJSONWithStatus(w, req, utils.NewErrorResponse(err.Error()), http.StatusBadRequest)
			return
		default:
			utils.WriteJSONWithStatus(w, req, utils.NewErrorResponse(err.Error()), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSONWithStatus(w, req, checkoutResponse, http.StatusOK)

	log.InfoR(req, "Successful POST request for new checkout session", log.Data{"session_id": checkoutResponse.SessionID, "status": http.StatusOK})
}
