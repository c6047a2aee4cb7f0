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

// handleRefundMessage allows us to mock the call to produceRefundMessage for unit tests
var handleRefundMessage = produceRefundMessage

// HandleRefundDeposit initiates a security deposit refund with the external
// provider. Authorisation has already been enforced by the refund
// authentication interceptor.
func HandleRefundDeposit(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		utils.WriteJSONWithStatus(w, req, utils.NewErrorResponse("request body empty"), http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var refundRequest models.RefundRequest
	err := requestDecoder.Decode(&refundRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewErrorResponse("request body invalid"), http.StatusBadRequest)
		return
	}

	refund, responseType, err := refundService.RefundDeposit(req, refundRequest)

	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating refund: [%v]", err), log.Data{"service_response_type": responseType.String()})
		switch responseType {
		case service.InvalidData:
			utils.WriteJSONWithStatus(w, req, utils.NewErrorResponse(err.Error()), http.StatusBadRequest)
			return
		default:
			utils.WriteJSONWithStatus(w, req, utils.NewErrorResponse(err.Error()), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSONWithStatus(w, req, models.CreateRefundResponse{Success: true, Refund: *refund}, http.StatusOK)

	log.InfoR(req, "Successful POST request for new refund", log.Data{"refund_id": refund.RefundID, "status": http.StatusOK})

	err = handleRefundMessage(refund.PaymentIntent, refund.RefundID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error producing refund kafka message: [%v]", err))
	}
}
