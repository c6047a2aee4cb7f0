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

// HandleCreateAccountLink creates a connected account for a host and returns
// a single-use onboarding link
func HandleCreateAccountLink(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		utils.WriteJSONWithStatus(w, req, utils.NewErrorResponse("request body empty"), http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var linkRequest models.AccountLinkRequest
	err := requestDecoder.Decode(&linkRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewErrorResponse("request body invalid"), http.StatusBadRequest)
		return
	}

	linkResponse, responseType, err := accountService.CreateAccountLink(req, linkRequest)

	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating account link: [%v]", err))
		switch responseType {
		case service.InvalidData:
			utils.WriteJSONWithStatus(w, req, utils.NewErrorResponse(err.Error()), http.StatusBadRequest)
			return
		default:
			utils.WriteJSONWithStatus(w, req, utils.NewErrorResponse(err.Error()), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSONWithStatus(w, req, linkResponse, http.StatusOK)

	log.InfoR(req, "Successful POST request for new account link", log.Data{"account_id": linkResponse.AccountID, "status": http.StatusOK})
}
