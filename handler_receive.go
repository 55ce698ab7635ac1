package fedxml

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/beevik/etree"
	"github.com/rs/zerolog/log"

	"github.com/fedisphere/fedxml/config"
	"github.com/fedisphere/fedxml/envelope"
)

type receiveResponse struct {
	Status string `json:"status"`
	Entity string `json:"entity,omitempty"`
	Error  string `json:"error,omitempty"`
}

// handleReceive accepts a posted federation envelope, unpacks it, and
// reports the entity type it carried. Delivery to local recipients is a
// separate concern layered on top of this endpoint.
func handleReceive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method != http.MethodPost {
		writeReceiveError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	doc := etree.NewDocument()
	limited := http.MaxBytesReader(w, r.Body, config.Config.Receive.MaxBodyBytes)
	if _, err := doc.ReadFrom(limited); err != nil {
		writeReceiveError(w, http.StatusBadRequest, "malformed XML: "+err.Error())
		return
	}

	ent, err := envelope.Unpack(doc.Root())
	if err != nil {
		log.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("rejected envelope")
		writeReceiveError(w, receiveStatus(err), err.Error())
		return
	}

	t := ent.EntityType()
	log.Info().Str("entity", t.Name).Str("remote", r.RemoteAddr).Msg("received entity")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(receiveResponse{Status: "accepted", Entity: t.Name})
}

// receiveStatus maps codec failures onto HTTP statuses. Constructor
// rejections carry no envelope error kind and fall through to 422.
func receiveStatus(err error) int {
	switch {
	case errors.Is(err, envelope.ErrInvalidArgument),
		errors.Is(err, envelope.ErrInvalidStructure):
		return http.StatusBadRequest
	case errors.Is(err, envelope.ErrUnknownEntity):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusUnprocessableEntity
	}
}

func writeReceiveError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(receiveResponse{Status: "rejected", Error: msg})
}
