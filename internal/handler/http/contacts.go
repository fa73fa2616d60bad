package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-phonebook/internal/app"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/utils"
	"github.com/MKhiriev/go-phonebook/models"
)

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.services.ContactService.ListContacts(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.listContacts")
		return
	}

	_, _ = utils.WriteJSON(w, models.NewContactListResponse(contacts), http.StatusOK)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	contact, err := h.services.ContactService.GetContact(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "*Handler.getContact")
		return
	}

	_, _ = utils.WriteJSON(w, models.ContactResponse{Data: contact, Success: true}, http.StatusOK)
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var payload models.ContactPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Str("func", "*Handler.createContact").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	created, err := h.services.ContactService.CreateContact(r.Context(), payload)
	if err != nil {
		h.writeError(w, r, err, "*Handler.createContact")
		return
	}

	log.Info().Str("id", created.ID).Msg("contact created")
	_, _ = utils.WriteJSON(w, models.ContactResponse{Data: created, Success: true}, http.StatusCreated)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var payload models.ContactPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Str("func", "*Handler.updateContact").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	updated, err := h.services.ContactService.UpdateContact(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateContact")
		return
	}

	_, _ = utils.WriteJSON(w, models.ContactResponse{Data: updated, Success: true}, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ContactService.DeleteContact(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err, "*Handler.deleteContact")
		return
	}

	_, _ = utils.WriteJSON(w, models.StatusResponse{Success: true, Message: app.MsgContactDeleted}, http.StatusOK)
}

// writeError logs err and answers with the failure envelope. Server errors
// are logged at error level, client errors at debug.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err), status)
}
