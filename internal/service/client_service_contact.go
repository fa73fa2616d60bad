package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-phonebook/internal/adapter"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/phone"
	"github.com/MKhiriev/go-phonebook/internal/store"
	"github.com/MKhiriev/go-phonebook/internal/validators"
	"github.com/MKhiriev/go-phonebook/models"
)

type clientContactService struct {
	remote    adapter.RemoteContactStore
	images    adapter.ImageTransferService
	device    store.DeviceContactRepository
	validator validators.Validator

	logger *logger.Logger
}

// NewClientContactService wires the orchestrator to its three
// collaborators. device is expected to be wrapped in the access gate.
func NewClientContactService(
	remote adapter.RemoteContactStore,
	images adapter.ImageTransferService,
	device store.DeviceContactRepository,
	logger *logger.Logger,
) ClientContactService {
	return &clientContactService{
		remote:    remote,
		images:    images,
		device:    device,
		validator: validators.NewContactValidator(),
		logger:    logger,
	}
}

// mutation tracks one run of the per-operation state machine.
type mutation struct {
	log    *logger.Logger
	result models.MutationResult
}

func newMutation(log *logger.Logger) *mutation {
	return &mutation{log: log, result: models.MutationResult{State: models.StateIdle, Mirror: models.MirrorSkipped}}
}

func (m *mutation) transition(to models.MutationState) {
	m.log.Debug().
		Stringer("from", m.result.State).
		Stringer("to", to).
		Msg("mutation state changed")
	m.result.State = to
}

// mirrored records the outcome of the device phase and finishes the run.
func (m *mutation) mirrored(outcome models.MirrorOutcome, err error) models.MutationResult {
	m.result.Mirror = outcome
	if outcome == models.MirrorFailedIgnored {
		m.result.MirrorErr = err
	}
	if err != nil {
		m.log.Warn().Err(err).Stringer("mirror", outcome).Msg("device mirror failed, ignoring")
	}
	m.transition(models.StateDeviceMirrorDone)
	return m.result
}

func (s *clientContactService) Create(ctx context.Context, req models.SaveRequest) (models.MutationResult, error) {
	ctx, log := withTrace(ctx, s.logger, "create")
	m := newMutation(log)

	if err := s.validator.Validate(ctx, req,
		validators.FieldNoID,
		validators.FieldFirstName,
		validators.FieldLastName,
		validators.FieldPhoneNumber,
	); err != nil {
		log.Debug().Err(err).Msg("create rejected")
		return m.result, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	payload, err := s.preparePayload(ctx, req)
	if err != nil {
		return m.result, err
	}

	m.transition(models.StateRemoteInFlight)
	created, err := s.remote.Create(ctx, payload)
	if err != nil {
		m.transition(models.StateRemoteFailed)
		log.Err(err).Str("func", "clientContactService.Create").Msg("remote create failed")
		return m.result, mapAdapterError(err)
	}
	m.result.Contact = created
	m.transition(models.StateRemoteSucceeded)

	m.transition(models.StateDeviceMirrorInFlight)
	outcome, mirrorErr := s.mirrorSave(ctx, created, req)
	return m.mirrored(outcome, mirrorErr), nil
}

func (s *clientContactService) Update(ctx context.Context, req models.SaveRequest) (models.MutationResult, error) {
	ctx, log := withTrace(ctx, s.logger, "update")
	log = &logger.Logger{Logger: log.With().Str("id", req.ID).Logger()}
	m := newMutation(log)

	if err := s.validator.Validate(ctx, req,
		validators.FieldID,
		validators.FieldFirstName,
		validators.FieldLastName,
		validators.FieldPhoneNumber,
	); err != nil {
		log.Debug().Err(err).Msg("update rejected")
		return m.result, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	payload, err := s.preparePayload(ctx, req)
	if err != nil {
		return m.result, err
	}

	m.transition(models.StateRemoteInFlight)
	updated, err := s.remote.Update(ctx, req.ID, payload)
	if err != nil {
		m.transition(models.StateRemoteFailed)
		log.Err(err).Str("func", "clientContactService.Update").Msg("remote update failed")
		return m.result, mapAdapterError(err)
	}
	m.result.Contact = updated
	m.transition(models.StateRemoteSucceeded)

	m.transition(models.StateDeviceMirrorInFlight)
	outcome, mirrorErr := s.mirrorSave(ctx, updated, req)
	return m.mirrored(outcome, mirrorErr), nil
}

func (s *clientContactService) Delete(ctx context.Context, contact models.Contact) (models.MutationResult, error) {
	ctx, log := withTrace(ctx, s.logger, "delete")
	log = &logger.Logger{Logger: log.With().Str("id", contact.ID).Logger()}
	m := newMutation(log)

	if err := s.validator.Validate(ctx, contact, validators.FieldID); err != nil {
		return m.result, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	m.transition(models.StateRemoteInFlight)
	if err := s.remote.Delete(ctx, contact.ID); err != nil {
		m.transition(models.StateRemoteFailed)
		log.Err(err).Str("func", "clientContactService.Delete").Msg("remote delete failed")
		return m.result, mapAdapterError(err)
	}
	m.result.Contact = contact
	m.transition(models.StateRemoteSucceeded)

	m.transition(models.StateDeviceMirrorInFlight)
	outcome, mirrorErr := s.mirrorDelete(ctx, contact)
	return m.mirrored(outcome, mirrorErr), nil
}

func (s *clientContactService) Get(ctx context.Context, id string) (models.Contact, error) {
	ctx, log := withTrace(ctx, s.logger, "get")

	contact, err := s.remote.Get(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "clientContactService.Get").Str("id", id).Msg("remote get failed")
		return models.Contact{}, mapAdapterError(err)
	}

	matches, err := s.device.FindByPhoneKey(ctx, phone.Normalize(contact.PhoneNumber))
	if err != nil {
		log.Warn().Err(err).Msg("device lookup failed, treating contact as not present")
	}
	contact.InDeviceContacts = len(matches) > 0

	return contact, nil
}

// preparePayload trims the names, reduces the phone number to digits and
// resolves the profile image, uploading a local reference first.
func (s *clientContactService) preparePayload(ctx context.Context, req models.SaveRequest) (models.ContactPayload, error) {
	payload := models.ContactPayload{
		FirstName:       strings.TrimSpace(req.Payload.FirstName),
		LastName:        strings.TrimSpace(req.Payload.LastName),
		PhoneNumber:     phone.Digits(req.Payload.PhoneNumber),
		ProfileImageURL: strings.TrimSpace(req.Payload.ProfileImageURL),
	}

	ref := strings.TrimSpace(req.ProfileImage)
	if ref == "" {
		ref = payload.ProfileImageURL
	}
	if ref == "" || models.IsRemoteImage(ref) {
		payload.ProfileImageURL = ref
		return payload, nil
	}

	url, err := s.images.Upload(ctx, ref)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "clientContactService.preparePayload").
			Str("image", ref).
			Msg("image upload failed, aborting before remote write")
		return models.ContactPayload{}, mapAdapterError(err)
	}
	payload.ProfileImageURL = url

	return payload, nil
}

// mirrorSave brings the device address book in line with a saved record.
// A device contact found under the previous phone key is updated in place;
// otherwise a new one is added when the caller asked for it and nothing on
// the device has the record's phone key yet.
func (s *clientContactService) mirrorSave(ctx context.Context, saved models.Contact, req models.SaveRequest) (models.MirrorOutcome, error) {
	if req.Previous != nil {
		if oldKey := phone.Normalize(req.Previous.PhoneNumber); oldKey != "" {
			matches, err := s.device.FindByPhoneKey(ctx, oldKey)
			if err != nil {
				return mirrorOutcome(err), err
			}
			if len(matches) > 0 {
				err = s.device.Update(ctx, updatedDeviceContact(matches[0], saved))
				return mirrorOutcome(err), err
			}
		}
	}

	if !req.SaveToDevice {
		return models.MirrorSkipped, nil
	}

	key := phone.Normalize(saved.PhoneNumber)
	if key == "" {
		return models.MirrorSkipped, nil
	}

	matches, err := s.device.FindByPhoneKey(ctx, key)
	if err != nil {
		return mirrorOutcome(err), err
	}
	if len(matches) > 0 {
		logger.FromContext(ctx).Debug().Str("device_id", matches[0].ID).Msg("already on device, nothing to mirror")
		return models.MirrorSkipped, nil
	}

	_, err = s.device.Add(ctx, models.DeviceContact{
		GivenName:    saved.FirstName,
		FamilyName:   saved.LastName,
		PhoneNumbers: []models.DevicePhoneNumber{{Label: models.DefaultPhoneLabel, Number: saved.PhoneNumber}},
		Thumbnail:    saved.ProfileImageURL,
	})
	return mirrorOutcome(err), err
}

// mirrorDelete removes the first device contact sharing the deleted
// record's phone key. Finding nothing is not a failure.
func (s *clientContactService) mirrorDelete(ctx context.Context, deleted models.Contact) (models.MirrorOutcome, error) {
	key := phone.Normalize(deleted.PhoneNumber)
	if key == "" {
		return models.MirrorSkipped, nil
	}

	matches, err := s.device.FindByPhoneKey(ctx, key)
	if err != nil {
		return mirrorOutcome(err), err
	}
	if len(matches) == 0 {
		return models.MirrorSkipped, nil
	}

	err = s.device.Delete(ctx, matches[0])
	return mirrorOutcome(err), err
}

// updatedDeviceContact copies the saved names and number onto a device
// contact. Only the first number is replaced; others are kept.
func updatedDeviceContact(dc models.DeviceContact, saved models.Contact) models.DeviceContact {
	dc.GivenName = saved.FirstName
	dc.FamilyName = saved.LastName

	numbers := make([]models.DevicePhoneNumber, len(dc.PhoneNumbers))
	copy(numbers, dc.PhoneNumbers)
	if len(numbers) == 0 {
		numbers = []models.DevicePhoneNumber{{Label: models.DefaultPhoneLabel}}
	}
	numbers[0].Number = saved.PhoneNumber
	dc.PhoneNumbers = numbers

	return dc
}
