package models

// SaveRequest describes a create or update submitted to the reconciliation
// orchestrator.
type SaveRequest struct {
	// ID is the remote identifier of the contact being updated. It must be
	// empty for create and non-empty for update.
	ID string

	// Payload carries the names and phone number as entered. The
	// orchestrator trims names and reduces the phone number to digits.
	Payload ContactPayload

	// ProfileImage is either an already uploaded URL or a local file
	// reference (file://, content:// or a plain path) that has to be
	// uploaded before the remote write. Empty keeps Payload.ProfileImageURL.
	ProfileImage string

	// SaveToDevice is the explicit "save to my phone" action.
	SaveToDevice bool

	// Previous is the record as it was before an update. When set, its
	// phone key is used to find a device contact to update in place if the
	// number changed.
	Previous *Contact
}

// MutationState is a state of the per-operation reconciliation state
// machine.
type MutationState int

const (
	StateIdle MutationState = iota
	StateRemoteInFlight
	StateRemoteFailed
	StateRemoteSucceeded
	StateDeviceMirrorInFlight
	StateDeviceMirrorDone
)

var mutationStateNames = map[MutationState]string{
	StateIdle:                 "idle",
	StateRemoteInFlight:       "remote_in_flight",
	StateRemoteFailed:         "remote_failed",
	StateRemoteSucceeded:      "remote_succeeded",
	StateDeviceMirrorInFlight: "device_mirror_in_flight",
	StateDeviceMirrorDone:     "device_mirror_done",
}

func (s MutationState) String() string {
	if name, ok := mutationStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// MirrorOutcome is the result of the best-effort device mirror.
type MirrorOutcome int

const (
	// MirrorSkipped means no device write was attempted: not requested,
	// already present, no usable phone key, or access not granted.
	MirrorSkipped MirrorOutcome = iota
	// MirrorSucceeded means the device write completed.
	MirrorSucceeded
	// MirrorFailedIgnored means the device write failed and the failure
	// was absorbed.
	MirrorFailedIgnored
)

func (o MirrorOutcome) String() string {
	switch o {
	case MirrorSkipped:
		return "skipped"
	case MirrorSucceeded:
		return "succeeded"
	case MirrorFailedIgnored:
		return "failed_ignored"
	default:
		return "unknown"
	}
}

// MutationResult is the two-phase result of a reconciliation operation.
// The remote phase is reported through the accompanying error; the mirror
// phase never changes it.
type MutationResult struct {
	// Contact is the record as returned by the remote store. For delete it
	// is the record that was removed.
	Contact Contact

	// State is the terminal state the operation reached.
	State MutationState

	// Mirror is the outcome of the device mirror phase.
	Mirror MirrorOutcome

	// MirrorErr holds the absorbed device error, if any.
	MirrorErr error
}
