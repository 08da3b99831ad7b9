package preference

// SaveOutput reports how a save went. Success false still carries the
// locally mirrored state; Message explains what happened.
type SaveOutput struct {
	Success bool
	Message string
}
