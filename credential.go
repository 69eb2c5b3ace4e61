package openaikit

const redactedCredential = "[REDACTED]"

// Credential holds the secret bearer token that authenticates requests.
// Its printed, formatted, and JSON representations are always redacted, so
// the secret cannot leak through logs or error messages. The raw value is
// only ever read when the Authorization header is built.
type Credential struct {
	value string
}

// NewCredential wraps a raw API key.
func NewCredential(value string) Credential {
	return Credential{value: value}
}

// Empty reports whether the credential carries no secret.
func (c Credential) Empty() bool {
	return c.value == ""
}

// String implements fmt.Stringer with a redacted representation.
func (c Credential) String() string {
	return redactedCredential
}

// GoString keeps %#v output redacted as well.
func (c Credential) GoString() string {
	return `openaikit.Credential{value: "` + redactedCredential + `"}`
}

// MarshalJSON never emits the secret.
func (c Credential) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redactedCredential + `"`), nil
}

// bearer returns the Authorization header value.
func (c Credential) bearer() string {
	return "Bearer " + c.value
}
