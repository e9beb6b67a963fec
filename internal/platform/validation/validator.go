package validation

// Validator checks a decoded request and returns messages keyed by field name.
// A nil map means the input is valid.
type Validator interface {
	ValidateStruct(s any) map[string]string
}
