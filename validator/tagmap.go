package validator

var tagMap = map[string]string{
	"required":  "required",
	"omitempty": "optional",
	"max":       "too_long",
	"min":       "too_short",
	"len":       "invalid_length",
	"oneof":     "invalid_choice",
	"numeric":   "only_numbers_allowed",
	"ssn_se":    "invalid_identity_number",
}

func mapTagToCode(tag string) string {
	if code, ok := tagMap[tag]; ok {
		return code
	}
	return "invalid"
}
